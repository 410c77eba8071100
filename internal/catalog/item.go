package catalog

// Content types assigned by the classifier. Every entry that survives the
// ignore list becomes exactly one of these.
const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

// Item is the unit persisted to the catalog output. Category is a grouping
// key only; the partitioner hoists it onto the containing document, so it is
// never serialized on the item itself.
type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	Logo       string `json:"logo,omitempty"`
	IsAdult    bool   `json:"isAdult,omitempty"`
	SeriesName string `json:"seriesName,omitempty"`
	Season     *int   `json:"season,omitempty"`
	Episode    *int   `json:"episode,omitempty"`

	Category string `json:"-"`
}
