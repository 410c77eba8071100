package partition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"m3ucat/internal/catalog"
	"m3ucat/internal/fileutil"
	"m3ucat/internal/logging"
)

const lockFileName = ".m3ucat.lock"

// Document shapes persisted per category. Item lists are always arrays in
// the output, never null.
type categoryDoc struct {
	Category string         `json:"category"`
	Movies   []catalog.Item `json:"movies"`
	Series   []catalog.Item `json:"series"`
}

type pageDoc struct {
	Category   string         `json:"category"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Movies     []catalog.Item `json:"movies"`
	Series     []catalog.Item `json:"series"`
}

type adultDoc struct {
	Category string         `json:"category"`
	Items    []catalog.Item `json:"items"`
}

// Writer emits category documents and the index manifest into one output
// directory. Category files are compact JSON with non-ASCII preserved
// literally; the index is pretty-printed.
type Writer struct {
	dir        string
	maxPerPage int
	logger     *slog.Logger
	lock       *flock.Flock
}

// NewWriter creates a writer for dir. Any write failure is fatal to the
// run: the caller must not emit an index after a failed group write.
func NewWriter(dir string, maxPerPage int, logger *slog.Logger) *Writer {
	return &Writer{
		dir:        dir,
		maxPerPage: maxPerPage,
		logger:     logging.NewComponentLogger(logger, "partition"),
		lock:       flock.New(filepath.Join(dir, lockFileName)),
	}
}

// Lock takes an exclusive advisory lock on the output directory so
// concurrent runs cannot interleave documents from different catalogs.
func (w *Writer) Lock() error {
	if err := w.lock.Lock(); err != nil {
		return fmt.Errorf("lock output directory: %w", err)
	}
	return nil
}

// Unlock releases the output directory lock.
func (w *Writer) Unlock() error {
	return w.lock.Unlock()
}

// WriteGroup persists one category group and returns its index entry.
func (w *Writer) WriteGroup(g *Group) (IndexEntry, error) {
	slug := FileSlug(g.Name)
	entry := IndexEntry{
		ID:          slug,
		Name:        g.Name,
		MovieCount:  len(g.Movies),
		SeriesCount: len(g.Series),
		AdultCount:  len(g.Adult),
		TotalCount:  g.Total(),
	}

	if g.Total() > w.maxPerPage {
		if err := w.writePaginated(g, slug, &entry); err != nil {
			return IndexEntry{}, err
		}
	} else {
		doc := categoryDoc{Category: g.Name, Movies: orEmpty(g.Movies), Series: orEmpty(g.Series)}
		if err := w.writeCompact(slug+".json", doc); err != nil {
			return IndexEntry{}, err
		}
		w.logger.Debug("category written",
			logging.String("file", slug+".json"),
			logging.Int("movies", len(g.Movies)),
			logging.Int("series", len(g.Series)))
	}

	if len(g.Adult) > 0 {
		doc := adultDoc{Category: g.Name, Items: g.Adult}
		if err := w.writeCompact(slug+"_adult.json", doc); err != nil {
			return IndexEntry{}, err
		}
		w.logger.Debug("adult side file written",
			logging.String("file", slug+"_adult.json"),
			logging.Int("items", len(g.Adult)))
	}

	return entry, nil
}

func (w *Writer) writePaginated(g *Group, slug string, entry *IndexEntry) error {
	seriesPages := paginate(g.Series, w.maxPerPage)
	moviesPages := paginate(g.Movies, w.maxPerPage)
	totalPages := max(len(seriesPages), len(moviesPages))

	w.logger.Info("splitting category",
		logging.String("category", g.Name),
		logging.Int("items", g.Total()),
		logging.Int("pages", totalPages))

	for i, page := range seriesPages {
		name := fmt.Sprintf("%s_p%d.json", slug, i+1)
		doc := pageDoc{
			Category:   g.Name,
			Page:       i + 1,
			TotalPages: totalPages,
			Movies:     []catalog.Item{},
			Series:     page,
		}
		if err := w.writeCompact(name, doc); err != nil {
			return err
		}
		w.logger.Debug("series page written",
			logging.String("file", name),
			logging.Int("series", len(page)))
	}

	if len(g.Movies) > 0 {
		name := slug + "_movies.json"
		doc := categoryDoc{Category: g.Name, Movies: g.Movies, Series: []catalog.Item{}}
		if err := w.writeCompact(name, doc); err != nil {
			return err
		}
		w.logger.Debug("movies overflow written",
			logging.String("file", name),
			logging.Int("movies", len(g.Movies)))
	}

	entry.Pages = max(len(seriesPages), 1)
	hasMovies := len(g.Movies) > 0
	entry.HasMovies = &hasMovies
	return nil
}

// WriteIndex persists the manifest. Call only after every group write
// succeeded.
func (w *Writer) WriteIndex(idx Index) error {
	data, err := encodeJSON(idx, true)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	path := filepath.Join(w.dir, "index.json")
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write index.json: %w", err)
	}
	return nil
}

func (w *Writer) writeCompact(name string, doc any) error {
	data, err := encodeJSON(doc, false)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := fileutil.WriteFileAtomic(filepath.Join(w.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func encodeJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orEmpty(items []catalog.Item) []catalog.Item {
	if items == nil {
		return []catalog.Item{}
	}
	return items
}
