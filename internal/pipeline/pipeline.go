package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"m3ucat/internal/catalog"
	"m3ucat/internal/config"
	"m3ucat/internal/fileutil"
	"m3ucat/internal/logging"
	"m3ucat/internal/partition"
	"m3ucat/internal/playlist"
)

// Result summarizes one completed run.
type Result struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time

	Inputs  []string // playlists actually parsed
	Skipped []string // configured playlists that were missing

	Items        int
	Duplicates   int
	IDCollisions int

	Categories  int
	TotalMovies int
	TotalSeries int
	TotalAdult  int

	OutputBytes int64
	LargestFile string
}

// Pipeline is the one-shot playlist-to-catalog transform.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	classifier catalog.Classifier
	normalizer *catalog.Normalizer

	// Now stamps the index manifest and the result; overridable in tests to
	// make output byte-identical across runs.
	Now func() time.Time
}

// New builds a pipeline from validated configuration.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		classifier: catalog.Classifier{FoldAdult: cfg.Policy.AdultMatchFold},
		normalizer: catalog.NewNormalizer(cfg.Policy.Recapitalize),
		Now:        time.Now,
	}
}

// Run executes the full conversion and reports what was produced.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	started := p.Now()
	result := &Result{
		RunID:     uuid.NewString(),
		StartedAt: started,
	}

	if len(p.cfg.Inputs.Playlists) == 0 {
		return nil, Wrap(ErrConfiguration, "pipeline", "run", "no input playlists configured", nil)
	}
	if err := p.cfg.EnsureOutputDir(); err != nil {
		return nil, Wrap(ErrWrite, "pipeline", "prepare", "output directory", err)
	}

	items, err := p.collect(ctx, result)
	if err != nil {
		return nil, err
	}

	unique, duplicates := catalog.DedupeByURL(items)
	result.Items = len(unique)
	result.Duplicates = duplicates
	result.IDCollisions = countIDCollisions(unique)
	if result.IDCollisions > 0 {
		p.logger.Warn("identifier collisions detected",
			logging.Int("collisions", result.IDCollisions))
	}

	groups := partition.BuildGroups(unique)
	result.Categories = len(groups)

	writer := partition.NewWriter(p.cfg.Paths.OutputDir, p.cfg.Catalog.MaxItemsPerPage, p.logger)
	if err := writer.Lock(); err != nil {
		return nil, Wrap(ErrWrite, "partition", "lock", p.cfg.Paths.OutputDir, err)
	}
	defer func() {
		_ = writer.Unlock()
	}()

	entries := make([]partition.IndexEntry, 0, len(groups))
	for i := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := writer.WriteGroup(&groups[i])
		if err != nil {
			return nil, Wrap(ErrWrite, "partition", "write group", groups[i].Name, err)
		}
		entries = append(entries, entry)
	}

	index := partition.BuildIndex(entries, p.cfg.Catalog.FormatVersion, p.cfg.Catalog.MaxItemsPerPage, p.Now())
	result.TotalMovies = index.TotalMovies
	result.TotalSeries = index.TotalSeries
	result.TotalAdult = index.TotalAdult
	if err := writer.WriteIndex(index); err != nil {
		return nil, Wrap(ErrWrite, "partition", "write index", "", err)
	}

	p.measureOutput(result)
	result.FinishedAt = p.Now()

	p.logger.Info("conversion complete",
		logging.String("run_id", result.RunID),
		logging.Int("items", result.Items),
		logging.Int("duplicates", result.Duplicates),
		logging.Int("categories", result.Categories),
		logging.Int("movies", result.TotalMovies),
		logging.Int("series", result.TotalSeries),
		logging.Int("adult", result.TotalAdult),
		logging.Int64("output_bytes", result.OutputBytes),
		logging.String("largest_file", result.LargestFile),
		logging.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)))

	return result, nil
}

// collect lexes every configured playlist and classifies the raw entries,
// in configuration order. Missing files are skipped with a warning.
func (p *Pipeline) collect(ctx context.Context, result *Result) ([]catalog.Item, error) {
	var items []catalog.Item
	for _, path := range p.cfg.Inputs.Playlists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := playlist.ParseFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				p.logger.Warn("playlist not found, skipping",
					logging.String("path", path))
				result.Skipped = append(result.Skipped, path)
				continue
			}
			return nil, Wrap(ErrMissingInput, "playlist", "read", path, err)
		}
		result.Inputs = append(result.Inputs, path)

		kept := 0
		for _, entry := range entries {
			item, ok := p.buildItem(entry)
			if !ok {
				continue
			}
			items = append(items, item)
			kept++
		}
		p.logger.Info("playlist parsed",
			logging.String("path", path),
			logging.Int("entries", len(entries)),
			logging.Int("kept", kept))
	}
	return items, nil
}

func (p *Pipeline) buildItem(entry playlist.Entry) (catalog.Item, bool) {
	cls, keep := p.classifier.Classify(entry.Name, entry.Category)
	if !keep {
		return catalog.Item{}, false
	}

	item := catalog.Item{
		ID:       catalog.GenerateID(cls.Name, entry.URL),
		Name:     cls.Name,
		URL:      entry.URL,
		Type:     cls.Type,
		Logo:     entry.Logo,
		IsAdult:  cls.Adult,
		Category: p.normalizer.Normalize(entry.Category),
	}
	if cls.HasEpisode {
		season, episode := cls.Season, cls.Episode
		item.SeriesName = cls.SeriesName
		item.Season = &season
		item.Episode = &episode
	}
	return item, true
}

func countIDCollisions(items []catalog.Item) int {
	seen := make(map[string]struct{}, len(items))
	collisions := 0
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			collisions++
			continue
		}
		seen[item.ID] = struct{}{}
	}
	return collisions
}

// measureOutput records catalog size statistics for the run summary. Purely
// informational; failures are ignored.
func (p *Pipeline) measureOutput(result *Result) {
	if size, err := fileutil.DirSize(p.cfg.Paths.OutputDir); err == nil {
		result.OutputBytes = size
	}
	if name, _, err := fileutil.LargestFile(p.cfg.Paths.OutputDir); err == nil {
		result.LargestFile = name
	}
}
