package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"m3ucat/internal/partition"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show category statistics from the generated index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := filepath.Join(cfg.Paths.OutputDir, "index.json")
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("no catalog found at %s; run `m3ucat convert` first", cfg.Paths.OutputDir)
				}
				return fmt.Errorf("read index: %w", err)
			}

			var idx partition.Index
			if err := json.Unmarshal(data, &idx); err != nil {
				return fmt.Errorf("decode index %s: %w", path, err)
			}

			categories := idx.Categories
			if limit > 0 && limit < len(categories) {
				categories = categories[:limit]
			}

			rows := make([][]string, 0, len(categories))
			for _, cat := range categories {
				pages := 1
				if cat.Pages > 0 {
					pages = cat.Pages
				}
				rows = append(rows, []string{
					cat.Name,
					strconv.Itoa(cat.MovieCount),
					strconv.Itoa(cat.SeriesCount),
					strconv.Itoa(cat.AdultCount),
					strconv.Itoa(cat.TotalCount),
					strconv.Itoa(pages),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Movies", "Series", "Adult", "Total", "Pages"},
				rows, 1, 2, 3, 4, 5))
			fmt.Fprintf(out, "Generated %s; %d categories, %d movies, %d series, %d adult\n",
				idx.GeneratedAt, len(idx.Categories), idx.TotalMovies, idx.TotalSeries, idx.TotalAdult)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the N largest categories")
	return cmd
}
