package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"m3ucat/internal/config"
	"m3ucat/internal/history"
	"m3ucat/internal/logging"
	"m3ucat/internal/pipeline"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		outDir    string
		playlists []string
		logLevel  string
		logFormat string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert configured playlists into the JSON catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(playlists) > 0 {
				expanded := make([]string, 0, len(playlists))
				for _, playlist := range playlists {
					path, err := config.ExpandPath(strings.TrimSpace(playlist))
					if err != nil {
						return fmt.Errorf("resolve playlist path: %w", err)
					}
					expanded = append(expanded, path)
				}
				cfg.Inputs.Playlists = expanded
			}
			if outDir != "" {
				path, err := config.ExpandPath(outDir)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				cfg.Paths.OutputDir = path
			}

			logger, err := ctx.newLogger(logLevel, logFormat)
			if err != nil {
				return err
			}

			result, err := pipeline.New(cfg, logger).Run(cmd.Context())
			if err != nil {
				return err
			}

			if cfg.History.Enabled && !noHistory {
				if err := recordRun(cmd, cfg, result); err != nil {
					logger.Warn("run not recorded", logging.Error(err))
				}
			}

			printSummary(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for catalog files")
	cmd.Flags().StringSliceVarP(&playlists, "playlist", "p", nil, "Playlist file to convert (repeatable, overrides configuration)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Log format (console, json)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the history database")
	return cmd
}

func recordRun(cmd *cobra.Command, cfg *config.Config, result *pipeline.Result) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(cmd.Context(), history.Run{
		ID:           result.RunID,
		StartedAt:    result.StartedAt,
		FinishedAt:   result.FinishedAt,
		Inputs:       result.Inputs,
		Skipped:      result.Skipped,
		Items:        result.Items,
		Duplicates:   result.Duplicates,
		IDCollisions: result.IDCollisions,
		Categories:   result.Categories,
		TotalMovies:  result.TotalMovies,
		TotalSeries:  result.TotalSeries,
		TotalAdult:   result.TotalAdult,
		OutputBytes:  result.OutputBytes,
		LargestFile:  result.LargestFile,
	})
}

func printSummary(cmd *cobra.Command, result *pipeline.Result) {
	rows := [][]string{
		{"Playlists", strconv.Itoa(len(result.Inputs))},
		{"Skipped inputs", strconv.Itoa(len(result.Skipped))},
		{"Items", strconv.Itoa(result.Items)},
		{"Duplicates removed", strconv.Itoa(result.Duplicates)},
		{"Categories", strconv.Itoa(result.Categories)},
		{"Movies", strconv.Itoa(result.TotalMovies)},
		{"Series", strconv.Itoa(result.TotalSeries)},
		{"Adult", strconv.Itoa(result.TotalAdult)},
		{"Output size", formatBytes(result.OutputBytes)},
		{"Elapsed", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond).String()},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Metric", "Value"}, rows, 1))
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
