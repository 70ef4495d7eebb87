package main

import (
	"fmt"
	"io"

	"github.com/jonathan/alternate-futures/internal/futures"
	"github.com/jonathan/alternate-futures/internal/generator"
	"github.com/jonathan/alternate-futures/internal/ingestion"
	"github.com/jonathan/alternate-futures/internal/observability"
	"github.com/jonathan/alternate-futures/internal/timeline"
	"github.com/jonathan/alternate-futures/internal/types"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize saved completion output offline",
	Long:  "Extract, adapt and clamp a saved completion response exactly as the generate command would, without calling a completion service.",
	RunE:  runNormalize,
}

var (
	normInput       string
	normResume      []string
	normFutureCount int
	normSpanYears   int
	normAnchor      string
	normVerbose     bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normInput, "in", "i", "", "Path to raw completion text (\"-\" for stdin)")
	normalizeCmd.Flags().StringSliceVar(&normResume, "resume", nil, "Resume file(s) used to anchor the window with --anchor resume")
	normalizeCmd.Flags().IntVar(&normFutureCount, "future-count", types.DefaultFutureCount, "Maximum number of future entries kept")
	normalizeCmd.Flags().IntVar(&normSpanYears, "span-years", types.DefaultSpanYears, "Projection window in years")
	normalizeCmd.Flags().StringVar(&normAnchor, "anchor", "", "Future window anchor: global (default) or resume")
	normalizeCmd.Flags().BoolVarP(&normVerbose, "verbose", "v", false, "Print boxed output and format warnings instead of JSON")
	_ = normalizeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	anchor, err := futures.ParseAnchor(normAnchor)
	if err != nil {
		return err
	}

	raw, err := readInput(normInput)
	if err != nil {
		return err
	}

	opts := futures.Options{
		FutureCount: normFutureCount,
		SpanYears:   normSpanYears,
		Anchor:      anchor,
	}
	if len(normResume) > 0 {
		resume, err := ingestion.AppendFiles("", normResume...)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		opts.ResumeLastStart = timeline.LastStartYear(timeline.Parse(resume))
	}

	return normalizeRaw(cmd.OutOrStdout(), raw, opts, normVerbose)
}

// normalizeRaw writes the normalized entries for raw.
func normalizeRaw(w io.Writer, raw string, opts futures.Options, verbose bool) error {
	entries := futures.NormalizeWithOptions(raw, opts)
	if !verbose {
		return writeJSON(w, entries)
	}

	printer := observability.NewPrinter(w)
	printer.PrintTimeline(fmt.Sprintf("NORMALIZED (%s anchor)", opts.Anchor), entries)
	printer.PrintWarnings(generator.Diagnose(raw))
	return nil
}
