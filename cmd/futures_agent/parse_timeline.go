package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/alternate-futures/internal/ingestion"
	"github.com/jonathan/alternate-futures/internal/observability"
	"github.com/jonathan/alternate-futures/internal/timeline"
	"github.com/jonathan/alternate-futures/internal/types"
	"github.com/spf13/cobra"
)

var parseTimelineCmd = &cobra.Command{
	Use:   "parse-timeline",
	Short: "Parse resume files into a timeline without calling a completion service",
	Long:  "Read one or more resume files (plain text or HTML), concatenate them and print the parsed timeline as JSON.",
	RunE:  runParseTimeline,
}

var (
	parseInputFiles []string
	parseVerbose    bool
)

func init() {
	parseTimelineCmd.Flags().StringSliceVarP(&parseInputFiles, "in", "i", nil, "Resume file(s); repeat or comma-separate to concatenate")
	parseTimelineCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a boxed summary instead of JSON")
	_ = parseTimelineCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseTimelineCmd)
}

func runParseTimeline(cmd *cobra.Command, _ []string) error {
	text, err := ingestion.AppendFiles("", parseInputFiles...)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	entries := timeline.Parse(text)
	if parseVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintTimeline("REAL TIMELINE", entries)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), types.TimelineResponse{Timeline: entries})
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return ingestion.ReadFile(path)
}
