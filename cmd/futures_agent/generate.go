package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/alternate-futures/internal/config"
	"github.com/jonathan/alternate-futures/internal/futures"
	"github.com/jonathan/alternate-futures/internal/generator"
	"github.com/jonathan/alternate-futures/internal/ingestion"
	"github.com/jonathan/alternate-futures/internal/observability"
	"github.com/jonathan/alternate-futures/internal/session"
	"github.com/jonathan/alternate-futures/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Parse a resume and generate alternate futures",
	Long: `Parse the resume files into a timeline, ask the completion service for a projection and print the normalized futures.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath  string
	genInputFiles  []string
	genFutureCount int
	genSpanYears   int
	genProvider    string
	genModel       string
	genAPIKey      string
	genAnchor      string
	genVariants    int
	genVerbose     bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringSliceVarP(&genInputFiles, "in", "i", nil, "Resume file(s); repeat or comma-separate to concatenate")
	generateCmd.Flags().IntVar(&genFutureCount, "future-count", session.DefaultFutureCount, "Number of future roles to request")
	generateCmd.Flags().IntVar(&genSpanYears, "span-years", session.DefaultSpanYears, "Projection window in years")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "Completion provider: openai, gemini or anthropic (defaults to LLM_PROVIDER env var, then openai)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Model name (defaults to LLM_MODEL env var, then the provider default)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "API key (defaults to the provider's env var)")
	generateCmd.Flags().StringVar(&genAnchor, "anchor", "", "Future window anchor: global (default) or resume")
	generateCmd.Flags().IntVar(&genVariants, "variants", 1, "Number of projections to generate for the same resume")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print boxed timelines instead of JSON")

	rootCmd.AddCommand(generateCmd)
}

// generateOutput is the JSON document printed by generate.
type generateOutput struct {
	Timeline []types.TimelineEntry `json:"timeline"`
	Variants []generateVariant     `json:"variants"`
}

type generateVariant struct {
	Futures  []types.TimelineEntry `json:"futures"`
	Warnings []string              `json:"warnings,omitempty"`
	Error    string                `json:"error,omitempty"`
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveGenerateConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("at least one --in file is required (or set inputs in --config)")
	}
	anchor, err := futures.ParseAnchor(cfg.Anchor)
	if err != nil {
		return err
	}

	text, err := ingestion.AppendFiles("", cfg.Inputs...)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	client, err := newCompletionClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	out, err := generateFutures(ctx, generator.NewService(client), text, cfg, anchor, genVariants)
	if printErr := printGenerateOutput(cmd.OutOrStdout(), out, cfg.Verbose); printErr != nil {
		return printErr
	}
	return err
}

// resolveGenerateConfig merges the config file, defaults and explicitly set flags,
// in increasing order of precedence.
func resolveGenerateConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		Provider:    os.Getenv("LLM_PROVIDER"),
		Model:       os.Getenv("LLM_MODEL"),
		FutureCount: config.Int(session.DefaultFutureCount),
		SpanYears:   config.Int(session.DefaultSpanYears),
	})

	flags := cmd.Flags()
	if flags.Changed("in") {
		cfg.Inputs = genInputFiles
	}
	if flags.Changed("future-count") {
		cfg.FutureCount = config.Int(genFutureCount)
	}
	if flags.Changed("span-years") {
		cfg.SpanYears = config.Int(genSpanYears)
	}
	if flags.Changed("provider") {
		cfg.Provider = genProvider
	}
	if flags.Changed("model") {
		cfg.Model = genModel
	}
	if flags.Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if flags.Changed("anchor") {
		cfg.Anchor = genAnchor
	}
	if flags.Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// generateFutures drives the view state through one submit and variants-1
// regenerations. It returns an error when the last attempt failed.
func generateFutures(ctx context.Context, svc *generator.Service, text string, cfg config.Config, anchor futures.Anchor, variants int) (generateOutput, error) {
	var warnings []string
	fetch := func(ctx context.Context, req session.Request) ([]types.TimelineEntry, error) {
		resp, err := svc.Futures(ctx, types.GenerateRequest{
			ResumeText:  req.ResumeText,
			FutureCount: &req.FutureCount,
			SpanYears:   &req.SpanYears,
		}, anchor)
		if err != nil {
			return nil, err
		}
		warnings = resp.Warnings
		return resp.Futures, nil
	}

	state := session.New().
		SetFutureCount(cfg.CountOr(session.DefaultFutureCount)).
		SetSpanYears(cfg.SpanOr(session.DefaultSpanYears)).
		ChangeText(text)

	state, req, ok := state.Submit(text)
	if !ok {
		return generateOutput{}, fmt.Errorf("generation already in progress")
	}

	var out generateOutput
	for i := 0; i < max(variants, 1); i++ {
		if i > 0 {
			if state, req, ok = state.Regenerate(); !ok {
				break
			}
		}
		warnings = nil
		state = session.Run(ctx, state, req, fetch)

		variant := generateVariant{Error: state.Error}
		if state.Error != session.FailureMessage {
			variant.Futures = state.Futures
			variant.Warnings = warnings
		}
		out.Variants = append(out.Variants, variant)
	}
	out.Timeline = state.RealEvents

	if state.Error == session.FailureMessage {
		return out, fmt.Errorf("generation failed")
	}
	return out, nil
}

func printGenerateOutput(w io.Writer, out generateOutput, verbose bool) error {
	if !verbose {
		return writeJSON(w, out)
	}

	printer := observability.NewPrinter(w)
	printer.PrintTimeline("REAL TIMELINE", out.Timeline)
	for i, v := range out.Variants {
		if v.Futures != nil {
			printer.PrintTimeline(fmt.Sprintf("ALTERNATE FUTURE #%d", i+1), v.Futures)
		}
		printer.PrintWarnings(v.Warnings)
		printer.PrintError(v.Error)
	}
	return nil
}
