package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glossa-dev/glossa/internal/extract"
	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/pipeline"
	"github.com/glossa-dev/glossa/internal/token"
)

var (
	recordID    string
	subjectText string
	outPath     string
	format      string
	ruleOnly    bool
	stripHTML   bool
	budgetMS    int64
	maxVerbs    int
	maxFrames   int
	tolerance   float64
	timeout     time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a text file and emit a structured report",
	Long: `Analyze runs the full extraction pass over one text record:
- Tokenize via the resolved backend (rich parser or rule fallback)
- Build one predicate frame per verb occurrence
- Cluster predicates into typed event frames
- Flag pairwise contradiction candidates

Pass "-" to read from stdin.

Example:
  glossa analyze notes.txt
  glossa analyze notes.txt --subject "the shipment" --format yaml
  cat page.html | glossa analyze - --strip-html --rule-only`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&recordID, "id", "", "record id carried into the report")
	analyzeCmd.Flags().StringVar(&subjectText, "subject", "", "fallback subject for predicates without one")
	analyzeCmd.Flags().StringVar(&outPath, "out", "", "output path (default: stdout)")
	analyzeCmd.Flags().StringVar(&format, "format", "json", "output format (json, yaml)")
	analyzeCmd.Flags().BoolVar(&ruleOnly, "rule-only", false, "force the deterministic rule backend")
	analyzeCmd.Flags().BoolVar(&stripHTML, "strip-html", false, "strip markup before analysis")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().Int64Var(&budgetMS, "budget-ms", 0, "tokenization wall-clock budget per chunk (0 = unlimited)")
	analyzeCmd.Flags().IntVar(&maxVerbs, "max-verbs", 0, "cap on predicate frames (0 = unlimited)")
	analyzeCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "cap on sentence batches fed to the frame builder (0 = unlimited)")
	analyzeCmd.Flags().Float64Var(&tolerance, "tolerance", 0, "numeric contradiction tolerance (0 = default 0.05)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	if stripHTML {
		text, err = extract.StripHTML(text)
		if err != nil {
			return fmt.Errorf("strip html: %w", err)
		}
	}

	cfg := loadConfig()
	cfg.Limits.MaxMillisPerChunk = budgetMS
	cfg.Limits.MaxVerbs = maxVerbs
	cfg.Limits.MaxFrames = maxFrames
	if tolerance > 0 {
		cfg.Limits.Tolerance = tolerance
	}
	cfg.Output.Format = format

	resolver := newResolver(cfg, ruleOnly)
	analyzer := pipeline.NewAnalyzer(resolver, cfg)
	analyzer.Subject = subjectText

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s (%d bytes)\n", args[0], len(text))
	}

	report, err := analyzer.Analyze(ctx, recordID, text)
	if err != nil {
		return err
	}

	data, err := pipeline.NewRenderer(cfg.Output.Format).Render(report)
	if err != nil {
		return err
	}

	return writeOutput(outPath, data)
}

// newResolver builds the backend resolver: rule-only pins the
// deterministic backend, otherwise the rich parser is tried once with
// permanent fallback.
func newResolver(cfg *model.Config, ruleOnly bool) *token.Resolver {
	if ruleOnly || cfg.Parser.APIKey == "" {
		return token.NewRuleResolver()
	}
	return token.NewResolver(cfg.Parser, cfg.Cache)
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	return nil
}
