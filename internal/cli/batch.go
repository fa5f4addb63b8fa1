package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/glossa-dev/glossa/internal/pipeline"
	"github.com/glossa-dev/glossa/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <corpus.jsonl>",
	Short: "Analyze a memory corpus in parallel",
	Long: `Batch analyzes a corpus of memory records concurrently:
- Read records from the input file (one JSON object per line)
- Analyze records in parallel with a configurable worker count
- Each individual analysis stays single-threaded and deterministic
- Write one report per record to the output directory

Example:
  glossa batch corpus.jsonl
  glossa batch corpus.jsonl --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./glossa-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&format, "format", "json", "output format (json, yaml)")
	batchCmd.Flags().BoolVar(&ruleOnly, "rule-only", false, "force the deterministic rule backend")
	batchCmd.Flags().StringVar(&subjectText, "subject", "", "fallback subject for predicates without one")
}

func runBatch(cmd *cobra.Command, args []string) error {
	memories, err := worker.ReadMemories(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cfg := loadConfig()
	cfg.Output.Format = format
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	resolver := newResolver(cfg, ruleOnly)
	analyzer := pipeline.NewAnalyzer(resolver, cfg)
	analyzer.Subject = subjectText
	renderer := pipeline.NewRenderer(cfg.Output.Format)

	if verbose {
		fmt.Fprintf(os.Stderr, "Batch: %d records, %d workers, output %s\n",
			len(memories), cfg.Concurrency.Workers, outputDir)
	}

	pool := worker.NewPool[worker.AnalyzeResult](cfg.Concurrency.Workers)
	pool.Start()

	done := make(chan struct{})
	go func() {
		select {
		case <-time.After(batchTimeout):
			pool.Shutdown()
		case <-done:
		}
	}()

	for _, memory := range memories {
		pool.Submit(worker.AnalyzeJob(analyzer, memory))
	}

	results := pool.Wait()
	close(done)

	failures := 0
	for _, result := range results {
		if result.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "  %s: %v\n", result.ID, result.Err)
			continue
		}

		data, err := renderer.Render(result.Report)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "  %s: %v\n", result.ID, err)
			continue
		}

		ext := "json"
		if cfg.Output.Format == "yaml" {
			ext = "yaml"
		}
		path := filepath.Join(outputDir, fmt.Sprintf("%s.%s", result.ID, ext))
		if err := os.WriteFile(path, data, 0644); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "  %s: %v\n", result.ID, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Analyzed %d records, %d failed\n", len(results), failures)
	if failures > 0 {
		return fmt.Errorf("%d of %d records failed", failures, len(results))
	}
	return nil
}
