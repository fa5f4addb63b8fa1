package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glossa-dev/glossa/internal/concept"
	"github.com/glossa-dev/glossa/internal/worker"
)

var (
	existingPath string
	maxConcepts  int
)

// conceptsCmd represents the concepts command
var conceptsCmd = &cobra.Command{
	Use:   "concepts <corpus.jsonl>",
	Short: "Suggest new concept names from a memory corpus",
	Long: `Concepts scans a corpus of memory records (and any event frames
they carry) and proposes new named concepts in three passes:
frame role values, unseen multiword noun spans, and TF-IDF ranked
nouns. Names already in the existing vocabulary are never
re-suggested.

Example:
  glossa concepts corpus.jsonl
  glossa concepts corpus.jsonl --existing vocabulary.txt --max 20`,
	Args: cobra.ExactArgs(1),
	RunE: runConcepts,
}

func init() {
	rootCmd.AddCommand(conceptsCmd)

	conceptsCmd.Flags().StringVar(&existingPath, "existing", "", "file of existing concept names, one per line")
	conceptsCmd.Flags().IntVar(&maxConcepts, "max", 0, "cap on suggestions (0 = unlimited)")
	conceptsCmd.Flags().BoolVar(&ruleOnly, "rule-only", false, "force the deterministic rule backend")
}

func runConcepts(cmd *cobra.Command, args []string) error {
	memories, err := worker.ReadMemories(args[0])
	if err != nil {
		return err
	}

	var existing []string
	if existingPath != "" {
		existing, err = readNames(existingPath)
		if err != nil {
			return err
		}
	}

	cfg := loadConfig()
	if maxConcepts > 0 {
		cfg.Limits.MaxConcepts = maxConcepts
	}

	backend, err := newResolver(cfg, ruleOnly).Resolve()
	if err != nil {
		return fmt.Errorf("resolve backend: %w", err)
	}

	suggestions := concept.NewSuggester(backend).Suggest(memories, existing, cfg.Limits.MaxConcepts)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(suggestions); err != nil {
		return fmt.Errorf("render suggestions: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%d suggestions from %d records\n", len(suggestions), len(memories))
	}
	return nil
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name != "" && !strings.HasPrefix(name, "#") {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return names, nil
}
