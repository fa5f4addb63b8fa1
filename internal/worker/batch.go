package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/glossa-dev/glossa/internal/model"
)

// Analyzer is the per-record analysis the batch runner fans out.
type Analyzer interface {
	Analyze(ctx context.Context, id, text string) (*model.Report, error)
}

// AnalyzeResult is the outcome of one record analysis.
type AnalyzeResult struct {
	ID     string
	Report *model.Report
	Err    error
}

// AnalyzeJob builds the pool job for one memory record.
func AnalyzeJob(analyzer Analyzer, memory model.Memory) Job[AnalyzeResult] {
	return func(ctx context.Context) AnalyzeResult {
		report, err := analyzer.Analyze(ctx, memory.ID, memory.Text)
		return AnalyzeResult{ID: memory.ID, Report: report, Err: err}
	}
}

// ReadMemories loads a corpus file: one JSON memory record per line.
// Blank lines and lines starting with # are skipped. Records without
// an id get "mem-N" from their 1-based record position in the corpus.
func ReadMemories(path string) ([]model.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	var memories []model.Memory
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		var memory model.Memory
		if err := json.Unmarshal([]byte(raw), &memory); err != nil {
			return nil, fmt.Errorf("corpus line %d: %w", line, err)
		}
		if memory.ID == "" {
			memory.ID = fmt.Sprintf("mem-%d", len(memories)+1)
		}
		memories = append(memories, memory)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	return memories, nil
}
