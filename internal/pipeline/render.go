package pipeline

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/glossa-dev/glossa/internal/model"
)

// Renderer serializes reports for the CLI and batch surfaces.
type Renderer struct {
	format string
}

// NewRenderer creates a renderer for "json" or "yaml" output.
func NewRenderer(format string) *Renderer {
	return &Renderer{format: format}
}

// Render serializes one report.
func (r *Renderer) Render(report *model.Report) ([]byte, error) {
	switch r.format {
	case "", "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("render yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", r.format)
	}
}
