package output

import (
	"bytes"
	"encoding/json"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// JSONRenderer serializes the report as indented JSON. Field names follow
// the report struct's json tags; map iteration order does not leak into the
// output because maps marshal with sorted keys.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the report.
func (r *JSONRenderer) Render(report *domain.Report) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", err
	}
	return buf.String(), nil
}
