package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wiless/yagi"
)

type YAMLExporter struct{}

func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

func (e *YAMLExporter) Format() string {
	return "yaml"
}

func (e *YAMLExporter) Export(h Header, r yagi.Result, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(h, r)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
