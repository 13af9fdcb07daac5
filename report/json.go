package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/wiless/yagi"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONExporter writes the design with the web form's result field names.
type JSONExporter struct {
	Indent string
}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{Indent: "  "}
}

func (e *JSONExporter) Format() string {
	return "json"
}

func (e *JSONExporter) Export(h Header, r yagi.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", e.Indent)
	return enc.Encode(newDocument(h, r))
}
