// Package report renders a finished yagi design for people and tools.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/wiless/yagi"
)

// DateLayout is the date format printed in report headers, e.g. 07-Mar-2024.
const DateLayout = "02-Jan-2006"

// Header identifies who a design was made for and when.
type Header struct {
	Callsign string
	Date     time.Time
}

// NewHeader stamps a header with today's date.
func NewHeader(callsign string) Header {
	return Header{Callsign: callsign, Date: time.Now()}
}

// Exporter writes a design in one output format.
type Exporter interface {
	Export(h Header, r yagi.Result, w io.Writer) error
	Format() string
}

var exporters = map[string]func() Exporter{
	"text":   func() Exporter { return NewTextExporter(false) },
	"json":   func() Exporter { return NewJSONExporter() },
	"yaml":   func() Exporter { return NewYAMLExporter() },
	"matlab": func() Exporter { return NewMatlabExporter() },
}

// New returns the exporter for format.
func New(format string) (Exporter, error) {
	fn, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (want one of %v)", format, Formats())
	}
	return fn(), nil
}

// Formats lists the supported formats in sorted order.
func Formats() []string {
	result := make([]string, 0, len(exporters))
	for name := range exporters {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// document is the serialised shape shared by the json and yaml exporters.
type document struct {
	Date     string `json:"date" yaml:"date"`
	Callsign string `json:"callsign" yaml:"callsign"`
	yagi.Result `yaml:",inline"`
}

func newDocument(h Header, r yagi.Result) document {
	return document{
		Date:     h.Date.Format(DateLayout),
		Callsign: h.Callsign,
		Result:   r,
	}
}
