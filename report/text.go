package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/wiless/yagi"
)

// TextExporter prints a design as an aligned table for the workshop.
type TextExporter struct {
	Color bool
}

func NewTextExporter(useColor bool) *TextExporter {
	return &TextExporter{Color: useColor}
}

func (e *TextExporter) Format() string {
	return "text"
}

func (e *TextExporter) heading() func(a ...interface{}) string {
	c := color.New(color.FgCyan, color.Bold)
	if e.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Frequency formats a frequency in MHz with an SI prefix, e.g. "144 MHz".
func Frequency(freqMHz float64) string {
	return humanize.SIWithDigits(freqMHz*1e6, 4, "Hz")
}

func (e *TextExporter) Export(h Header, r yagi.Result, w io.Writer) error {
	bold := e.heading()

	fmt.Fprintf(w, "%s\n", bold("DL6WU Long Boom Yagi"))
	fmt.Fprintf(w, "Date:       %s\n", h.Date.Format(DateLayout))
	fmt.Fprintf(w, "Callsign:   %s\n", h.Callsign)
	fmt.Fprintf(w, "Frequency:  %s\n", Frequency(r.FrequencyMHz))
	fmt.Fprintf(w, "Gain:       %s dBd\n", humanize.Ftoa(r.Gain))
	fmt.Fprintf(w, "Boom:       %s %s\n", humanize.Ftoa(r.BoomLength), r.Unit)
	fmt.Fprintf(w, "Elements:   %d\n\n", r.NumberOfElements)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t\n", bold("Element"), bold("Position"), bold("Length"))
	for _, el := range r.Elements {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", el.Type, humanize.Ftoa(el.Position), humanize.Ftoa(el.Length))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nPositions measured from the reflector, lengths in %s.\n", r.Unit)
	return err
}
