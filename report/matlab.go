package report

import (
	"fmt"
	"io"

	"github.com/wiless/vlib"

	"github.com/wiless/yagi"
)

// MatlabExporter writes an .m script that plots the element layout. The
// script goes to File, with vlib's .dat data file beside it; w only
// receives a note naming the script.
type MatlabExporter struct {
	File   string
	HoldOn bool
}

func NewMatlabExporter() *MatlabExporter {
	return &MatlabExporter{File: "yagi.m"}
}

func (e *MatlabExporter) Format() string {
	return "matlab"
}

func (e *MatlabExporter) Export(h Header, r yagi.Result, w io.Writer) error {
	positions := vlib.NewVectorF(len(r.Elements))
	lengths := vlib.NewVectorF(len(r.Elements))
	for i, el := range r.Elements {
		positions[i] = el.Position
		lengths[i] = el.Length
	}

	matlab := vlib.NewMatlab(e.File)
	matlab.Silent = true
	matlab.Json = false

	matlab.Command(fmt.Sprintf("%% %s %s %s", h.Callsign, h.Date.Format(DateLayout), Frequency(r.FrequencyMHz)))
	matlab.Export("positions", positions)
	matlab.Export("lengths", lengths)
	matlab.Export("gain", vlib.VectorF{r.Gain})
	matlab.Export("boom", vlib.VectorF{r.BoomLength})
	if !e.HoldOn {
		matlab.Command("figure;")
	}
	matlab.Command("stem(positions, lengths/2, 'k-'); hold on;")
	matlab.Command("stem(positions, -lengths/2, 'k-');")
	matlab.Command(fmt.Sprintf("xlabel('position (%s)'); ylabel('half length (%s)');", r.Unit, r.Unit))
	matlab.Command("grid on;")
	matlab.Close()

	_, err := fmt.Fprintf(w, "%d elements written to %s\n", r.NumberOfElements, e.File)
	return err
}
