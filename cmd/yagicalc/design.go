package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wiless/vlib"
	"gopkg.in/yaml.v3"

	"github.com/wiless/yagi"
	"github.com/wiless/yagi/form"
	"github.com/wiless/yagi/report"
)

// numeric flags and the form fields they fill.
var numericFlags = []struct {
	flag, field, usage string
}{
	{"frequency", form.Frequency, "design frequency in MHz"},
	{"gain", form.Gain, "target gain in dBd"},
	{"boom-length", form.BoomLength, "available boom length"},
	{"boom-diameter", form.BoomDiameter, "boom diameter, for on-boom mounting"},
	{"driven-diameter", form.DrivenDiameter, "driven element diameter"},
	{"parasitic-diameter", form.ParasiticDiameter, "reflector and director diameter"},
}

type designOptions struct {
	request    string
	specify    string
	save       string
	matlabFile string
}

func (a *app) newDesignCmd() *cobra.Command {
	var opts designOptions

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Compute a Yagi from a frequency and a gain or boom length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDesign(cmd, opts)
		},
	}

	f := cmd.Flags()
	for _, nf := range numericFlags {
		f.Float64(nf.flag, 0, nf.usage)
	}
	f.String(keyUnits, "mm", "length unit: in, mm or wl")
	f.String(keyMounting, "off-boom", "element mounting: conductive, insulated or off-boom")
	f.String(keyCallsign, "N/A", "callsign printed on the report")
	f.String(keyFormat, "text", fmt.Sprintf("report format %v", report.Formats()))
	f.StringVar(&opts.specify, "specify", "", "gain or boom (default from whichever of --gain, --boom-length is set)")
	f.StringVarP(&opts.request, "request", "r", "", "YAML or JSON file with the form fields")
	f.StringVar(&opts.save, "save", "", "also dump the result as JSON to this file")
	f.StringVar(&opts.matlabFile, "matlab-file", "yagi.m", "script written by --format matlab, with a .dat data file beside it")
	for _, key := range []string{keyUnits, keyMounting, keyCallsign, keyFormat} {
		a.v.BindPFlag(key, f.Lookup(key))
	}
	return cmd
}

// fields merges, lowest priority first, configured defaults, the request
// file and explicitly set flags into one form submission.
func (a *app) fields(cmd *cobra.Command, opts designOptions) (form.GenericStruct, error) {
	fields := form.GenericStruct{
		form.Units:           a.v.GetString(keyUnits),
		form.ElementMounting: a.v.GetString(keyMounting),
		form.Callsign:        a.v.GetString(keyCallsign),
	}

	if opts.request != "" {
		data, err := ioutil.ReadFile(opts.request)
		if err != nil {
			return nil, err
		}
		var file map[string]interface{}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to read request %s: %w", opts.request, err)
		}
		for k, v := range file {
			fields[k] = v
		}
	}

	flags := cmd.Flags()
	for _, pair := range [][2]string{
		{keyUnits, form.Units},
		{keyMounting, form.ElementMounting},
		{keyCallsign, form.Callsign},
	} {
		if flags.Changed(pair[0]) {
			fields[pair[1]] = a.v.GetString(pair[0])
		}
	}
	for _, nf := range numericFlags {
		if flags.Changed(nf.flag) {
			value, _ := flags.GetFloat64(nf.flag)
			fields[nf.field] = value
		}
	}

	switch {
	case opts.specify != "":
		fields[form.Specify] = opts.specify
	case flags.Changed("gain") && flags.Changed("boom-length"):
		return nil, errors.New("set only one of --gain and --boom-length, or pick one with --specify")
	case flags.Changed("gain"):
		fields[form.Specify] = "gain"
	case flags.Changed("boom-length"):
		fields[form.Specify] = "boom"
	}
	return fields, nil
}

func (a *app) runDesign(cmd *cobra.Command, opts designOptions) error {
	fields, err := a.fields(cmd, opts)
	if err != nil {
		return err
	}
	sub, err := form.Decode(fields)
	if err != nil {
		return err
	}

	designer := yagi.NewDesigner()
	designer.Log = a.log.WithField("cmd", "yagicalc")
	result, err := designer.Design(sub.Request)
	if err != nil {
		a.log.WithFields(log.Fields{"kind": yagi.KindOf(err), "callsign": sub.Callsign}).Debug("design rejected")
		return err
	}

	exporter, err := report.New(a.v.GetString(keyFormat))
	if err != nil {
		return err
	}
	switch e := exporter.(type) {
	case *report.TextExporter:
		e.Color = a.v.GetBool(keyColor)
	case *report.MatlabExporter:
		e.File = opts.matlabFile
	}
	if err := exporter.Export(report.NewHeader(sub.Callsign), result, cmd.OutOrStdout()); err != nil {
		return err
	}

	if opts.save != "" {
		os.Remove(opts.save)
		vlib.SaveStructure(result, opts.save, true)
		if _, err := os.Stat(opts.save); err != nil {
			return fmt.Errorf("failed to save result to %s: %w", opts.save, err)
		}
		a.log.WithField("file", opts.save).Info("result saved")
	}
	return nil
}
