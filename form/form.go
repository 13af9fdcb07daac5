// Package form turns the loosely typed fields of a design form into a
// yagi.Request. Field names follow the web form.
package form

import (
	"fmt"
	"strings"

	ms "github.com/mitchellh/mapstructure"

	"github.com/wiless/yagi"
	"github.com/wiless/yagi/antenna"
	"github.com/wiless/yagi/units"
)

// GenericStruct holds raw field values keyed by field name. Values may be
// strings, as posted by a form, or numbers, as read from YAML or JSON.
type GenericStruct map[string]interface{}

// Field names.
const (
	Callsign          = "callsign"
	Frequency         = "frequency"
	Units             = "units"
	Specify           = "specify"
	Gain              = "gain"
	BoomLength        = "boom_length"
	ElementMounting   = "element_mounting"
	BoomDiameter      = "boom_diameter"
	DrivenDiameter    = "driven_element_diameter"
	ParasiticDiameter = "parasitic_element_diameter"
)

// Fields lists every recognised field name.
var Fields = []string{
	Callsign, Frequency, Units, Specify, Gain, BoomLength,
	ElementMounting, BoomDiameter, DrivenDiameter, ParasiticDiameter,
}

// DefaultCallsign is shown when the form leaves the callsign empty.
const DefaultCallsign = "N/A"

type fields struct {
	Callsign          string   `mapstructure:"callsign"`
	Frequency         *float64 `mapstructure:"frequency"`
	Units             string   `mapstructure:"units"`
	Specify           string   `mapstructure:"specify"`
	Gain              *float64 `mapstructure:"gain"`
	BoomLength        *float64 `mapstructure:"boom_length"`
	ElementMounting   string   `mapstructure:"element_mounting"`
	BoomDiameter      *float64 `mapstructure:"boom_diameter"`
	DrivenDiameter    *float64 `mapstructure:"driven_element_diameter"`
	ParasiticDiameter *float64 `mapstructure:"parasitic_element_diameter"`
}

// Submission is a decoded form: the design request plus the station it is for.
type Submission struct {
	Callsign string
	Request  yagi.Request
}

func malformed(format string, args ...interface{}) error {
	return yagi.NewError(yagi.MalformedInput, fmt.Sprintf(format, args...), nil)
}

// Decode validates presence and numeric syntax of the fields and converts
// the unit, mode and mounting codes. Range checks are left to the designer.
func Decode(in GenericStruct) (Submission, error) {
	var f fields
	var sub Submission

	cleaned := make(map[string]interface{}, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			v = s
		}
		if v == nil {
			continue
		}
		cleaned[strings.ToLower(k)] = v
	}

	decoder, err := ms.NewDecoder(&ms.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &f,
	})
	if err != nil {
		return Submission{}, err
	}
	if err := decoder.Decode(cleaned); err != nil {
		return Submission{}, yagi.NewError(yagi.MalformedInput, "Invalid input. Please check your inputs.", err)
	}

	sub.Callsign = f.Callsign
	if sub.Callsign == "" {
		sub.Callsign = DefaultCallsign
	}

	req := &sub.Request
	if f.Frequency == nil {
		return Submission{}, malformed("Missing field %s", Frequency)
	}
	req.FrequencyMHz = *f.Frequency

	switch strings.ToLower(strings.TrimSpace(f.Specify)) {
	case "gain":
		if f.Gain == nil {
			return Submission{}, malformed("Missing field %s", Gain)
		}
		req.Specify, req.Target = yagi.ByGain, *f.Gain
	case "boom", "boom_length", "boom-length":
		if f.BoomLength == nil {
			return Submission{}, malformed("Missing field %s", BoomLength)
		}
		req.Specify, req.Target = yagi.ByBoomLength, *f.BoomLength
	default:
		return Submission{}, malformed("Field %s must be gain or boom", Specify)
	}

	req.Mounting, err = antenna.ParseMounting(f.ElementMounting)
	if err != nil {
		return Submission{}, yagi.NewError(yagi.MalformedInput, err.Error(), err)
	}
	if req.Mounting.NeedsBoom() {
		if f.BoomDiameter == nil {
			return Submission{}, malformed("Missing field %s", BoomDiameter)
		}
		req.BoomDiameter = f.BoomDiameter
	}

	if f.DrivenDiameter == nil {
		return Submission{}, malformed("Missing field %s", DrivenDiameter)
	}
	if f.ParasiticDiameter == nil {
		return Submission{}, malformed("Missing field %s", ParasiticDiameter)
	}
	req.DrivenDiameter = *f.DrivenDiameter
	req.ParasiticDiameter = *f.ParasiticDiameter

	req.Unit, err = units.ParseUnit(f.Units)
	if err != nil {
		return Submission{}, yagi.NewError(yagi.InvalidUnit, err.Error(), err)
	}
	return sub, nil
}
