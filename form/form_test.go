package form

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wiless/yagi"
	"github.com/wiless/yagi/antenna"
	"github.com/wiless/yagi/units"
)

// posted mirrors what the web form sends: every value a string.
func posted() GenericStruct {
	return GenericStruct{
		"callsign":                   "S53ZO",
		"frequency":                  "432",
		"units":                      "2",
		"specify":                    "gain",
		"gain":                       "15",
		"boom_length":                "",
		"element_mounting":           "1",
		"boom_diameter":              "20",
		"driven_element_diameter":    "6",
		"parasitic_element_diameter": "4",
	}
}

func TestDecodePosted(t *testing.T) {
	sub, err := Decode(posted())
	if err != nil {
		t.Fatalf("Decode() error %v", err)
	}
	req := sub.Request
	if sub.Callsign != "S53ZO" {
		t.Errorf("Callsign = %q", sub.Callsign)
	}
	if req.FrequencyMHz != 432 || req.Unit != units.Millimeters || req.Specify != yagi.ByGain || req.Target != 15 {
		t.Errorf("request = %+v", req)
	}
	if req.Mounting != antenna.OnBoomConductive || req.BoomDiameter == nil || *req.BoomDiameter != 20 {
		t.Errorf("mounting %v boom %v", req.Mounting, req.BoomDiameter)
	}
	if req.DrivenDiameter != 6 || req.ParasiticDiameter != 4 {
		t.Errorf("diameters %v %v", req.DrivenDiameter, req.ParasiticDiameter)
	}
}

func TestDecodeTypedValues(t *testing.T) {
	in := GenericStruct{
		"frequency":                  144,
		"units":                      3,
		"specify":                    "boom",
		"boom_length":                10.0,
		"element_mounting":           3,
		"boom_diameter":              0.5,
		"driven_element_diameter":    0.01,
		"parasitic_element_diameter": 0.01,
	}
	sub, err := Decode(in)
	if err != nil {
		t.Fatalf("Decode() error %v", err)
	}
	if sub.Callsign != DefaultCallsign {
		t.Errorf("Callsign = %q, want %q", sub.Callsign, DefaultCallsign)
	}
	if sub.Request.BoomDiameter != nil {
		t.Errorf("off-boom mounting kept boom diameter %v", *sub.Request.BoomDiameter)
	}
	if sub.Request.Unit != units.Wavelengths || sub.Request.Specify != yagi.ByBoomLength || sub.Request.Target != 10 {
		t.Errorf("request = %+v", sub.Request)
	}
}

func TestDecodeMatchesDirectRequest(t *testing.T) {
	sub, err := Decode(posted())
	if err != nil {
		t.Fatal(err)
	}
	fromForm, err := yagi.Design(sub.Request)
	if err != nil {
		t.Fatal(err)
	}
	bd := 20.0
	direct, err := yagi.Design(yagi.Request{
		FrequencyMHz:      432,
		Unit:              units.Millimeters,
		Specify:           yagi.ByGain,
		Target:            15,
		Mounting:          antenna.OnBoomConductive,
		BoomDiameter:      &bd,
		DrivenDiameter:    6,
		ParasiticDiameter: 4,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fromForm, direct) {
		t.Errorf("form result differs from direct result")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(g GenericStruct)
		kind   yagi.ErrorKind
	}{
		{"missing frequency", func(g GenericStruct) { delete(g, Frequency) }, yagi.MalformedInput},
		{"empty frequency", func(g GenericStruct) { g[Frequency] = "  " }, yagi.MalformedInput},
		{"text frequency", func(g GenericStruct) { g[Frequency] = "two metres" }, yagi.MalformedInput},
		{"missing gain", func(g GenericStruct) { delete(g, Gain) }, yagi.MalformedInput},
		{"missing boom length", func(g GenericStruct) { g[Specify] = "boom" }, yagi.MalformedInput},
		{"bad specify", func(g GenericStruct) { g[Specify] = "both" }, yagi.MalformedInput},
		{"missing boom diameter", func(g GenericStruct) { delete(g, BoomDiameter) }, yagi.MalformedInput},
		{"bad mounting", func(g GenericStruct) { g[ElementMounting] = "5" }, yagi.MalformedInput},
		{"missing driven", func(g GenericStruct) { delete(g, DrivenDiameter) }, yagi.MalformedInput},
		{"missing parasitic", func(g GenericStruct) { g[ParasiticDiameter] = nil }, yagi.MalformedInput},
		{"unit 4", func(g GenericStruct) { g[Units] = "4" }, yagi.InvalidUnit},
		{"unit missing", func(g GenericStruct) { delete(g, Units) }, yagi.InvalidUnit},
	}
	for _, tt := range tests {
		g := posted()
		tt.modify(g)
		sub, err := Decode(g)
		if err == nil {
			t.Errorf("%s: no error", tt.name)
			continue
		}
		if yagi.KindOf(err) != tt.kind {
			t.Errorf("%s: kind %v, want %v (%v)", tt.name, yagi.KindOf(err), tt.kind, err)
		}
		if sub.Request.FrequencyMHz != 0 {
			t.Errorf("%s: partial submission returned", tt.name)
		}
	}
}

func TestDecodeWrapsParseError(t *testing.T) {
	g := posted()
	g[Gain] = "lots"
	_, err := Decode(g)
	if !errors.Is(err, yagi.ErrMalformedInput) {
		t.Fatalf("error %v is not MalformedInput", err)
	}
	if errors.Unwrap(err) == nil {
		t.Error("mapstructure error not wrapped")
	}
}
