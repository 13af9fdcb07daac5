package report

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/wiless/yagi"
)

func sample() (Header, yagi.Result) {
	h := Header{Callsign: "S53ZO", Date: time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)}
	r := yagi.Result{
		FrequencyMHz:     144,
		Gain:             11.79,
		BoomLength:       175.81,
		Unit:             "inches",
		NumberOfElements: 3,
		Elements: []yagi.ElementSpec{
			yagi.NewElement(yagi.Reflector, 0, 0, 40.0633),
			yagi.NewElement(yagi.Driven, 0, 16.3929, 39.2),
			yagi.NewElement(yagi.Director, 1, 22.5, 35.1),
		},
		Spacings: []float64{6.1071},
	}
	return h, r
}

func TestFormats(t *testing.T) {
	want := []string{"json", "matlab", "text", "yaml"}
	if got := Formats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
	for _, f := range want {
		e, err := New(f)
		if err != nil {
			t.Fatalf("New(%q) error %v", f, err)
		}
		if e.Format() != f {
			t.Errorf("New(%q).Format() = %q", f, e.Format())
		}
	}
	if _, err := New("pdf"); err == nil {
		t.Error("New(pdf) returned no error")
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{144, "144 MHz"},
		{432.1, "432.1 MHz"},
		{1296, "1.296 GHz"},
	}
	for _, tt := range tests {
		if got := Frequency(tt.in); got != tt.want {
			t.Errorf("Frequency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextExport(t *testing.T) {
	h, r := sample()
	var buf bytes.Buffer
	if err := NewTextExporter(false).Export(h, r, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{
		"DL6WU Long Boom Yagi",
		"07-Mar-2024",
		"S53ZO",
		"144 MHz",
		"11.79 dBd",
		"175.81 inches",
		"Elements:   3",
		"Reflector",
		"Driven Element",
		"Director 1",
		"40.0633",
		"lengths in inches",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("text report missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("text report has escape codes with color disabled")
	}
}

func TestJSONExport(t *testing.T) {
	h, r := sample()
	var buf bytes.Buffer
	if err := NewJSONExporter().Export(h, r, &buf); err != nil {
		t.Fatal(err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if doc["callsign"] != "S53ZO" || doc["date"] != "07-Mar-2024" {
		t.Errorf("header = %v / %v", doc["callsign"], doc["date"])
	}
	if doc["number_of_elements"] != float64(3) || doc["boom_length_unit"] != "inches" {
		t.Errorf("number_of_elements %v unit %v", doc["number_of_elements"], doc["boom_length_unit"])
	}
	elements, ok := doc["elements"].([]interface{})
	if !ok || len(elements) != 3 {
		t.Fatalf("elements = %v", doc["elements"])
	}
	first := elements[0].(map[string]interface{})
	if first["type"] != "Reflector" || first["length"] != 40.0633 {
		t.Errorf("first element = %v", first)
	}
}

func TestYAMLExport(t *testing.T) {
	h, r := sample()
	var buf bytes.Buffer
	if err := NewYAMLExporter().Export(h, r, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{"callsign: S53ZO", "number_of_elements: 3", "boom_length_unit: inches", "type: Director 1"} {
		if !strings.Contains(out, s) {
			t.Errorf("yaml report missing %q:\n%s", s, out)
		}
	}
}

func TestMatlabExport(t *testing.T) {
	dir, err := ioutil.TempDir("", "yagi")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	h, r := sample()
	e := NewMatlabExporter()
	e.File = filepath.Join(dir, "layout.m")
	var buf bytes.Buffer
	if err := e.Export(h, r, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "layout.m") {
		t.Errorf("note = %q", buf.String())
	}
	script, err := ioutil.ReadFile(filepath.Join(dir, "layout.m"))
	if err != nil {
		t.Fatalf("no script written: %v", err)
	}
	// vlib.NewMatlab also opens a data file next to the script
	if _, err := os.Stat(filepath.Join(dir, "layout.dat")); err != nil {
		t.Errorf("no data file beside the script: %v", err)
	}
	for _, s := range []string{"positions = [", "lengths = [", "stem("} {
		if !strings.Contains(string(script), s) {
			t.Errorf("script missing %q", s)
		}
	}
}
