// Package yagi designs DL6WU long-boom Yagi-Uda antennas from a frequency and
// either a target gain or an available boom length.
package yagi

import (
	"fmt"

	"github.com/wiless/yagi/antenna"
	"github.com/wiless/yagi/units"
)

type SpecifyMode int

const (
	ByGain SpecifyMode = iota + 1
	ByBoomLength
)

var SpecifyModes = [...]string{
	"Unknown-SpecifyMode",
	"gain",
	"boom",
}

func (s SpecifyMode) String() string {
	if s < ByGain || s > ByBoomLength {
		return SpecifyModes[0]
	}
	return SpecifyModes[s]
}

// Request is one design order. Lengths are in Unit, frequency in MHz.
type Request struct {
	FrequencyMHz float64
	Unit         units.Unit
	Specify      SpecifyMode
	// Target is the gain in dBd for ByGain, the boom length in Unit for ByBoomLength
	Target   float64
	Mounting antenna.Mounting
	// BoomDiameter is nil for off-boom mounting
	BoomDiameter      *float64
	DrivenDiameter    float64
	ParasiticDiameter float64
}

// Role of an element on the boom.
type Role int

const (
	Reflector Role = iota
	Driven
	Director
)

var Roles = [...]string{
	"Reflector",
	"Driven Element",
	"Director",
}

func (r Role) String() string {
	if int(r) >= len(Roles) || r < 0 {
		return "Unknown-Role"
	}
	return Roles[r]
}

// ElementSpec is one element of the finished design.
type ElementSpec struct {
	Role     Role    `json:"-" yaml:"-"`
	Index    int     `json:"-" yaml:"-"` // director number, 0 for reflector and driven element
	Type     string  `json:"type" yaml:"type"`
	Position float64 `json:"position" yaml:"position"`
	Length   float64 `json:"length" yaml:"length"`
}

// NewElement builds an element and its printable type.
func NewElement(role Role, index int, position, length float64) ElementSpec {
	e := ElementSpec{Role: role, Index: index, Position: position, Length: length}
	e.Type = role.String()
	if role == Director {
		e.Type = fmt.Sprintf("Director %d", index)
	}
	return e
}

// Result is a finished design with every length in the request's unit.
// Gain and BoomLength are rounded to 2 decimals, element values to 4.
type Result struct {
	FrequencyMHz     float64       `json:"frequency" yaml:"frequency"`
	Gain             float64       `json:"gain" yaml:"gain"`
	BoomLength       float64       `json:"boom_length" yaml:"boom_length"`
	Unit             string        `json:"boom_length_unit" yaml:"boom_length_unit"`
	NumberOfElements int           `json:"number_of_elements" yaml:"number_of_elements"`
	Elements         []ElementSpec `json:"elements" yaml:"elements"`

	// Spacings is the gap in front of each director.
	Spacings []float64 `json:"spacings" yaml:"spacings"`
	// EstimatedGain and EstimatedBoom come from the gain/boom regression before
	// packing. Gain and BoomLength describe the packed boom.
	EstimatedGain float64 `json:"estimated_gain" yaml:"estimated_gain"`
	EstimatedBoom float64 `json:"estimated_boom_length" yaml:"estimated_boom_length"`
}

// Directors returns the director elements of the result.
func (r Result) Directors() []ElementSpec {
	if len(r.Elements) < 2 {
		return nil
	}
	return r.Elements[2:]
}
