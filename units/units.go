// Package units normalises lengths given in inches, millimetres or
// wavelengths to wavelengths at the operating frequency, and back.
package units

import (
	"errors"
	"math"
	"strings"
)

// C is the speed of light scaled so that C/fMHz yields a wavelength in mm.
const C = 299792.458

// MMPerInch millimetres in one inch
const MMPerInch = 25.4

type Unit int

const (
	Inches Unit = iota + 1
	Millimeters
	Wavelengths
)

// Units holds the labels used when printing lengths, indexed by Unit.
var Units = [...]string{
	"Unknown-Unit",
	"inches",
	"mm",
	"wavelengths",
}

var ErrInvalidUnit = errors.New("Invalid unit selection")

func (u Unit) Valid() bool {
	return u >= Inches && u <= Wavelengths
}

func (u Unit) String() string {
	if !u.Valid() {
		return Units[0]
	}
	return Units[u]
}

// Label is the unit label printed next to converted lengths.
func (u Unit) Label() string {
	return u.String()
}

// ParseUnit accepts the numeric form codes "1", "2", "3" as well as the
// usual names and abbreviations.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "in", "inch", "inches", `"`:
		return Inches, nil
	case "2", "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return Millimeters, nil
	case "3", "wl", "lambda", "wavelength", "wavelengths":
		return Wavelengths, nil
	}
	return 0, ErrInvalidUnit
}

// Wavelength returns the free-space wavelength in mm for a frequency in MHz.
func Wavelength(freqMHz float64) float64 {
	return C / freqMHz
}

// Factor returns the multiplier that takes a length in u to wavelengths.
func Factor(u Unit, wavelengthMM float64) (float64, error) {
	switch u {
	case Inches:
		return MMPerInch / wavelengthMM, nil
	case Millimeters:
		return 1 / wavelengthMM, nil
	case Wavelengths:
		return 1, nil
	default:
		return math.NaN(), ErrInvalidUnit
	}
}

func ToWavelengths(value float64, u Unit, wavelengthMM float64) (float64, error) {
	f, err := Factor(u, wavelengthMM)
	if err != nil {
		return math.NaN(), err
	}
	return value * f, nil
}

// InverseFactor returns the multiplier that takes wavelengths to a length in u.
func InverseFactor(u Unit, wavelengthMM float64) (float64, error) {
	switch u {
	case Inches:
		return wavelengthMM / MMPerInch, nil
	case Millimeters:
		return wavelengthMM, nil
	case Wavelengths:
		return 1, nil
	default:
		return math.NaN(), ErrInvalidUnit
	}
}

// FromWavelengths is the inverse of ToWavelengths.
func FromWavelengths(value float64, u Unit, wavelengthMM float64) (float64, error) {
	f, err := InverseFactor(u, wavelengthMM)
	if err != nil {
		return math.NaN(), err
	}
	return value * f, nil
}
