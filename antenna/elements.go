package antenna

import (
	"errors"
	"math"
)

// ReflectorReactance is the reflector reactance recommended by DL6WU.
const ReflectorReactance = 20.0

// DrivenScale is DL6WU's empirical lengthening of the driven element.
const DrivenScale = 1.02

// Element diameter limits for the reflector, driven and director regressions.
const (
	MinDiameter = 0.001
	MaxDiameter = 0.02
)

var (
	ErrDrivenDiameter    = errors.New("Driven element diameter must be between 0.001 and 0.02 wavelengths")
	ErrParasiticDiameter = errors.New("Parasitic element diameter must be between 0.001 and 0.02 wavelengths")
)

func ValidDiameter(d float64) bool {
	return d >= MinDiameter && d <= MaxDiameter
}

// ReflectorLength returns the reflector length for parasitic diameter ed.
func ReflectorLength(ed, bc float64) float64 {
	xr := ReflectorReactance
	r := (((xr - 40) / (186.8769*math.Log(2/ed) - 320)) + 1) / 2
	return r + bc
}

// DrivenLength returns the driven element length for diameter dd.
func DrivenLength(dd, bc float64) float64 {
	de := (0.4777 - 1.0522*dd + 0.43363*math.Pow(dd, -0.014891)) / 2
	de *= DrivenScale
	return de + bc
}
