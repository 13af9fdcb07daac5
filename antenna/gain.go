// Package antenna holds the DL6WU long-boom Yagi regressions. All lengths,
// spacings and diameters are in wavelengths.
package antenna

import (
	"errors"
	"math"
)

// Gain and boom-length limits of the regression, gain in dBd and boom in wavelengths.
const (
	MinGain = 11.8
	MaxGain = 21.6
	MinBoom = 2.2
	MaxBoom = 39.0
)

var (
	ErrGainRange = errors.New("Gain must be between 11.8 dBd and 21.6 dBd")
	ErrBoomRange = errors.New("Boom length must be between 2.2 and 39 wavelengths")
)

// EstimateBoom returns the boom length giving gainDbd, without range checks.
func EstimateBoom(gainDbd float64) float64 {
	return math.Exp((gainDbd - 9.2) / 3.39)
}

// EstimateGain returns the gain in dBd of a boom of the given length.
func EstimateGain(boom float64) float64 {
	return 9.2 + 3.39*math.Log(boom)
}

// BoomForGain checks the gain against [MinGain,MaxGain] and estimates the boom.
func BoomForGain(gainDbd float64) (float64, error) {
	if !(gainDbd >= MinGain && gainDbd <= MaxGain) {
		return math.NaN(), ErrGainRange
	}
	return EstimateBoom(gainDbd), nil
}

// GainForBoom checks the boom against [MinBoom,MaxBoom] and estimates the gain.
func GainForBoom(boom float64) (float64, error) {
	if !(boom >= MinBoom && boom <= MaxBoom) {
		return math.NaN(), ErrBoomRange
	}
	return EstimateGain(boom), nil
}
