package antenna

import (
	"errors"
	"math"
	"strings"
)

// Mounting describes how the elements pass the boom.
type Mounting int

const (
	OnBoomConductive Mounting = iota + 1
	OnBoomInsulated
	OffBoom
)

var Mountings = [...]string{
	"Unknown-Mounting",
	"on-boom-conductive",
	"on-boom-insulated",
	"off-boom",
}

// MaxBoomDiameter is the largest boom the correction is fitted for.
const MaxBoomDiameter = 0.06

var (
	ErrBoomDiameter = errors.New("Boom diameter must be less than 0.06 wavelengths")
	ErrMounting     = errors.New("Invalid element mounting")
)

func (m Mounting) Valid() bool {
	return m >= OnBoomConductive && m <= OffBoom
}

func (m Mounting) String() string {
	if !m.Valid() {
		return Mountings[0]
	}
	return Mountings[m]
}

// NeedsBoom reports whether the boom diameter enters the design.
func (m Mounting) NeedsBoom() bool {
	return m == OnBoomConductive || m == OnBoomInsulated
}

// ParseMounting accepts the form codes "1", "2", "3" and the mounting names.
func ParseMounting(s string) (Mounting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "conductive", "on-boom", "on-boom-conductive":
		return OnBoomConductive, nil
	case "2", "insulated", "on-boom-insulated":
		return OnBoomInsulated, nil
	case "3", "off", "off-boom":
		return OffBoom, nil
	}
	return 0, ErrMounting
}

// BoomCorrection returns the length added to every element for a boom of
// diameter bd. Off-boom mounting needs no correction and ignores bd.
func BoomCorrection(bd float64, m Mounting) (float64, error) {
	switch m {
	case OffBoom:
		return 0, nil
	case OnBoomConductive, OnBoomInsulated:
	default:
		return math.NaN(), ErrMounting
	}
	if !(bd <= MaxBoomDiameter) {
		return math.NaN(), ErrBoomDiameter
	}
	bc1 := 733*bd*(0.055-bd) - 504*bd*(0.03-bd)
	if m == OnBoomInsulated {
		bc1 /= 2
	}
	return bc1 * bd, nil
}
