package antenna

import (
	"math"

	"github.com/wiless/vlib"
)

// DirectorRow holds the length regression fitted for one parasitic element
// diameter: length(N) = (K1 - K2*ln N) * (1 - K3*exp(-K4*N)).
type DirectorRow struct {
	Diameter       float64
	K1, K2, K3, K4 float64
}

// DirectorTable is ordered by increasing diameter.
var DirectorTable = []DirectorRow{
	{0.001, 0.4711, 0.018, 0.08398, 0.965},
	{0.003, 0.462, 0.01941, 0.08543, 0.9697},
	{0.005, 0.4538, 0.02117, 0.0951, 1.007},
	{0.007, 0.4491, 0.02274, 0.08801, 0.9004},
	{0.01, 0.4421, 0.02396, 0.1027, 1.038},
	{0.015, 0.4358, 0.02558, 0.1149, 1.034},
	{0.02, 0.4268, 0.02614, 0.1112, 1.036},
}

// Length of director n (1-based) for this diameter, without boom correction.
func (r DirectorRow) Length(n int) float64 {
	N := float64(n)
	return (r.K1 - r.K2*math.Log(N)) * (1 - r.K3*math.Exp(-r.K4*N))
}

// DirectorBand is the table lookup for a diameter: either one row (J == 0)
// or a lower/upper pair with J the interpolation fraction between them.
type DirectorBand struct {
	Lower, Upper DirectorRow
	J            float64
}

// LookupDirector finds the rows for diameter ed. Diameters outside the table
// are clamped to the nearest end row.
func LookupDirector(ed float64) DirectorBand {
	first, last := DirectorTable[0], DirectorTable[len(DirectorTable)-1]
	if ed <= first.Diameter {
		return DirectorBand{Lower: first, Upper: first}
	}
	if ed >= last.Diameter {
		return DirectorBand{Lower: last, Upper: last}
	}
	for i, row := range DirectorTable {
		if row.Diameter == ed {
			return DirectorBand{Lower: row, Upper: row}
		}
		if row.Diameter > ed {
			lower := DirectorTable[i-1]
			j := (ed - lower.Diameter) / (row.Diameter - lower.Diameter)
			return DirectorBand{Lower: lower, Upper: row, J: j}
		}
	}
	return DirectorBand{Lower: last, Upper: last}
}

// Length of director n, linearly interpolated across the band.
func (b DirectorBand) Length(n int) float64 {
	if b.J == 0 {
		return b.Lower.Length(n)
	}
	dl := b.Lower.Length(n)
	dh := b.Upper.Length(n)
	return dl + b.J*(dh-dl)
}

// DirectorLengths returns the lengths of directors 1..m of diameter ed with
// the boom correction bc added.
func DirectorLengths(m int, ed, bc float64) vlib.VectorF {
	band := LookupDirector(ed)
	result := vlib.NewVectorF(m)
	for i := 0; i < m; i++ {
		result[i] = band.Length(i+1) + bc
	}
	return result
}
