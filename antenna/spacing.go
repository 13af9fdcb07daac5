package antenna

import (
	"math"

	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
)

// ReflectorSpacing is the reflector to driven element gap.
const ReflectorSpacing = 0.2

// SpacingTable holds the gap in front of director N at index N-1.
// Directors beyond the table reuse the last entry.
var SpacingTable = [...]float64{
	0.075, 0.180, 0.215, 0.250, 0.280, 0.300, 0.315,
	0.330, 0.345, 0.360, 0.375, 0.390, 0.400, 0.400,
}

// Spacing returns the gap in front of director n (1-based).
func Spacing(n int) float64 {
	if n < 1 {
		n = 1
	}
	if n > len(SpacingTable) {
		return SpacingTable[len(SpacingTable)-1]
	}
	return SpacingTable[n-1]
}

// BoomPlan is the outcome of packing directors on a boom.
type BoomPlan struct {
	Directors int
	Spacings  vlib.VectorF // gap in front of each director
	Positions vlib.VectorF // distance of each director from the reflector
	Length    float64      // boom actually used, position of the last director
	Gain      float64      // gain in dBd re-estimated from Length
}

// Pack places directors greedily on a boom of the given length. The trial
// spacing that overruns the boom is discarded, so the plan never exceeds boom.
// A NaN or infinite boom yields an empty plan.
func Pack(boom float64) BoomPlan {
	var plan BoomPlan
	plan.Spacings = vlib.NewVectorF(0)
	if math.IsNaN(boom) || math.IsInf(boom, 0) {
		plan.Positions = vlib.NewVectorF(0)
		return plan
	}

	available := boom
	available -= ReflectorSpacing
	for n := 1; ; n++ {
		spacing := Spacing(n)
		available -= spacing
		if available < 0 {
			break
		}
		plan.Spacings.AppendAtEnd(spacing)
	}
	plan.Directors = len(plan.Spacings)

	offsets := make([]float64, 0, plan.Directors+1)
	offsets = append(offsets, ReflectorSpacing)
	offsets = append(offsets, plan.Spacings...)
	cumulative := floats.CumSum(make([]float64, len(offsets)), offsets)
	plan.Positions = vlib.VectorF(cumulative[1:])

	if plan.Directors > 0 {
		plan.Length = plan.Positions[plan.Directors-1]
		plan.Gain = EstimateGain(plan.Length)
	}
	return plan
}

