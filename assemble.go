package yagi

import (
	"strconv"

	"github.com/wiless/yagi/antenna"
)

// round rounds the exact binary value of x to prec decimals, ties to even.
// Scaling by 10^prec first can turn 32.81499999999995 into a tie.
func round(x float64, prec int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', prec, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// assemble converts the wavelength-domain plan to the request's unit.
// back takes wavelengths to the request unit.
func assemble(req Request, back float64, p plan) Result {
	out := func(wl float64, prec int) float64 {
		return round(wl*back, prec)
	}

	bp := p.boomPlan
	result := Result{
		FrequencyMHz:     req.FrequencyMHz,
		Gain:             round(bp.Gain, 2),
		BoomLength:       out(bp.Length, 2),
		Unit:             req.Unit.Label(),
		NumberOfElements: bp.Directors + 2,
		Elements:         make([]ElementSpec, 0, bp.Directors+2),
		Spacings:         make([]float64, 0, bp.Directors),
		EstimatedGain:    round(p.estimatedGain, 2),
		EstimatedBoom:    out(p.estimatedBoom, 2),
	}

	result.Elements = append(result.Elements,
		NewElement(Reflector, 0, 0, out(p.reflector, 4)),
		NewElement(Driven, 0, out(antenna.ReflectorSpacing, 4), out(p.driven, 4)),
	)
	for i := 0; i < bp.Directors; i++ {
		result.Elements = append(result.Elements,
			NewElement(Director, i+1, out(bp.Positions[i], 4), out(p.directors[i], 4)))
		result.Spacings = append(result.Spacings, out(bp.Spacings[i], 4))
	}
	return result
}
