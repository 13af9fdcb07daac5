package yagi

import (
	"errors"
	"io/ioutil"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"
	"github.com/wiless/yagi/antenna"
	"github.com/wiless/yagi/units"
)

// Designer runs the design pipeline. It holds no state between calls.
type Designer struct {
	Log log.FieldLogger
}

func NewDesigner() *Designer {
	result := new(Designer)
	result.SetDefault()
	return result
}

// SetDefault installs a logger that discards everything.
func (d *Designer) SetDefault() {
	quiet := log.New()
	quiet.Out = ioutil.Discard
	d.Log = quiet
}

var defaultDesigner = NewDesigner()

// Design runs the request through a silent Designer.
func Design(req Request) (Result, error) {
	return defaultDesigner.Design(req)
}

// plan is the wavelength-domain design before conversion to the caller's unit.
type plan struct {
	estimatedGain float64
	estimatedBoom float64
	boomPlan      antenna.BoomPlan
	reflector     float64
	driven        float64
	directors     vlib.VectorF
}

// Design validates req and computes the antenna. No partial result is
// returned with an error.
func (d *Designer) Design(req Request) (Result, error) {
	logger := d.Log
	if logger == nil {
		logger = defaultDesigner.Log
	}

	if !req.Unit.Valid() {
		return Result{}, NewError(InvalidUnit, units.ErrInvalidUnit.Error(), units.ErrInvalidUnit)
	}
	if !(req.FrequencyMHz > 0) || math.IsInf(req.FrequencyMHz, 0) {
		return Result{}, NewError(MalformedInput, "Frequency must be a positive number", nil)
	}
	wavelength := units.Wavelength(req.FrequencyMHz)
	factor, err := units.Factor(req.Unit, wavelength)
	if err != nil {
		return Result{}, NewError(InvalidUnit, err.Error(), err)
	}
	back, err := units.InverseFactor(req.Unit, wavelength)
	if err != nil {
		return Result{}, NewError(InvalidUnit, err.Error(), err)
	}
	logger = logger.WithFields(log.Fields{
		"freq_mhz":      req.FrequencyMHz,
		"wavelength_mm": wavelength,
		"unit":          req.Unit,
	})

	var p plan
	switch req.Specify {
	case ByGain:
		p.estimatedGain = req.Target
		p.estimatedBoom, err = antenna.BoomForGain(req.Target)
	case ByBoomLength:
		p.estimatedBoom = req.Target * factor
		p.estimatedGain, err = antenna.GainForBoom(p.estimatedBoom)
	default:
		return Result{}, NewError(MalformedInput, "Specify either a gain or a boom length", nil)
	}
	if err != nil {
		return Result{}, wrapAntennaError(err)
	}

	dd := req.DrivenDiameter * factor
	ed := req.ParasiticDiameter * factor
	if !antenna.ValidDiameter(dd) {
		return Result{}, NewError(DiameterOutOfRange, antenna.ErrDrivenDiameter.Error(), antenna.ErrDrivenDiameter)
	}
	if !antenna.ValidDiameter(ed) {
		return Result{}, NewError(DiameterOutOfRange, antenna.ErrParasiticDiameter.Error(), antenna.ErrParasiticDiameter)
	}

	bc, err := d.boomCorrection(req, factor)
	if err != nil {
		return Result{}, err
	}

	p.boomPlan = antenna.Pack(p.estimatedBoom)
	p.directors = antenna.DirectorLengths(p.boomPlan.Directors, ed, bc)
	p.reflector = antenna.ReflectorLength(ed, bc)
	p.driven = antenna.DrivenLength(dd, bc)

	logger.WithFields(log.Fields{
		"boom_wl":         p.estimatedBoom,
		"boom_correction": bc,
		"directors":       p.boomPlan.Directors,
		"packed_boom_wl":  p.boomPlan.Length,
		"gain":            p.boomPlan.Gain,
	}).Debug("yagi designed")

	return assemble(req, back, p), nil
}

func (d *Designer) boomCorrection(req Request, factor float64) (float64, error) {
	if !req.Mounting.Valid() {
		return 0, NewError(MalformedInput, antenna.ErrMounting.Error(), antenna.ErrMounting)
	}
	if !req.Mounting.NeedsBoom() {
		return 0, nil
	}
	if req.BoomDiameter == nil {
		return 0, NewError(MalformedInput, "Boom diameter is required for on-boom element mounting", nil)
	}
	bc, err := antenna.BoomCorrection(*req.BoomDiameter*factor, req.Mounting)
	if err != nil {
		return 0, wrapAntennaError(err)
	}
	return bc, nil
}

func wrapAntennaError(err error) error {
	switch {
	case errors.Is(err, antenna.ErrGainRange):
		return NewError(GainOutOfRange, err.Error(), err)
	case errors.Is(err, antenna.ErrBoomRange):
		return NewError(BoomLengthOutOfRange, err.Error(), err)
	case errors.Is(err, antenna.ErrBoomDiameter):
		return NewError(BoomDiameterTooLarge, err.Error(), err)
	case errors.Is(err, antenna.ErrDrivenDiameter), errors.Is(err, antenna.ErrParasiticDiameter):
		return NewError(DiameterOutOfRange, err.Error(), err)
	default:
		return NewError(MalformedInput, err.Error(), err)
	}
}
