package optics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lukaszgryglicki/polarize/internal/fresnel"
	"github.com/lukaszgryglicki/polarize/internal/mueller"
	"github.com/lukaszgryglicki/polarize/internal/num"
)

type (
	Scalar = num.Scalar
	Matrix = mueller.Matrix[num.Scalar]
)

// Beam is the polarization state travelling through the train together with
// the frame it is expressed in. Path maps the source Stokes vector, in the
// source frame, to Stokes in the current frame.
type Beam struct {
	Stokes    Matrix
	Path      Matrix
	Direction r3.Vec
	Basis     r3.Vec
}

// Element acts on a beam and hands it on.
type Element interface {
	Interact(b Beam) (Beam, error)
	Name() string
}

// apply left-multiplies M into the beam.
func (b Beam) apply(M Matrix) Beam {
	b.Stokes = M.Mul(b.Stokes)
	b.Path = M.Mul(b.Path)
	return b
}

func vector(v r3.Vec) num.Vector3[Scalar] {
	return num.V3(Scalar(v.X), Scalar(v.Y), Scalar(v.Z))
}

func fromVector(v num.Vector3[Scalar]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// filter is a thin element whose matrix is fixed in the beam's frame.
type filter struct {
	kind string
	M    Matrix
}

func (f filter) Name() string { return f.kind }

func (f filter) Interact(b Beam) (Beam, error) { return b.apply(f.M), nil }

// surface is a specular interface. Its Mueller matrices live in the frame
// whose basis is the s-axis, perpendicular to the plane of incidence, so the
// beam is realigned to that axis first. The s-axis is shared by the incident
// and outgoing beams and becomes the new basis.
type surface struct {
	normal   r3.Vec
	eta, k   float64
	transmit bool
}

func (s surface) Name() string {
	if s.transmit {
		return KindTransmit
	}
	return KindReflect
}

// local is the interaction matrix in the s-axis frame.
func (s surface) local(cosI Scalar) Matrix {
	if s.transmit {
		return mueller.SpecularTransmission(cosI, Scalar(s.eta))
	}
	return mueller.SpecularReflection(cosI, num.C(Scalar(s.eta), Scalar(s.k)))
}

func (s surface) Interact(b Beam) (Beam, error) {
	d := b.Direction
	cosI := -r3.Dot(d, s.normal)

	sAxis := r3.Cross(s.normal, d)
	if r3.Norm(sAxis) < collinearTol {
		// Head-on: every axis is perpendicular to the plane of incidence.
		sAxis = b.Basis
	} else {
		sAxis = r3.Unit(sAxis)
	}
	b = b.apply(mueller.RotateStokesBasis(vector(d), vector(b.Basis), vector(sAxis)))
	b.Basis = sAxis

	if !s.transmit {
		b = b.apply(s.local(Scalar(cosI)))
		b.Direction = r3.Unit(r3.Add(d, r3.Scale(2*cosI, s.normal)))
		return b, nil
	}

	_, _, cosT, _, etaTI := fresnel.Polarized(Scalar(cosI), Scalar(s.eta))
	if cosT == 0 {
		return b, ErrTotalInternal
	}
	b = b.apply(s.local(Scalar(cosI)))

	// Refract about the normal facing the incident side.
	n := s.normal
	if cosI < 0 {
		n = r3.Scale(-1, n)
	}
	r := float64(etaTI)
	b.Direction = r3.Unit(r3.Add(r3.Scale(r, d), r3.Scale(r*math.Abs(cosI)-math.Abs(float64(cosT)), n)))
	return b, nil
}

// Step records the beam after one element.
type Step struct {
	Element string
	Stokes  [4]float64
	DoP     float64
}

type Result struct {
	Beam
	Steps []Step
}

func stokesValues(S Matrix) [4]float64 {
	c := S.Column0()
	return [4]float64{float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])}
}

// StokesValues returns the final Stokes vector.
func (r *Result) StokesValues() [4]float64 { return stokesValues(r.Stokes) }

func (r *Result) DoP() float64  { return float64(mueller.DegreeOfPolarization(r.Stokes)) }
func (r *Result) DoLP() float64 { return float64(mueller.DegreeOfLinearPolarization(r.Stokes)) }

// AoLPDeg is the angle of linear polarization in degrees.
func (r *Result) AoLPDeg() float64 {
	return float64(mueller.AngleOfLinearPolarization(r.Stokes)) * 180 / math.Pi
}

// Evaluate pushes the beam through every element in order and, when sensor is
// non-nil, re-expresses the outcome in the sensor basis.
func Evaluate(b Beam, elems []Element, sensor *SensorCfg) (*Result, error) {
	res := &Result{}
	for i, el := range elems {
		var err error
		b, err = el.Interact(b)
		if err != nil {
			return nil, fmt.Errorf("element #%d (%s): %w", i, el.Name(), err)
		}
		DebugLog("After #%d %s: stokes=%v dir=%+v basis=%+v", i, el.Name(), stokesValues(b.Stokes), b.Direction, b.Basis)
		if Debug {
			res.Steps = append(res.Steps, Step{
				Element: el.Name(),
				Stokes:  stokesValues(b.Stokes),
				DoP:     float64(mueller.DegreeOfPolarization(b.Stokes)),
			})
		}
	}
	if sensor != nil && !sensor.Basis.IsZero() {
		target := r3.Unit(sensor.Basis.R3())
		if math.Abs(r3.Dot(target, b.Direction)) > orthoTol {
			return nil, fmt.Errorf("sensor: %w", ErrNotOrthogonal)
		}
		b = b.apply(mueller.RotateStokesBasis(vector(b.Direction), vector(b.Basis), vector(target)))
		b.Basis = target
	}
	res.Beam = b
	return res, nil
}

// Run loads the config at cfgPath and evaluates it.
func Run(cfgPath string) (*Result, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	src, elems, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	DebugLog("Loaded %d elements from %s", len(elems), cfgPath)
	return Evaluate(src, elems, cfg.Sensor)
}
