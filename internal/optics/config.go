package optics

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/lukaszgryglicki/polarize/internal/mueller"
	"github.com/lukaszgryglicki/polarize/internal/num"
)

// Vec3 is a direction as written in config files: [x, y, z].
type Vec3 [3]float64

func (v Vec3) R3() r3.Vec   { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }
func (v Vec3) IsZero() bool { return v == Vec3{} }

type SourceCfg struct {
	Stokes    [4]float64 `json:"stokes" yaml:"stokes"`
	Direction Vec3       `json:"direction" yaml:"direction"`
	Basis     Vec3       `json:"basis,omitempty" yaml:"basis,omitempty"` // defaults to the implicit Stokes basis
}

type SensorCfg struct {
	Basis Vec3 `json:"basis" yaml:"basis"`
}

// ElementCfg describes one element of the train. Angles are in degrees
// (friendlier than radians) and measured counter-clockwise from the beam's
// current basis, as seen by the sensor.
type ElementCfg struct {
	Kind     string   `json:"kind" yaml:"kind"`
	AngleDeg float64  `json:"angleDeg,omitempty" yaml:"angleDeg,omitempty"`
	PhaseDeg float64  `json:"phaseDeg,omitempty" yaml:"phaseDeg,omitempty"`
	Value    *float64 `json:"value,omitempty" yaml:"value,omitempty"` // defaults to 1
	X        float64  `json:"x,omitempty" yaml:"x,omitempty"`
	Y        float64  `json:"y,omitempty" yaml:"y,omitempty"`
	Right    bool     `json:"right,omitempty" yaml:"right,omitempty"`
	Normal   Vec3     `json:"normal,omitempty" yaml:"normal,omitempty"`
	Eta      float64  `json:"eta,omitempty" yaml:"eta,omitempty"`
	K        float64  `json:"k,omitempty" yaml:"k,omitempty"` // extinction coefficient, imaginary part of eta
}

type Config struct {
	Source   SourceCfg    `json:"source" yaml:"source"`
	Elements []ElementCfg `json:"elements" yaml:"elements"`
	Sensor   *SensorCfg   `json:"sensor,omitempty" yaml:"sensor,omitempty"`
}

// Element kinds.
const (
	KindPolarizer    = "polarizer"
	KindRetarder     = "retarder"
	KindDiattenuator = "diattenuator"
	KindRotator      = "rotator"
	KindDepolarizer  = "depolarizer"
	KindAbsorber     = "absorber"
	KindCircular     = "circular"
	KindReflect      = "reflect"
	KindTransmit     = "transmit"
)

// Kinds lists every element kind a config may use.
var Kinds = []string{
	KindPolarizer, KindRetarder, KindDiattenuator, KindRotator, KindDepolarizer,
	KindAbsorber, KindCircular, KindReflect, KindTransmit,
}

func radians(d float64) num.Scalar { return num.Scalar(d * math.Pi / 180) }

func (e ElementCfg) value() (num.Scalar, error) {
	if e.Value == nil {
		return 1, nil
	}
	if *e.Value < 0 || *e.Value > 1 {
		return 0, fmt.Errorf("%s: %w, got %g", e.Kind, ErrInvalidValue, *e.Value)
	}
	return num.Scalar(*e.Value), nil
}

// Build validates and constructs the runtime element.
func (e ElementCfg) Build() (Element, error) {
	kind := strings.ToLower(strings.TrimSpace(e.Kind))
	if kind == KindReflect || kind == KindTransmit {
		return e.buildSurface(kind)
	}
	v, err := e.value()
	if err != nil {
		return nil, err
	}
	theta := radians(e.AngleDeg)
	var M mueller.Matrix[num.Scalar]
	switch kind {
	case KindPolarizer:
		M = mueller.LinearPolarizerAt(theta, v)
	case KindRetarder:
		M = mueller.LinearRetarderAt(theta, radians(e.PhaseDeg))
	case KindDiattenuator:
		if e.X < 0 || e.X > 1 || e.Y < 0 || e.Y > 1 {
			return nil, fmt.Errorf("diattenuator: %w, got x=%g y=%g", ErrInvalidValue, e.X, e.Y)
		}
		M = mueller.RotatedElement(theta, mueller.Diattenuator(num.Scalar(e.X), num.Scalar(e.Y)))
	case KindRotator:
		M = mueller.Rotator(theta)
	case KindDepolarizer:
		M = mueller.Depolarizer(v)
	case KindAbsorber:
		M = mueller.Absorber(v)
	case KindCircular:
		M = mueller.CircularPolarizer(e.Right, v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
	return filter{kind: kind, M: M}, nil
}

func (e ElementCfg) buildSurface(kind string) (Element, error) {
	if e.Normal.IsZero() {
		return nil, fmt.Errorf("%s normal: %w", kind, ErrZeroVector)
	}
	if e.Eta <= 0 {
		return nil, fmt.Errorf("%s: %w, got %g", kind, ErrInvalidIndex, e.Eta)
	}
	transmit := kind == KindTransmit
	if transmit && e.K != 0 {
		return nil, fmt.Errorf("%s: %w (k=%g)", kind, ErrOpaqueTransmission, e.K)
	}
	return surface{normal: r3.Unit(e.Normal.R3()), eta: e.Eta, k: e.K, transmit: transmit}, nil
}

// Build validates the source and constructs every element.
func (c Config) Build() (Beam, []Element, error) {
	src, err := c.Source.Build()
	if err != nil {
		return Beam{}, nil, err
	}
	if len(c.Elements) == 0 {
		return Beam{}, nil, ErrNoElements
	}
	elems := make([]Element, 0, len(c.Elements))
	for i, ec := range c.Elements {
		el, err := ec.Build()
		if err != nil {
			return Beam{}, nil, fmt.Errorf("element #%d: %w", i, err)
		}
		elems = append(elems, el)
	}
	return src, elems, nil
}

// Build validates the source and returns the initial beam.
func (s SourceCfg) Build() (Beam, error) {
	if s.Direction.IsZero() {
		return Beam{}, fmt.Errorf("source direction: %w", ErrZeroVector)
	}
	st := s.Stokes
	if st == [4]float64{} {
		st = [4]float64{1, 0, 0, 0}
	}
	if st[0] < 0 || math.Sqrt(st[1]*st[1]+st[2]*st[2]+st[3]*st[3]) > st[0]*(1+1e-9) {
		return Beam{}, fmt.Errorf("source: %w: %v", ErrUnphysicalStokes, st)
	}
	dir := r3.Unit(s.Direction.R3())
	var basis r3.Vec
	if s.Basis.IsZero() {
		basis = fromVector(mueller.StokesBasis(vector(dir)))
		DebugLogOnce("Source basis not given, using implicit basis %+v", basis)
	} else {
		basis = r3.Unit(s.Basis.R3())
		if math.Abs(r3.Dot(basis, dir)) > orthoTol {
			return Beam{}, fmt.Errorf("source: %w", ErrNotOrthogonal)
		}
	}
	return Beam{
		Stokes:    mueller.Stokes(num.Scalar(st[0]), num.Scalar(st[1]), num.Scalar(st[2]), num.Scalar(st[3])),
		Path:      mueller.Identity[num.Scalar](),
		Direction: dir,
		Basis:     basis,
	}, nil
}

// loadConfig reads a JSON or YAML config, chosen by file extension.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Elements) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoElements)
	}
	return &cfg, nil
}

// LocalMatrix returns the element's Mueller matrix in its own frame. Surfaces
// are evaluated at incidence cosine cosThetaI in the s-axis frame; other
// elements ignore it.
func (e ElementCfg) LocalMatrix(cosThetaI float64) (Matrix, error) {
	el, err := e.Build()
	if err != nil {
		return Matrix{}, err
	}
	switch el := el.(type) {
	case filter:
		return el.M, nil
	case surface:
		return el.local(Scalar(cosThetaI)), nil
	}
	return Matrix{}, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
}
