package optics

import "errors"

var (
	Debug = false // set to true to record per-element steps in the Result

	ErrNoElements         = errors.New("optical train has no elements")
	ErrUnknownKind        = errors.New("unknown element kind")
	ErrZeroVector         = errors.New("vector must be non-zero")
	ErrNotOrthogonal      = errors.New("basis is not orthogonal to the direction of travel")
	ErrUnphysicalStokes   = errors.New("stokes vector is not physical")
	ErrInvalidIndex       = errors.New("refractive index must be > 0")
	ErrOpaqueTransmission = errors.New("cannot transmit through an absorbing (complex index) interface")
	ErrTotalInternal      = errors.New("total internal reflection at transmitting surface")
	ErrInvalidValue       = errors.New("element value must be in [0, 1]")

	// Compile time checks to ensure that the Element interface is implemented by all required types
	_ Element = filter{}
	_ Element = surface{}
)
