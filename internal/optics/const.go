package optics

const (
	DefaultConfig    = "trains/config.yaml"
	DefaultPrecision = 6
	// orthoTol bounds |basis·direction| for a basis to count as orthogonal.
	orthoTol = 1e-6
	// collinearTol is the |n×d| below which a surface is hit head-on and the
	// plane of incidence is undefined.
	collinearTol = 1e-12
)
