package consts

const (
	LIGHTSPEED    = 299792458.0 // Speed of light in vacuum (m/s)
	DEFWAVELENGTH = 1550e-9     // Telecom C-band reference wavelength (m)
)
