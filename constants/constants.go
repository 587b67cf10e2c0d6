package constants

import "math"

// SI values. The defining constants are exact by the 2019 SI
// redefinition; G is the CODATA 2018 recommended value.
const (
	// H is the Planck constant [J s].
	H = 6.62607015e-34

	// KB is the Boltzmann constant [J K⁻¹].
	KB = 1.380649e-23

	// C is the speed of light in vacuum [m s⁻¹].
	C = 299792458.0

	// G is the Newtonian constant of gravitation [m³ kg⁻¹ s⁻²].
	G = 6.67430e-11

	// SigmaSB is the Stefan–Boltzmann constant [W K⁻⁴ m⁻²],
	// σ = 2π⁵k_B⁴ / (15h³c²).
	SigmaSB = 2 * math.Pi * math.Pi * math.Pi * math.Pi * math.Pi * KB * KB * KB * KB /
		(15 * H * H * H * C * C)

	// E is the elementary charge [C].
	E = 1.602176634e-19
)

// Astronomical units.
const (
	// AU is the astronomical unit [m] (IAU 2012 exact definition).
	AU = 1.49597870700e11

	// Mpc is the megaparsec [m]: one parsec is 648000/π au.
	Mpc = 648000 / math.Pi * AU * 1e6

	// Gyr is the Julian gigayear [s]: 10⁹ years of 365.25 days.
	Gyr = 3600 * 24 * 365.25 * 1e9
)

// Convenience conversions used by the distance/time query surfaces.
const (
	// CKmPerS is the speed of light in [km s⁻¹].
	CKmPerS = C / 1000

	// MpcKm is the megaparsec in [km].
	MpcKm = Mpc / 1000

	// PcM is the parsec in [m].
	PcM = Mpc / 1e6
)
