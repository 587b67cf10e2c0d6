package cosmo

import (
	"math"

	"github.com/ntessore/cosmology/constants"
)

// Model is an immutable FLRW cosmological model: the Hubble constant,
// the density parameters of matter, dark energy, curvature and
// radiation, and the dark-energy equation of state. Derived scales are
// computed once in New and never recomputed; a Model is safe for
// concurrent read-only use.
type Model struct {
	h0      float64 // Hubble constant [km s⁻¹ Mpc⁻¹]
	om0     float64 // matter density parameter
	ode0    float64 // dark-energy density parameter
	ok0     float64 // curvature density parameter
	ogamma0 float64 // photon density parameter
	onu0    float64 // neutrino density parameter
	w0, wa  float64 // dark-energy equation-of-state parameters
	kind    DarkEnergyKind

	hubbleDistance   float64 // c/H0 [Mpc]
	hubbleTime       float64 // 1/H0 [Gyr]
	criticalDensity0 float64 // 3H0²/(8πG) [kg m⁻³]
}

// New constructs an immutable Model from the Hubble constant
// (km s⁻¹ Mpc⁻¹), the matter density parameter Om0 and the dark-energy
// density parameter Ode0, plus optional parameters.
//
// Contracts:
//   - h0 must be positive and finite (ErrHubbleValue).
//   - every density and equation-of-state parameter must be finite
//     (ErrNonFinite).
//   - negative densities are accepted here; an unphysical combination
//     surfaces as ErrUnphysical when the kernel is evaluated.
//
// Unless WithCurvature pins it, Ok0 is derived from the closure
// relation Ok0 = 1 − Om0 − Ode0 − Orad0, so that E(0) = 1 holds by
// construction.
//
// Complexity: O(1); derived scales are computed here exactly once.
func New(h0, om0, ode0 float64, opts ...ModelOption) (*Model, error) {
	cfg := defaultModelConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if h0 <= 0 || math.IsNaN(h0) || math.IsInf(h0, 0) {
		return nil, ErrHubbleValue
	}
	for _, v := range [...]float64{om0, ode0, cfg.ok0, cfg.ogamma0, cfg.onu0, cfg.w0, cfg.wa} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}

	orad0 := cfg.ogamma0 + cfg.onu0
	ok0 := cfg.ok0
	if !cfg.ok0Set {
		ok0 = 1 - om0 - ode0 - orad0
	}

	// H0 in inverse seconds; all derived scales follow from it.
	h0SI := h0 * 1000 / constants.Mpc

	return &Model{
		h0:      h0,
		om0:     om0,
		ode0:    ode0,
		ok0:     ok0,
		ogamma0: cfg.ogamma0,
		onu0:    cfg.onu0,
		w0:      cfg.w0,
		wa:      cfg.wa,
		kind:    cfg.kind,

		hubbleDistance:   constants.CKmPerS / h0,
		hubbleTime:       1 / h0SI / constants.Gyr,
		criticalDensity0: 3 * h0SI * h0SI / (8 * math.Pi * constants.G),
	}, nil
}

// H0 returns the Hubble constant in km s⁻¹ Mpc⁻¹.
func (m *Model) H0() float64 { return m.h0 }

// Om0 returns the matter density parameter at z = 0.
func (m *Model) Om0() float64 { return m.om0 }

// Ode0 returns the dark-energy density parameter at z = 0.
func (m *Model) Ode0() float64 { return m.ode0 }

// Ok0 returns the curvature density parameter at z = 0
// (derived from closure unless pinned with WithCurvature).
func (m *Model) Ok0() float64 { return m.ok0 }

// Ogamma0 returns the photon density parameter at z = 0.
func (m *Model) Ogamma0() float64 { return m.ogamma0 }

// Onu0 returns the neutrino density parameter at z = 0.
func (m *Model) Onu0() float64 { return m.onu0 }

// Orad0 returns the total radiation density parameter, Ogamma0 + Onu0.
func (m *Model) Orad0() float64 { return m.ogamma0 + m.onu0 }

// W0 returns the dark-energy equation-of-state parameter at z = 0.
func (m *Model) W0() float64 { return m.w0 }

// Wa returns the CPL evolution parameter (zero unless WithEvolvingW).
func (m *Model) Wa() float64 { return m.wa }

// DarkEnergy returns the dark-energy variant this model dispatches on.
func (m *Model) DarkEnergy() DarkEnergyKind { return m.kind }

// IsFlat reports whether the model is spatially flat, |Ok0| < FlatnessEps.
func (m *Model) IsFlat() bool { return math.Abs(m.ok0) < FlatnessEps }

// HubbleDistance returns c/H0 in Mpc, the scale of every distance
// measure.
func (m *Model) HubbleDistance() float64 { return m.hubbleDistance }

// HubbleTime returns 1/H0 in Gyr, the scale of lookback time and age.
func (m *Model) HubbleTime() float64 { return m.hubbleTime }

// CriticalDensity0 returns the critical density at z = 0,
// ρ_c = 3H0²/(8πG), in kg m⁻³.
func (m *Model) CriticalDensity0() float64 { return m.criticalDensity0 }
