package atmo

import (
	"fmt"

	"github.com/pkg/errors"
)

// Gases are the modeled atmospheric gases, in the order the model
// emits them (as % of total).
var Gases = []string{"CO2", "N2", "O2", "H2O", "CH4", "H2", "He", "SO2", "O3", "NH3"}

// Feature describes one of the scalar exoplanet parameters the model
// takes as input.
type Feature struct {
	Key   string
	Label string
	Unit  string
}

// Features are the essential input parameters, in the order the model
// expects them. The order is fixed; reordering it invalidates any
// previously trained artifact.
var Features = []Feature{
	{Key: "pl_dens", Label: "Planet Density", Unit: "g/cm³"},
	{Key: "pl_orbper", Label: "Orbital Period", Unit: "days"},
	{Key: "pl_eqtstr", Label: "Equilibrium Temperature", Unit: "K"},
	{Key: "st_rad", Label: "Stellar Radius", Unit: "Solar Radii"},
	{Key: "st_lum", Label: "Stellar Luminosity", Unit: "Solar Units"},
	{Key: "pl_bmassj", Label: "Planet Mass", Unit: "Jupiter Masses"},
	{Key: "pl_ratror", Label: "Planet-to-Star Radius Ratio", Unit: ""},
	{Key: "st_met", Label: "Stellar Metallicity", Unit: "[Fe/H]"},
}

// FeatureKeys returns the ordered feature keys.
func FeatureKeys() []string {
	keys := make([]string, len(Features))
	for i, f := range Features {
		keys[i] = f.Key
	}
	return keys
}

// Params holds the validated input parameters for a single prediction.
type Params struct {
	Density     float64 `yaml:"pl_dens" json:"pl_dens"`
	OrbitPeriod float64 `yaml:"pl_orbper" json:"pl_orbper"`
	EqTemp      float64 `yaml:"pl_eqtstr" json:"pl_eqtstr"`
	StellarRad  float64 `yaml:"st_rad" json:"st_rad"`
	StellarLum  float64 `yaml:"st_lum" json:"st_lum"`
	Mass        float64 `yaml:"pl_bmassj" json:"pl_bmassj"`
	RadiusRatio float64 `yaml:"pl_ratror" json:"pl_ratror"`
	Metallicity float64 `yaml:"st_met" json:"st_met"`
}

// ParamsFromMap builds Params from a key/value map. All eight feature
// keys must be present; unknown keys are rejected. Map iteration order
// does not matter, the resulting vector order is always the Features
// order.
func ParamsFromMap(m map[string]float64) (*Params, error) {
	if m == nil {
		return nil, errors.New("parameter map required")
	}
	for k := range m {
		known := false
		for _, f := range Features {
			if f.Key == k {
				known = true
				break
			}
		}
		if !known {
			return nil, errors.Errorf("unknown parameter: %s", k)
		}
	}
	p := &Params{}
	for _, f := range Features {
		v, ok := m[f.Key]
		if !ok {
			return nil, errors.Errorf("missing parameter: %s", f.Key)
		}
		p.set(f.Key, v)
	}
	return p, nil
}

func (p *Params) set(key string, v float64) {
	switch key {
	case "pl_dens":
		p.Density = v
	case "pl_orbper":
		p.OrbitPeriod = v
	case "pl_eqtstr":
		p.EqTemp = v
	case "st_rad":
		p.StellarRad = v
	case "st_lum":
		p.StellarLum = v
	case "pl_bmassj":
		p.Mass = v
	case "pl_ratror":
		p.RadiusRatio = v
	case "st_met":
		p.Metallicity = v
	}
}

// Get returns the value for a feature key.
func (p *Params) Get(key string) float64 {
	switch key {
	case "pl_dens":
		return p.Density
	case "pl_orbper":
		return p.OrbitPeriod
	case "pl_eqtstr":
		return p.EqTemp
	case "st_rad":
		return p.StellarRad
	case "st_lum":
		return p.StellarLum
	case "pl_bmassj":
		return p.Mass
	case "pl_ratror":
		return p.RadiusRatio
	case "st_met":
		return p.Metallicity
	}
	return 0
}

// Vector returns the parameter values in the fixed Features order,
// ready to feed to the model.
func (p *Params) Vector() []float64 {
	v := make([]float64, len(Features))
	for i, f := range Features {
		v[i] = p.Get(f.Key)
	}
	return v
}

// Composition is the predicted gas percentages, aligned with Gases.
type Composition []float64

// Normalize rescales a raw model output vector so its components sum
// to 100. A zero-sum input yields non-finite components (NaN/Inf);
// callers that care should check the raw sum first.
func Normalize(raw []float64) Composition {
	var sum float64
	for _, v := range raw {
		sum += v
	}
	out := make(Composition, len(raw))
	for i, v := range raw {
		out[i] = 100 * v / sum
	}
	return out
}

// Descriptor buckets for Classify.
const (
	DescriptorDominant = "Dominant gas"
	DescriptorMajor    = "Major component"
	DescriptorMinor    = "Minor component"
	DescriptorTrace    = "Trace presence"
)

// Classify maps a normalized gas percentage to its qualitative
// descriptor. Thresholds are strict: exactly 60 is a major component,
// exactly 5 a trace presence.
func Classify(percent float64) string {
	switch {
	case percent > 60:
		return DescriptorDominant
	case percent > 20:
		return DescriptorMajor
	case percent > 5:
		return DescriptorMinor
	default:
		return DescriptorTrace
	}
}

// String renders the composition as a compact single line, mostly for
// debug logs.
func (c Composition) String() string {
	s := ""
	for i, v := range c {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%.2f", Gases[i], v)
	}
	return s
}
