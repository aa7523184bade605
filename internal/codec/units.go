// Package codec decodes and re-renders the fixed-width numeric fields
// of an SES output file: column slicing, numeric parsing, US/SI unit
// conversion, and width-constrained re-rendering ("shoehorning").
package codec

import (
	"fmt"
	"math"
)

// Rule describes one unit kind. Scale multiplies a US-customary value
// to give SI; temperature kinds use the affine transform instead.
type Rule struct {
	USLabel     string
	SILabel     string
	Scale       float64
	Temperature bool
}

// rules is the static conversion table, keyed by unit kind. The kinds
// "int" and "null" are not listed: they pass through unconverted.
var rules = map[string]Rule{
	"dist":     {USLabel: "FT", SILabel: "m", Scale: 0.3048},
	"area":     {USLabel: "SQ FT", SILabel: "m^2", Scale: 0.09290304},
	"velocity": {USLabel: "FPM", SILabel: "m/s", Scale: 0.00508},
	"flow":     {USLabel: "CFM", SILabel: "m^3/s", Scale: 0.000471947},
	"press":    {USLabel: "IN. W.G.", SILabel: "Pa", Scale: 248.84},
	"dens":     {USLabel: "LBS/FT3", SILabel: "kg/m^3", Scale: 16.018463},
	"watts":    {USLabel: "BTU/HR", SILabel: "W", Scale: 0.29307107},
	"mass":     {USLabel: "LBS", SILabel: "kg", Scale: 0.45359237},
	"temp":     {USLabel: "DEG F", SILabel: "DEG C", Temperature: true},
	"tdiff":    {USLabel: "DEG F", SILabel: "DEG C", Scale: 1.0 / 1.8},
}

// nearZero holds the thresholds below which a temperature field is
// forced to exactly zero instead of being put through the affine
// transform. SES writes all-zero sentinel temperatures in a few forms
// to mean "use ambient values"; converting those through the offset
// would turn the sentinel into a real reading. The comparison is a
// strict less-than on the magnitude, matching the upstream test.
var nearZero = map[string]float64{
	"tempmat":  0.0001,
	"tempamb":  0.001,
	"tempwall": 0.05,
}

// LookupRule returns the conversion rule for a unit kind. Kinds "int",
// "null" and "" have no rule.
func LookupRule(kind string) (Rule, bool) {
	r, ok := rules[kind]
	return r, ok
}

// Convert maps a decoded value through its unit kind's rule. toSI
// selects the direction. nearZeroKey, when non-empty, names an entry in
// the near-zero registry; it only applies to temperature kinds.
//
// The returned Rule carries the display labels for the direction-
// independent source/target swap done elsewhere on the line.
func Convert(v float64, kind string, toSI bool, nearZeroKey string) (float64, Rule, error) {
	switch kind {
	case "", "int", "null":
		return v, Rule{}, nil
	}
	r, ok := rules[kind]
	if !ok {
		return 0, Rule{}, fmt.Errorf("unknown unit kind %q", kind)
	}

	if r.Temperature {
		if nearZeroKey != "" {
			threshold, ok := nearZero[nearZeroKey]
			if !ok {
				return 0, Rule{}, fmt.Errorf("unknown near-zero registry key %q", nearZeroKey)
			}
			if math.Abs(v) < threshold {
				return 0, r, nil
			}
		}
		if toSI {
			return (v - 32.0) / 1.8, r, nil
		}
		return v*1.8 + 32.0, r, nil
	}

	if toSI {
		return v * r.Scale, r, nil
	}
	return v / r.Scale, r, nil
}
