// Package growthstd resolves WHO weight-for-length/height growth-standard
// reference curves and computes weight-for-height z-scores (WHZ) via the
// LMS method. The reference tables are static data with process-wide
// lifetime: a Resolver is built once at startup and is immutable and safe
// for concurrent use thereafter.
package growthstd

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Supported age span of the standard, in months.
const (
	MinAgeMonths = 0.0
	MaxAgeMonths = 60.0

	// Children 24 months and older are measured standing; the height
	// tables apply from this age.
	heightTableFromMonths = 24.0
)

// Resolver maps (age, sex, height/length) to reference curve parameters.
type Resolver struct {
	standard string
	tables   map[tableKey]*Table
}

// Load builds a Resolver from a serialized reference dataset.
func Load(r io.Reader) (*Resolver, error) {
	ds, err := ParseDataset(r)
	if err != nil {
		return nil, err
	}

	tables := make(map[tableKey]*Table, len(ds.Tables))
	for i := range ds.Tables {
		t := &ds.Tables[i]
		tables[tableKey{t.Sex, t.Measure}] = t
	}

	return &Resolver{
		standard: ds.Standard,
		tables:   tables,
	}, nil
}

// Standard returns the human-readable name of the loaded reference standard.
func (r *Resolver) Standard() string {
	return r.standard
}

// Params resolves the interpolated LMS parameters for the given age, sex,
// and height/length. Age selects between the recumbent-length tables
// (under 24 months) and the standing-height tables (24 months and over).
func (r *Resolver) Params(ageMonths float64, sex Sex, heightCM float64) (LMS, error) {
	if ageMonths < MinAgeMonths || ageMonths > MaxAgeMonths {
		return LMS{}, fmt.Errorf("%w: %.1f months", ErrAgeOutOfRange, ageMonths)
	}

	measure := MeasureLength
	if ageMonths >= heightTableFromMonths {
		measure = MeasureHeight
	}

	t, ok := r.tables[tableKey{sex, measure}]
	if !ok {
		return LMS{}, fmt.Errorf("%w: no %s table for sex %s", ErrCorruptTable, measure, sex)
	}

	return t.params(heightCM)
}

// WHZ computes the weight-for-height/length z-score for the supplied weight
// using the LMS (Box-Cox power) transform:
//
//	z = ((weight/M)^L - 1) / (L*S)
//
// It fails distinctly for out-of-range age, height, or weight; it never
// returns a default value on failure.
func (r *Resolver) WHZ(weightKG, ageMonths float64, sex Sex, heightCM float64) (float64, error) {
	if weightKG <= 0 {
		return 0, fmt.Errorf("%w: %.2fkg", ErrWeightOutOfRange, weightKG)
	}

	p, err := r.Params(ageMonths, sex, heightCM)
	if err != nil {
		return 0, err
	}

	if p.L == 0 {
		// L=0 degenerates the Box-Cox transform to a logarithm.
		return math.Log(weightKG/p.M) / p.S, nil
	}

	return (math.Pow(weightKG/p.M, p.L) - 1) / (p.L * p.S), nil
}

// NormalizeSex maps a free-form sex string to the two-valued reference split.
// Matching is case-insensitive on the first letter: anything not starting
// with "f" is treated as male. Callers relying on this default-to-male
// behavior should treat unrecognized values as unvalidated input.
func NormalizeSex(s string) Sex {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(trimmed, "f") {
		return Female
	}
	return Male
}
