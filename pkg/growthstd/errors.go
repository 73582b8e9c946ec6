package growthstd

import "errors"

// Resolution errors. Callers must treat any of these as a failed resolution;
// the resolver never substitutes a default value for out-of-range input.
var (
	ErrAgeOutOfRange    = errors.New("age outside supported range (0-60 months)")
	ErrHeightOutOfRange = errors.New("height/length outside supported reference range")
	ErrWeightOutOfRange = errors.New("weight must be positive")
	ErrCorruptTable     = errors.New("growth reference table is missing or corrupt")
)
