package growthstd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Sex identifies the reference curve set for a child.
type Sex string

// Supported sexes, matching the WHO published table split.
const (
	Male   Sex = "M"
	Female Sex = "F"
)

// Measure distinguishes recumbent length tables (under 24 months) from
// standing height tables (24 months and over).
type Measure string

const (
	MeasureLength Measure = "length"
	MeasureHeight Measure = "height"
)

// LMS holds the Box-Cox power (L), median (M), and coefficient of
// variation (S) for one point on a growth reference curve.
type LMS struct {
	L float64
	M float64
	S float64
}

// Row is one tabulated reference entry at a given length/height.
type Row struct {
	CM float64 `json:"cm"`
	L  float64 `json:"l"`
	M  float64 `json:"m"`
	S  float64 `json:"s"`
}

// Table is the published reference curve for one (sex, measure) pair.
// Rows must be sorted ascending by CM.
type Table struct {
	Sex     Sex     `json:"sex"`
	Measure Measure `json:"measure"`
	Rows    []Row   `json:"rows"`
}

// Dataset is the serialized form of the full reference standard.
type Dataset struct {
	Standard string  `json:"standard"`
	Tables   []Table `json:"tables"`
}

// ParseDataset decodes and validates a reference dataset from r.
func ParseDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	required := map[tableKey]bool{
		{Male, MeasureLength}:   false,
		{Female, MeasureLength}: false,
		{Male, MeasureHeight}:   false,
		{Female, MeasureHeight}: false,
	}

	for _, t := range ds.Tables {
		key := tableKey{t.Sex, t.Measure}
		if _, ok := required[key]; !ok {
			return fmt.Errorf("%w: unknown table %s/%s", ErrCorruptTable, t.Sex, t.Measure)
		}
		required[key] = true

		if len(t.Rows) < 2 {
			return fmt.Errorf("%w: table %s/%s has %d rows", ErrCorruptTable, t.Sex, t.Measure, len(t.Rows))
		}
		if !sort.SliceIsSorted(t.Rows, func(i, j int) bool {
			return t.Rows[i].CM < t.Rows[j].CM
		}) {
			return fmt.Errorf("%w: table %s/%s rows not sorted", ErrCorruptTable, t.Sex, t.Measure)
		}
		for _, row := range t.Rows {
			if row.M <= 0 || row.S <= 0 {
				return fmt.Errorf("%w: table %s/%s row at %.1fcm has non-positive parameters",
					ErrCorruptTable, t.Sex, t.Measure, row.CM)
			}
		}
	}

	for key, present := range required {
		if !present {
			return fmt.Errorf("%w: table %s/%s missing", ErrCorruptTable, key.sex, key.measure)
		}
	}

	return nil
}

// params interpolates L, M, and S at cm, linearly between the adjacent
// tabulated rows. Exact matches return the row values unmodified.
func (t *Table) params(cm float64) (LMS, error) {
	rows := t.Rows
	if cm < rows[0].CM || cm > rows[len(rows)-1].CM {
		return LMS{}, fmt.Errorf("%w: %.1fcm outside %.1f-%.1fcm",
			ErrHeightOutOfRange, cm, rows[0].CM, rows[len(rows)-1].CM)
	}

	// Index of the first row with CM >= cm.
	idx := sort.Search(len(rows), func(i int) bool {
		return rows[i].CM >= cm
	})

	upper := rows[idx]
	if upper.CM == cm || idx == 0 {
		return LMS{L: upper.L, M: upper.M, S: upper.S}, nil
	}

	lower := rows[idx-1]
	frac := (cm - lower.CM) / (upper.CM - lower.CM)

	return LMS{
		L: lower.L + (upper.L-lower.L)*frac,
		M: lower.M + (upper.M-lower.M)*frac,
		S: lower.S + (upper.S-lower.S)*frac,
	}, nil
}

type tableKey struct {
	sex     Sex
	measure Measure
}
