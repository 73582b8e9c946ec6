// Package stats implements the aggregation domain for NutriScan. It derives
// per-center and global screening counts from persisted assessment records.
// Summaries are recomputed from the store on every query and never cached;
// they are pure functions of whatever records the store currently holds.
package stats

import (
	"iter"

	"github.com/poshan-stack/nutriscan/internal/assessments"
)

// Summary holds the per-status counts for one reporting center alongside the
// global record count across all centers. A center with no records yields an
// empty LocalStats map and zero totals.
type Summary struct {
	CenterCode         string                     `json:"center_code"`
	LocalStats         map[assessments.Status]int `json:"local_stats"`
	TotalCheckedHere   int                        `json:"total_checked_here"`
	TotalCheckedGlobal int                        `json:"total_checked_global"`
}

// Aggregate computes a Summary for centerCode from a read-only sequence of
// assessment records. Records from other centers contribute only to the
// global total. The sequence is consumed exactly once.
func Aggregate(centerCode string, records iter.Seq[assessments.Assessment]) Summary {
	s := Summary{
		CenterCode: centerCode,
		LocalStats: make(map[assessments.Status]int),
	}

	for a := range records {
		s.TotalCheckedGlobal++
		if a.CenterCode == centerCode {
			s.LocalStats[a.Status]++
			s.TotalCheckedHere++
		}
	}

	return s
}
