// Package assessments implements the malnutrition screening domain for
// NutriScan. It provides the deterministic assessment engine that turns raw
// anthropometric measurements into clinical classifications, plus types and
// data access for persisting assessment records per reporting center.
package assessments

import (
	"time"

	"github.com/google/uuid"
)

// Status is the clinical classification of an assessment. The wire values
// follow the field formats health workers already see on record cards.
type Status string

const (
	StatusSAM        Status = "Severe Acute Malnutrition (SAM)"
	StatusMAM        Status = "Moderate Acute Malnutrition (MAM)"
	StatusNormal     Status = "Normal"
	StatusOverweight Status = "Possible Overweight"
	StatusError      Status = "Error"
)

// Color is the triage color code paired one-to-one with a Status.
type Color string

const (
	ColorRed    Color = "RED"
	ColorYellow Color = "YELLOW"
	ColorGreen  Color = "GREEN"
	ColorOrange Color = "ORANGE"
	ColorGray   Color = "GRAY"
)

// Measurement carries the raw inputs of one screening. Sex is free-form and
// normalized by the engine; Edema presence overrides all other fields.
type Measurement struct {
	WeightKG float64 `json:"weight_kg"`
	HeightCM float64 `json:"height_cm"`
	AgeYears float64 `json:"age_years"`
	Sex      string  `json:"sex"`
	Edema    bool    `json:"edema"`
}

// Result is the classification produced by the engine. Exactly one Status is
// set per assessment; ZScore is a fixed sentinel for edema (-5.0) and error
// (0) outcomes and the rounded computed WHZ otherwise. Message is populated
// only for error outcomes and describes the resolution failure.
type Result struct {
	Status    Status  `json:"status"`
	ZScore    float64 `json:"z_score"`
	ColorCode Color   `json:"color_code"`
	Action    string  `json:"action"`
	Message   string  `json:"message,omitempty"`
}

// Assessment is a persisted screening record, scoped to a reporting center.
// It mirrors the assessments table schema.
type Assessment struct {
	ID         uuid.UUID `json:"id"`
	CenterCode string    `json:"center_code"`
	ChildName  string    `json:"child_name"`
	AgeYears   float64   `json:"age_years"`
	Sex        string    `json:"sex"`
	HeightCM   float64   `json:"height_cm"`
	WeightKG   float64   `json:"weight_kg"`
	Status     Status    `json:"status"`
	ZScore     float64   `json:"z_score"`
	ColorCode  Color     `json:"color_code"`
	AssessedAt time.Time `json:"assessed_at"`
}

// RecordCommand carries the data needed to assess a child and persist the
// classification under the caller's reporting center.
type RecordCommand struct {
	CenterCode string  `json:"center_code"`
	ChildName  string  `json:"child_name"`
	AgeYears   float64 `json:"age_years"`
	Sex        string  `json:"sex"`
	HeightCM   float64 `json:"height_cm"`
	WeightKG   float64 `json:"weight_kg"`
	Edema      bool    `json:"edema"`
}

// Measurement extracts the engine inputs from the command.
func (c RecordCommand) Measurement() Measurement {
	return Measurement{
		WeightKG: c.WeightKG,
		HeightCM: c.HeightCM,
		AgeYears: c.AgeYears,
		Sex:      c.Sex,
		Edema:    c.Edema,
	}
}

// BatchResult reports the outcome of a single child within a batch screening.
// On success, Assessment is populated and Error is empty.
type BatchResult struct {
	Assessment *Assessment `json:"assessment,omitempty"`
	ChildName  string      `json:"child_name"`
	Error      string      `json:"error,omitempty"`
}
