package assessments

import (
	"net/url"

	"github.com/poshan-stack/nutriscan/pkg/query"
	"github.com/poshan-stack/nutriscan/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "assessments", "a").
	Project("id", "ID").
	Project("center_code", "CenterCode").
	Project("child_name", "ChildName").
	Project("age_years", "AgeYears").
	Project("sex", "Sex").
	Project("height_cm", "HeightCM").
	Project("weight_kg", "WeightKG").
	Project("status", "Status").
	Project("z_score", "ZScore").
	Project("color_code", "ColorCode").
	Project("assessed_at", "AssessedAt")

var defaultSort = query.SortField{
	Field:      "AssessedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for assessment queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	CenterCode *string `json:"center_code,omitempty"`
	Status     *Status `json:"status,omitempty"`
	ColorCode  *Color  `json:"color_code,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("CenterCode", f.CenterCode).
		WhereEquals("Status", f.Status).
		WhereEquals("ColorCode", f.ColorCode)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("center_code"); c != "" {
		f.CenterCode = &c
	}

	if s := values.Get("status"); s != "" {
		status := Status(s)
		f.Status = &status
	}

	if c := values.Get("color_code"); c != "" {
		color := Color(c)
		f.ColorCode = &color
	}

	return f
}

func scanAssessment(s repository.Scanner) (Assessment, error) {
	var a Assessment

	err := s.Scan(
		&a.ID,
		&a.CenterCode,
		&a.ChildName,
		&a.AgeYears,
		&a.Sex,
		&a.HeightCM,
		&a.WeightKG,
		&a.Status,
		&a.ZScore,
		&a.ColorCode,
		&a.AssessedAt,
	)

	return a, err
}
