package assessments

import (
	"fmt"
	"math"

	"github.com/poshan-stack/nutriscan/pkg/growthstd"
)

// EdemaZScore is the sentinel recorded for edematous malnutrition. It is an
// opaque severity marker, not a computed statistic, and must be excluded from
// any aggregation that assumes z-scores are measured values.
const EdemaZScore = -5.0

// Recommended actions, one fixed string per status.
const (
	actionSAM        = "Urgent Treatment Needed"
	actionMAM        = "Supplementary Feeding Required"
	actionNormal     = "Maintain Healthy Diet"
	actionOverweight = "Monitor Diet"
	actionError      = "Check Inputs"
	actionEdema      = "Urgent Medical Attention Required (Edematous Malnutrition)"
)

// Engine converts raw measurements into clinical classifications against an
// injected growth-standard resolver. It is pure and safe for concurrent use:
// the only state is the immutable reference table behind the resolver.
type Engine struct {
	resolver *growthstd.Resolver
}

// NewEngine creates an Engine bound to the given resolver.
func NewEngine(resolver *growthstd.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Assess classifies a single measurement. It always returns a well-formed
// Result and never panics or propagates an error: resolution failures
// collapse into the Error/GRAY outcome with a descriptive message.
//
// Edema takes absolute precedence — an edematous child is classified SAM
// before any validation or computation, regardless of the other fields.
func (e *Engine) Assess(m Measurement) Result {
	if m.Edema {
		return Result{
			Status:    StatusSAM,
			ZScore:    EdemaZScore,
			ColorCode: ColorRed,
			Action:    actionEdema,
		}
	}

	ageMonths := m.AgeYears * 12
	sex := growthstd.NormalizeSex(m.Sex)

	whz, err := e.resolver.WHZ(m.WeightKG, ageMonths, sex, m.HeightCM)
	if err != nil {
		return Result{
			Status:    StatusError,
			ZScore:    0,
			ColorCode: ColorGray,
			Action:    actionError,
			Message:   fmt.Sprintf("could not calculate score: %v", err),
		}
	}

	status, color, action := Classify(whz)
	return Result{
		Status:    status,
		ZScore:    roundZ(whz),
		ColorCode: color,
		Action:    action,
	}
}

// Classify maps a computed WHZ to its severity band. Bands are half-open on
// the lower bound: exactly -3 is MAM, exactly -2 is Normal, exactly 2 is
// Possible Overweight.
func Classify(whz float64) (Status, Color, string) {
	switch {
	case whz < -3:
		return StatusSAM, ColorRed, actionSAM
	case whz < -2:
		return StatusMAM, ColorYellow, actionMAM
	case whz < 2:
		return StatusNormal, ColorGreen, actionNormal
	default:
		return StatusOverweight, ColorOrange, actionOverweight
	}
}

func roundZ(z float64) float64 {
	return math.Round(z*100) / 100
}
