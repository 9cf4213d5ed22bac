package schedule

import "github.com/aliskhannn/plant-care/internal/model"

// Bounds of a watering interval suggested by the classifier.
const (
	MinSuggestedWatering     = 1
	MaxSuggestedWatering     = 15
	DefaultSuggestedWatering = 5
	ActiveGrowthFeeding      = 7
)

// Intervals is a pair of optional care intervals in days.
type Intervals struct {
	Watering *int
	Feeding  *int
}

// AdjustForState applies the classifier's health state to suggested intervals.
// Flowering plants are watered two days sooner, dormant ones five days later and
// plants in active growth are fed weekly. The watering interval stays within the
// range the classifier is trusted for.
func AdjustForState(in Intervals, state model.HealthState) Intervals {
	out := Intervals{Watering: copyDays(in.Watering), Feeding: copyDays(in.Feeding)}

	switch state {
	case model.StateFlowering:
		if out.Watering != nil {
			*out.Watering -= 2
		}
	case model.StateDormancy:
		if out.Watering != nil {
			*out.Watering += 5
		}
	case model.StateActiveGrowth:
		out.Feeding = model.Days(ActiveGrowthFeeding)
	}

	if out.Watering != nil {
		*out.Watering = clamp(*out.Watering, MinSuggestedWatering, MaxSuggestedWatering)
	}

	return out
}

func copyDays(d *int) *int {
	if d == nil {
		return nil
	}
	return model.Days(*d)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
