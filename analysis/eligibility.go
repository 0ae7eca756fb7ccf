package analysis

import (
	"math"
	"time"
)

// IntervalDays is the minimum number of whole days between two analyses of the same diary.
const IntervalDays = 30

// Eligibility reports whether a new analysis may run.
type Eligibility struct {
	Eligible      bool `json:"eligible"`
	DaysRemaining int  `json:"days_remaining"`
}

// CheckEligibility compares the last analysis time with now. A nil last means
// no analysis has run yet.
func CheckEligibility(last *time.Time, now time.Time) Eligibility {
	if last == nil {
		return Eligibility{Eligible: true}
	}
	days := int(math.Floor(now.Sub(*last).Hours() / 24))
	if days >= IntervalDays {
		return Eligibility{Eligible: true}
	}
	return Eligibility{DaysRemaining: IntervalDays - days}
}
