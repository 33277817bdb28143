package timesheet

import (
	"math"
	"strconv"
	"strings"

	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
)

// This file is the single source of truth for the minutes -> hours
// computation. The entry screen, the admin summary and the export report all
// go through these functions; none of them reimplements the formula.

// NormalizeActivity coerces a raw submission into a canonical activity.
// Malformed fields silently degrade to safe defaults: minutes -> 0,
// headcount -> 1 (clamped, never divide by zero), multiplier -> 1. Negative
// values are clamped to the same floors. Nothing is ever rejected here; the
// data comes from years of manual edits and aggregation must stay total.
func NormalizeActivity(in timesheet.ActivityInput) timesheet.Activity {
	minutes := coerceInt(in.Minutes, 0)
	if minutes < 0 {
		minutes = 0
	}
	headcount := coerceInt(in.Headcount, 1)
	if headcount < 1 {
		headcount = 1
	}
	multiplier := coerceInt(in.Multiplier, 1)
	if multiplier < 0 {
		multiplier = 0
	}
	return timesheet.Activity{
		Name:       strings.TrimSpace(in.Name),
		Category:   strings.TrimSpace(in.Category),
		Minutes:    minutes,
		Headcount:  headcount,
		Multiplier: multiplier,
	}
}

// coerceInt attempts an integer parse of a JSON value of unknown type.
func coerceInt(v any, def int) int {
	switch n := v.(type) {
	case nil:
		return def
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return int(n)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return def
	default:
		return def
	}
}

// EffectiveMinutes computes the duration credited for one activity:
// (minutes * multiplier) / headcount, in floating point, unrounded.
// Callers aggregating must sum these raw values; rounding happens exactly
// once, at the end of aggregation.
func EffectiveMinutes(a timesheet.Activity) float64 {
	headcount := a.Headcount
	if headcount < 1 {
		headcount = 1
	}
	return float64(a.Minutes) * float64(a.Multiplier) / float64(headcount)
}

// DisplayEffectiveMinutes is the per-row value shown in activity tables,
// rounded to the nearest minute. It may disagree slightly with day and month
// totals, which sum the unrounded values first.
func DisplayEffectiveMinutes(a timesheet.Activity) int {
	return int(math.Round(EffectiveMinutes(a)))
}

// Classify resolves the loose boolean triple of a stored day to a single
// DayType. Legacy rows can carry conflicting flags; precedence is
// sick > vacation > rest > normal, matching the reference renderers.
func Classify(d timesheet.Day) timesheet.DayType {
	switch {
	case d.Sick:
		return timesheet.DaySick
	case d.Vacation:
		return timesheet.DayVacation
	case d.Rest:
		return timesheet.DayRest
	default:
		return timesheet.DayNormal
	}
}

// AggregateDay sums unrounded effective minutes over a day's activities.
// Non-normal days contribute zero regardless of what their activities array
// literally contains; the store does not enforce that it is empty.
func AggregateDay(d timesheet.Day) float64 {
	if Classify(d) != timesheet.DayNormal {
		return 0
	}
	var total float64
	for _, a := range d.Activities {
		total += EffectiveMinutes(a)
	}
	return total
}

// AggregateMonth folds a set of days into a MonthlySummary. Minutes are
// summed as raw floats across all days and converted to decimal hours with
// a single rounding step at the end; the result is stable under reordering
// of days and activities.
func AggregateMonth(days []timesheet.Day) timesheet.MonthlySummary {
	var s timesheet.MonthlySummary
	for _, d := range days {
		switch Classify(d) {
		case timesheet.DaySick:
			s.SickCount++
		case timesheet.DayVacation:
			s.VacationCount++
		case timesheet.DayRest:
			s.RestCount++
		default:
			minutes := AggregateDay(d)
			s.TotalEffectiveMinutes += minutes
			if len(d.Activities) > 0 {
				s.WorkedDays++
			}
		}
	}
	s.DecimalHours = round2(s.TotalEffectiveMinutes / 60)
	return s
}

// DecimalHours converts a raw minute total to hours rounded to 2 decimals.
// This is the only rounding point for totals.
func DecimalHours(totalMinutes float64) float64 {
	return round2(totalMinutes / 60)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MergeActivities folds an incoming submission into the stored activities of
// a day, keyed by (name, category): minutes accumulate, headcount and
// multiplier are overwritten by the newest submission, unknown keys are
// appended in submission order. Stored order is preserved for existing keys.
func MergeActivities(existing, incoming []timesheet.Activity) []timesheet.Activity {
	merged := make([]timesheet.Activity, len(existing))
	copy(merged, existing)

	index := make(map[[2]string]int, len(merged))
	for i, a := range merged {
		index[[2]string{a.Name, a.Category}] = i
	}

	for _, a := range incoming {
		key := [2]string{a.Name, a.Category}
		if i, ok := index[key]; ok {
			merged[i].Minutes += a.Minutes
			merged[i].Headcount = a.Headcount
			merged[i].Multiplier = a.Multiplier
			continue
		}
		index[key] = len(merged)
		merged = append(merged, a)
	}
	return merged
}
