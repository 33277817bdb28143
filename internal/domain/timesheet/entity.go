package timesheet

import (
	"time"
)

// Activity categories as the entry screens store them.
const (
	CategoryOffices    = "uffici"
	CategoryApartments = "appartamenti"
	CategoryRentals    = "bnb"
	CategoryMisc       = "pst"
)

// Activity is one unit of work performed on a day, already normalized:
// Minutes >= 0, Headcount >= 1, Multiplier >= 0.
type Activity struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Minutes    int    `json:"minutes"`
	Headcount  int    `json:"headcount"`
	Multiplier int    `json:"multiplier"`
}

// DayType classifies one employee calendar day. Exactly one applies.
type DayType int

const (
	DayNormal DayType = iota
	DayRest
	DayVacation
	DaySick
)

func (t DayType) String() string {
	switch t {
	case DayRest:
		return "rest"
	case DayVacation:
		return "vacation"
	case DaySick:
		return "sick"
	default:
		return "normal"
	}
}

// Day is the stored state of one employee on one calendar date.
// Rest/Vacation/Sick mirror the loose boolean triple the legacy store kept;
// the store does not enforce exclusivity, Classify resolves the triple to a
// single DayType.
type Day struct {
	EmployeeID string
	Date       string // ISO date, YYYY-MM-DD
	Rest       bool
	Vacation   bool
	Sick       bool
	Activities []Activity
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// MonthlySummary is a derived aggregate over one employee's days within one
// calendar month. It is recomputed on demand and never persisted.
type MonthlySummary struct {
	TotalEffectiveMinutes float64
	DecimalHours          float64
	WorkedDays            int
	RestCount             int
	VacationCount         int
	SickCount             int
}
