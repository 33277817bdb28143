package rating

import "time"

// Rating is one employee's judgement of one product on three 1-10 axes.
// A resubmission replaces the previous values.
type Rating struct {
	ProductID     string
	EmployeeID    string
	Effectiveness int
	Scent         int
	EaseOfUse     int
	Comment       string
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}

// ProductStats is the per-product aggregate shown on the feedback dashboard.
type ProductStats struct {
	ProductID        string
	ProductName      string
	ImageURL         string
	AvgEffectiveness float64
	AvgScent         float64
	AvgEaseOfUse     float64
	AvgOverall       float64
	Votes            int64
}
