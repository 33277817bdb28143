package rating

import (
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
)

// RateRequest submits or replaces one employee's rating of a product.
type RateRequest struct {
	Effectiveness int    `json:"effectiveness"`
	Scent         int    `json:"scent"`
	EaseOfUse     int    `json:"ease_of_use"`
	Comment       string `json:"comment"`
}

func (r *RateRequest) Validate() error {
	var errs validator.ValidationErrors

	checks := []struct {
		field string
		value int
	}{
		{"effectiveness", r.Effectiveness},
		{"scent", r.Scent},
		{"ease_of_use", r.EaseOfUse},
	}
	for _, c := range checks {
		if c.value < 1 || c.value > 10 {
			errs = append(errs, validator.ValidationError{
				Field:   c.field,
				Message: "must be between 1 and 10",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RatingResponse struct {
	ProductID     string  `json:"product_id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Effectiveness int     `json:"effectiveness"`
	Scent         int     `json:"scent"`
	EaseOfUse     int     `json:"ease_of_use"`
	Overall       float64 `json:"overall"`
	Comment       string  `json:"comment,omitempty"`
}

// ProductStatsResponse is one dashboard row; products are ranked by overall
// average, best first.
type ProductStatsResponse struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	ImageURL         string  `json:"image_url,omitempty"`
	AvgEffectiveness float64 `json:"avg_effectiveness"`
	AvgScent         float64 `json:"avg_scent"`
	AvgEaseOfUse     float64 `json:"avg_ease_of_use"`
	AvgOverall       float64 `json:"avg_overall"`
	Votes            int64   `json:"votes"`
}

type DashboardResponse struct {
	Products    []ProductStatsResponse `json:"products"`
	TotalVotes  int64                  `json:"total_votes"`
	RatedCount  int                    `json:"rated_count"`
	GeneratedAt string                 `json:"generated_at"`
}
