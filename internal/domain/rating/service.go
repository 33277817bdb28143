package rating

import "context"

// RatingService defines business logic for product feedback.
type RatingService interface {
	// Rate submits or replaces the caller's rating of a product
	Rate(ctx context.Context, productID string, employeeID string, req RateRequest) (RatingResponse, error)

	// GetOwn retrieves the caller's rating of a product
	GetOwn(ctx context.Context, productID string, employeeID string) (RatingResponse, error)

	// ListForProduct retrieves everyone's ratings of a product, newest first
	ListForProduct(ctx context.Context, productID string) ([]RatingResponse, error)

	// Dashboard aggregates the whole catalog, ranked by overall average
	Dashboard(ctx context.Context) (DashboardResponse, error)
}
