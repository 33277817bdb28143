package rating

import "context"

// RatingRepository defines data access for product ratings.
type RatingRepository interface {
	// Upsert inserts or replaces the rating for (ProductID, EmployeeID)
	Upsert(ctx context.Context, r Rating) error

	// Get retrieves one employee's rating of one product
	Get(ctx context.Context, productID string, employeeID string) (Rating, error)

	// ListByProduct retrieves all ratings for a product
	ListByProduct(ctx context.Context, productID string) ([]Rating, error)

	// Stats aggregates per-product averages and vote counts over the whole
	// catalog, including products nobody has rated yet
	Stats(ctx context.Context) ([]ProductStats, error)
}
