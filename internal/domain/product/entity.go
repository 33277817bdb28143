package product

import "time"

// Product is one cleaning product in the catalog. The ID is a slug chosen by
// the admin and doubles as the stored image file name.
type Product struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
