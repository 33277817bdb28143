package product

import "context"

// ProductService defines business logic for the product catalog.
type ProductService interface {
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	Get(ctx context.Context, id string) (ProductResponse, error)
	List(ctx context.Context) ([]ProductResponse, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, id string) error

	// SetImageURL records the public URL of an uploaded product image.
	// Missing products are tolerated: the legacy upload endpoint accepted
	// images for ids not yet present in the catalog.
	SetImageURL(ctx context.Context, id string, imageURL string) error
}
