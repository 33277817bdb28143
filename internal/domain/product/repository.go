package product

import "context"

// ProductRepository defines data access for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}
