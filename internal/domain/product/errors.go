package product

import "errors"

// Product domain errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("a product with this id already exists")
	ErrInvalidSlug     = errors.New("product id may only contain a-z, 0-9, - and _")
)
