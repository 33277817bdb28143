package product

import (
	"context"
	"errors"

	"github.com/oredipendenti/backend-go/internal/domain/product"
)

type ProductServiceImpl struct {
	productRepo product.ProductRepository
}

func NewProductService(productRepo product.ProductRepository) product.ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

// Create implements product.ProductService.
func (s *ProductServiceImpl) Create(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	created, err := s.productRepo.Create(ctx, product.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return product.ProductResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements product.ProductService.
func (s *ProductServiceImpl) Get(ctx context.Context, id string) (product.ProductResponse, error) {
	prod, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return toResponse(prod), nil
}

// List implements product.ProductService.
func (s *ProductServiceImpl) List(ctx context.Context) ([]product.ProductResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, prod := range products {
		responses = append(responses, toResponse(prod))
	}
	return responses, nil
}

// Update implements product.ProductService.
func (s *ProductServiceImpl) Update(ctx context.Context, id string, req product.UpdateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	prod, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}

	prod.Name = req.Name
	prod.Description = req.Description
	if req.ImageURL != "" {
		prod.ImageURL = req.ImageURL
	}

	if err := s.productRepo.Update(ctx, prod); err != nil {
		return product.ProductResponse{}, err
	}

	return toResponse(prod), nil
}

// Delete implements product.ProductService.
func (s *ProductServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// SetImageURL implements product.ProductService. Uploads for ids not in the
// catalog succeed without a catalog write; the admin can register the
// product later and the image is already in place.
func (s *ProductServiceImpl) SetImageURL(ctx context.Context, id string, imageURL string) error {
	prod, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil
		}
		return err
	}

	prod.ImageURL = imageURL
	return s.productRepo.Update(ctx, prod)
}

func toResponse(p product.Product) product.ProductResponse {
	return product.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}
