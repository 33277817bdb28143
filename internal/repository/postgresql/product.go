package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oredipendenti/backend-go/internal/domain/product"
	"github.com/oredipendenti/backend-go/internal/pkg/database"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

// Create implements product.ProductRepository.
func (p *productRepositoryImpl) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO products (id, name, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, image_url, created_at, updated_at
	`

	var created product.Product
	err := q.QueryRow(ctx, query,
		newProduct.ID, newProduct.Name, newProduct.Description, newProduct.ImageURL,
	).Scan(
		&created.ID, &created.Name, &created.Description, &created.ImageURL,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return product.Product{}, product.ErrProductExists
		}
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}

// GetByID implements product.ProductRepository.
func (p *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var prod product.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&prod.ID, &prod.Name, &prod.Description, &prod.ImageURL,
		&prod.CreatedAt, &prod.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return prod, nil
}

// List implements product.ProductRepository.
func (p *productRepositoryImpl) List(ctx context.Context) ([]product.Product, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM products
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var prod product.Product
		err := rows.Scan(
			&prod.ID, &prod.Name, &prod.Description, &prod.ImageURL,
			&prod.CreatedAt, &prod.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, prod)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// Update implements product.ProductRepository.
func (p *productRepositoryImpl) Update(ctx context.Context, prod product.Product) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE products
		SET name = $1, description = $2, image_url = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, prod.Name, prod.Description, prod.ImageURL, prod.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// Delete implements product.ProductRepository. Ratings go with the product
// via ON DELETE CASCADE.
func (p *productRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}
