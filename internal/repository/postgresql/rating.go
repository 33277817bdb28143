package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oredipendenti/backend-go/internal/domain/rating"
	"github.com/oredipendenti/backend-go/internal/pkg/database"
)

type ratingRepositoryImpl struct {
	db *database.DB
}

func NewRatingRepository(db *database.DB) rating.RatingRepository {
	return &ratingRepositoryImpl{db: db}
}

// Upsert implements rating.RatingRepository. One row per
// (product, employee); resubmission replaces the previous judgement.
func (r *ratingRepositoryImpl) Upsert(ctx context.Context, rt rating.Rating) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO product_ratings (product_id, employee_id, effectiveness, scent, ease_of_use, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, employee_id) DO UPDATE
		SET effectiveness = EXCLUDED.effectiveness,
			scent = EXCLUDED.scent,
			ease_of_use = EXCLUDED.ease_of_use,
			comment = EXCLUDED.comment,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, rt.ProductID, rt.EmployeeID, rt.Effectiveness, rt.Scent, rt.EaseOfUse, rt.Comment)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return rating.ErrUnknownProduct
		}
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

// Get implements rating.RatingRepository.
func (r *ratingRepositoryImpl) Get(ctx context.Context, productID string, employeeID string) (rating.Rating, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT product_id, employee_id, effectiveness, scent, ease_of_use, comment, updated_at
		FROM product_ratings
		WHERE product_id = $1 AND employee_id = $2
	`

	var rt rating.Rating
	err := q.QueryRow(ctx, query, productID, employeeID).Scan(
		&rt.ProductID, &rt.EmployeeID, &rt.Effectiveness, &rt.Scent, &rt.EaseOfUse,
		&rt.Comment, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating.Rating{}, rating.ErrRatingNotFound
		}
		return rating.Rating{}, fmt.Errorf("failed to get rating: %w", err)
	}

	return rt, nil
}

// ListByProduct implements rating.RatingRepository.
func (r *ratingRepositoryImpl) ListByProduct(ctx context.Context, productID string) ([]rating.Rating, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.product_id, pr.employee_id, pr.effectiveness, pr.scent, pr.ease_of_use, pr.comment, pr.updated_at, e.name
		FROM product_ratings pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.product_id = $1
		ORDER BY pr.updated_at DESC
	`

	rows, err := q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []rating.Rating
	for rows.Next() {
		var rt rating.Rating
		var name string
		err := rows.Scan(
			&rt.ProductID, &rt.EmployeeID, &rt.Effectiveness, &rt.Scent, &rt.EaseOfUse,
			&rt.Comment, &rt.UpdatedAt, &name,
		)
		if err != nil {
			return nil, err
		}
		rt.EmployeeName = &name
		ratings = append(ratings, rt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}

// Stats implements rating.RatingRepository. Products nobody has rated yet
// come back with zero votes and zero averages, ranked last.
func (r *ratingRepositoryImpl) Stats(ctx context.Context) ([]rating.ProductStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.image_url,
			COALESCE(ROUND(AVG(pr.effectiveness)::numeric, 2), 0),
			COALESCE(ROUND(AVG(pr.scent)::numeric, 2), 0),
			COALESCE(ROUND(AVG(pr.ease_of_use)::numeric, 2), 0),
			COALESCE(ROUND(AVG((pr.effectiveness + pr.scent + pr.ease_of_use) / 3.0)::numeric, 2), 0),
			COUNT(pr.employee_id)
		FROM products p
		LEFT JOIN product_ratings pr ON pr.product_id = p.id
		GROUP BY p.id, p.name, p.image_url
		ORDER BY 7 DESC, p.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer rows.Close()

	var stats []rating.ProductStats
	for rows.Next() {
		var s rating.ProductStats
		err := rows.Scan(
			&s.ProductID, &s.ProductName, &s.ImageURL,
			&s.AvgEffectiveness, &s.AvgScent, &s.AvgEaseOfUse, &s.AvgOverall,
			&s.Votes,
		)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
