package rating

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/oredipendenti/backend-go/internal/domain/product"
	"github.com/oredipendenti/backend-go/internal/domain/rating"
	"github.com/oredipendenti/backend-go/internal/pkg/observability"
)

type RatingServiceImpl struct {
	ratingRepo  rating.RatingRepository
	productRepo product.ProductRepository
}

func NewRatingService(ratingRepo rating.RatingRepository, productRepo product.ProductRepository) rating.RatingService {
	return &RatingServiceImpl{
		ratingRepo:  ratingRepo,
		productRepo: productRepo,
	}
}

// Rate implements rating.RatingService.
func (s *RatingServiceImpl) Rate(ctx context.Context, productID string, employeeID string, req rating.RateRequest) (rating.RatingResponse, error) {
	if err := req.Validate(); err != nil {
		return rating.RatingResponse{}, err
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return rating.RatingResponse{}, rating.ErrUnknownProduct
		}
		return rating.RatingResponse{}, err
	}

	rt := rating.Rating{
		ProductID:     productID,
		EmployeeID:    employeeID,
		Effectiveness: req.Effectiveness,
		Scent:         req.Scent,
		EaseOfUse:     req.EaseOfUse,
		Comment:       req.Comment,
	}
	if err := s.ratingRepo.Upsert(ctx, rt); err != nil {
		return rating.RatingResponse{}, err
	}

	observability.RecordRatingSubmitted()

	return toResponse(rt), nil
}

// GetOwn implements rating.RatingService.
func (s *RatingServiceImpl) GetOwn(ctx context.Context, productID string, employeeID string) (rating.RatingResponse, error) {
	rt, err := s.ratingRepo.Get(ctx, productID, employeeID)
	if err != nil {
		return rating.RatingResponse{}, err
	}
	return toResponse(rt), nil
}

// ListForProduct implements rating.RatingService.
func (s *RatingServiceImpl) ListForProduct(ctx context.Context, productID string) ([]rating.RatingResponse, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, rating.ErrUnknownProduct
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	responses := make([]rating.RatingResponse, 0, len(ratings))
	for _, rt := range ratings {
		responses = append(responses, toResponse(rt))
	}
	return responses, nil
}

// Dashboard implements rating.RatingService.
func (s *RatingServiceImpl) Dashboard(ctx context.Context) (rating.DashboardResponse, error) {
	stats, err := s.ratingRepo.Stats(ctx)
	if err != nil {
		return rating.DashboardResponse{}, err
	}

	resp := rating.DashboardResponse{
		Products:    make([]rating.ProductStatsResponse, 0, len(stats)),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	for _, s := range stats {
		resp.Products = append(resp.Products, rating.ProductStatsResponse{
			ProductID:        s.ProductID,
			ProductName:      s.ProductName,
			ImageURL:         s.ImageURL,
			AvgEffectiveness: s.AvgEffectiveness,
			AvgScent:         s.AvgScent,
			AvgEaseOfUse:     s.AvgEaseOfUse,
			AvgOverall:       s.AvgOverall,
			Votes:            s.Votes,
		})
		resp.TotalVotes += s.Votes
		if s.Votes > 0 {
			resp.RatedCount++
		}
	}

	return resp, nil
}

// Overall is the mean of the three axes, rounded to two decimals.
func Overall(effectiveness, scent, easeOfUse int) float64 {
	mean := float64(effectiveness+scent+easeOfUse) / 3
	return math.Round(mean*100) / 100
}

func toResponse(rt rating.Rating) rating.RatingResponse {
	resp := rating.RatingResponse{
		ProductID:     rt.ProductID,
		EmployeeID:    rt.EmployeeID,
		Effectiveness: rt.Effectiveness,
		Scent:         rt.Scent,
		EaseOfUse:     rt.EaseOfUse,
		Overall:       Overall(rt.Effectiveness, rt.Scent, rt.EaseOfUse),
		Comment:       rt.Comment,
	}
	if rt.EmployeeName != nil {
		resp.EmployeeName = *rt.EmployeeName
	}
	return resp
}
