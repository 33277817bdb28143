package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/oredipendenti/backend-go/internal/domain/product"
	"github.com/oredipendenti/backend-go/internal/domain/rating"
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRatingRepo struct {
	ratings map[string]rating.Rating // keyed by productID + "/" + employeeID
	stats   []rating.ProductStats
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]rating.Rating)}
}

func (f *fakeRatingRepo) Upsert(_ context.Context, r rating.Rating) error {
	f.ratings[r.ProductID+"/"+r.EmployeeID] = r
	return nil
}

func (f *fakeRatingRepo) Get(_ context.Context, productID, employeeID string) (rating.Rating, error) {
	r, ok := f.ratings[productID+"/"+employeeID]
	if !ok {
		return rating.Rating{}, rating.ErrRatingNotFound
	}
	return r, nil
}

func (f *fakeRatingRepo) ListByProduct(_ context.Context, productID string) ([]rating.Rating, error) {
	var result []rating.Rating
	for _, r := range f.ratings {
		if r.ProductID == productID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRatingRepo) Stats(_ context.Context) ([]rating.ProductStats, error) {
	return f.stats, nil
}

type fakeProductRepo struct {
	products map[string]product.Product
}

func newFakeProductRepo(ids ...string) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]product.Product)}
	for _, id := range ids {
		f.products[id] = product.Product{ID: id, Name: id}
	}
	return f
}

func (f *fakeProductRepo) Create(_ context.Context, p product.Product) (product.Product, error) {
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]product.Product, error) {
	var result []product.Product
	for _, p := range f.products {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p product.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func TestRateStoresAndComputesOverall(t *testing.T) {
	ratingRepo := newFakeRatingRepo()
	svc := NewRatingService(ratingRepo, newFakeProductRepo("detergente-multiuso"))

	resp, err := svc.Rate(context.Background(), "detergente-multiuso", "anna", rating.RateRequest{
		Effectiveness: 8,
		Scent:         7,
		EaseOfUse:     9,
		Comment:       "Ottimo sui vetri",
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, resp.Overall)
	assert.Equal(t, "Ottimo sui vetri", resp.Comment)

	stored := ratingRepo.ratings["detergente-multiuso/anna"]
	assert.Equal(t, 8, stored.Effectiveness)
}

func TestRateReplacesPreviousVote(t *testing.T) {
	ratingRepo := newFakeRatingRepo()
	svc := NewRatingService(ratingRepo, newFakeProductRepo("sapone"))

	_, err := svc.Rate(context.Background(), "sapone", "anna", rating.RateRequest{Effectiveness: 3, Scent: 3, EaseOfUse: 3})
	require.NoError(t, err)
	_, err = svc.Rate(context.Background(), "sapone", "anna", rating.RateRequest{Effectiveness: 9, Scent: 9, EaseOfUse: 9})
	require.NoError(t, err)

	require.Len(t, ratingRepo.ratings, 1)
	assert.Equal(t, 9, ratingRepo.ratings["sapone/anna"].Effectiveness)
}

func TestRateRejectsOutOfRangeScores(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), newFakeProductRepo("sapone"))

	_, err := svc.Rate(context.Background(), "sapone", "anna", rating.RateRequest{
		Effectiveness: 0,
		Scent:         11,
		EaseOfUse:     5,
	})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	details := verrs.ToMap()
	assert.Contains(t, details, "effectiveness")
	assert.Contains(t, details, "scent")
	assert.NotContains(t, details, "ease_of_use")
}

func TestRateUnknownProduct(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), newFakeProductRepo())

	_, err := svc.Rate(context.Background(), "fantasma", "anna", rating.RateRequest{Effectiveness: 5, Scent: 5, EaseOfUse: 5})
	assert.ErrorIs(t, err, rating.ErrUnknownProduct)
}

func TestOverallRounding(t *testing.T) {
	// (7+7+6)/3 = 6.666... -> 6.67
	assert.Equal(t, 6.67, Overall(7, 7, 6))
	assert.Equal(t, 8.0, Overall(8, 8, 8))
	assert.Equal(t, 1.0, Overall(1, 1, 1))
}

func TestDashboardAggregates(t *testing.T) {
	ratingRepo := newFakeRatingRepo()
	ratingRepo.stats = []rating.ProductStats{
		{ProductID: "sapone", ProductName: "Sapone", AvgOverall: 8.5, Votes: 4},
		{ProductID: "sgrassatore", ProductName: "Sgrassatore", AvgOverall: 6.0, Votes: 2},
		{ProductID: "nuovo", ProductName: "Nuovo", AvgOverall: 0, Votes: 0},
	}
	svc := NewRatingService(ratingRepo, newFakeProductRepo())

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.Products, 3)
	assert.Equal(t, int64(6), resp.TotalVotes)
	assert.Equal(t, 2, resp.RatedCount)
	assert.NotEmpty(t, resp.GeneratedAt)
}

func TestListForProduct(t *testing.T) {
	ratingRepo := newFakeRatingRepo()
	svc := NewRatingService(ratingRepo, newFakeProductRepo("sapone"))

	_, err := svc.Rate(context.Background(), "sapone", "anna", rating.RateRequest{Effectiveness: 8, Scent: 6, EaseOfUse: 7})
	require.NoError(t, err)

	list, err := svc.ListForProduct(context.Background(), "sapone")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 7.0, list[0].Overall)

	_, err = svc.ListForProduct(context.Background(), "fantasma")
	assert.ErrorIs(t, err, rating.ErrUnknownProduct)
}

func TestGetOwnNotFound(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), newFakeProductRepo("sapone"))

	_, err := svc.GetOwn(context.Background(), "sapone", "anna")
	assert.ErrorIs(t, err, rating.ErrRatingNotFound)
}
