package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oredipendenti/backend-go/internal/domain/auth"
	"github.com/oredipendenti/backend-go/internal/domain/rating"
	"github.com/oredipendenti/backend-go/internal/handler/http/middleware"
	"github.com/oredipendenti/backend-go/internal/handler/http/response"
)

type RatingHandler interface {
	Rate(w http.ResponseWriter, r *http.Request)
	GetOwn(w http.ResponseWriter, r *http.Request)
	ListForProduct(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type RatingHandlerImpl struct {
	ratingService rating.RatingService
}

func NewRatingHandler(ratingService rating.RatingService) RatingHandler {
	return &RatingHandlerImpl{ratingService: ratingService}
}

// Rate implements RatingHandler. A resubmission replaces the caller's
// previous judgement of the product.
func (h *RatingHandlerImpl) Rate(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req rating.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rt, err := h.ratingService.Rate(r.Context(), chi.URLParam(r, "productID"), employeeID, req)
	if err != nil {
		slog.Error("Rate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rating saved", rt)
}

// GetOwn implements RatingHandler.
func (h *RatingHandlerImpl) GetOwn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	rt, err := h.ratingService.GetOwn(r.Context(), chi.URLParam(r, "productID"), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rt)
}

// ListForProduct implements RatingHandler.
func (h *RatingHandlerImpl) ListForProduct(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratingService.ListForProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ratings)
}

// Dashboard implements RatingHandler.
func (h *RatingHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.ratingService.Dashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}
