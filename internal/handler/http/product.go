package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oredipendenti/backend-go/internal/domain/product"
	"github.com/oredipendenti/backend-go/internal/handler/http/response"
)

type ProductHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProductHandlerImpl struct {
	productService product.ProductService
}

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &ProductHandlerImpl{productService: productService}
}

// List implements ProductHandler.
func (h *ProductHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, products)
}

// Get implements ProductHandler.
func (h *ProductHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	prod, err := h.productService.Get(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prod)
}

// Create implements ProductHandler.
func (h *ProductHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req product.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	prod, err := h.productService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created", prod)
}

// Update implements ProductHandler.
func (h *ProductHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req product.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	prod, err := h.productService.Update(r.Context(), chi.URLParam(r, "productID"), req)
	if err != nil {
		slog.Error("Update product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated", prod)
}

// Delete implements ProductHandler.
func (h *ProductHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.Delete(r.Context(), chi.URLParam(r, "productID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted", nil)
}
