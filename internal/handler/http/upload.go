package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/oredipendenti/backend-go/internal/domain/product"
	"github.com/oredipendenti/backend-go/internal/pkg/observability"
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
	"github.com/oredipendenti/backend-go/internal/service/file"
)

// The upload endpoint keeps the wire contract of the old PHP uploader the
// admin screens still speak: a flat JSON body with Italian messages instead
// of the envelope the rest of the API uses.

const maxUploadSize = 5 << 20 // 5MB

var allowedUploadMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type legacyUploadResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	FileName  string `json:"fileName,omitempty"`
	FilePath  string `json:"filePath,omitempty"`
	Optimized bool   `json:"optimized,omitempty"`
}

type UploadHandler interface {
	UploadProductImage(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct {
	imageService   file.ProductImageService
	productService product.ProductService
}

func NewUploadHandler(imageService file.ProductImageService, productService product.ProductService) UploadHandler {
	return &UploadHandlerImpl{
		imageService:   imageService,
		productService: productService,
	}
}

// UploadProductImage implements UploadHandler. Registered with r.Handle so
// it sees every method; the method check below is part of the contract.
func (h *UploadHandlerImpl) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeLegacyJSON(w, http.StatusMethodNotAllowed, legacyUploadResponse{
			Success: false,
			Message: "Metodo non consentito",
		})
		return
	}

	// The extra byte past the limit distinguishes "too large" from "exact".
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		observability.RecordUpload(false)
		writeLegacyJSON(w, http.StatusBadRequest, legacyUploadResponse{
			Success: false,
			Message: "File troppo grande. Massimo 5MB consentiti",
		})
		return
	}

	upload, header, err := r.FormFile("productImage")
	if err != nil {
		observability.RecordUpload(false)
		writeLegacyJSON(w, http.StatusBadRequest, legacyUploadResponse{
			Success: false,
			Message: "Nessun file caricato o errore di caricamento",
		})
		return
	}
	defer upload.Close()

	if header.Size > maxUploadSize {
		observability.RecordUpload(false)
		writeLegacyJSON(w, http.StatusBadRequest, legacyUploadResponse{
			Success: false,
			Message: "File troppo grande. Massimo 5MB consentiti",
		})
		return
	}

	productID := validator.SanitizeSlug(r.FormValue("productId"))
	if productID == "" {
		observability.RecordUpload(false)
		writeLegacyJSON(w, http.StatusBadRequest, legacyUploadResponse{
			Success: false,
			Message: "ID prodotto mancante",
		})
		return
	}

	data, err := io.ReadAll(upload)
	if err != nil {
		observability.RecordUpload(false)
		writeLegacyJSON(w, http.StatusBadRequest, legacyUploadResponse{
			Success: false,
			Message: "Nessun file caricato o errore di caricamento",
		})
		return
	}

	// MIME sniffed from content, never trusted from the client headers.
	mimeType := http.DetectContentType(data)
	if !validator.IsInSlice(mimeType, allowedUploadMIMEs) {
		observability.RecordUpload(false)
		writeLegacyJSON(w, http.StatusBadRequest, legacyUploadResponse{
			Success: false,
			Message: "Tipo di file non supportato. Usa JPG, PNG, GIF o WebP",
		})
		return
	}

	result, err := h.imageService.UploadProductImage(r.Context(), productID, header.Filename, data)
	if err != nil {
		observability.RecordUpload(false)
		if errors.Is(err, file.ErrUnsupportedImageType) || errors.Is(err, file.ErrCorruptImage) {
			writeLegacyJSON(w, http.StatusBadRequest, legacyUploadResponse{
				Success: false,
				Message: "Tipo di file non supportato. Usa JPG, PNG, GIF o WebP",
			})
			return
		}
		slog.Error("UploadProductImage service error", "error", err)
		writeLegacyJSON(w, http.StatusInternalServerError, legacyUploadResponse{
			Success: false,
			Message: "Errore durante il salvataggio del file",
		})
		return
	}

	if imageURL, err := h.imageService.ImageURL(r.Context(), result.FileName); err == nil {
		if err := h.productService.SetImageURL(r.Context(), productID, imageURL); err != nil {
			slog.Error("UploadProductImage catalog update error", "error", err)
		}
	}

	observability.RecordUpload(true)
	writeLegacyJSON(w, http.StatusOK, legacyUploadResponse{
		Success:   true,
		Message:   "File caricato con successo",
		FileName:  result.FileName,
		FilePath:  result.FilePath,
		Optimized: result.Optimized,
	})
}

func writeLegacyJSON(w http.ResponseWriter, statusCode int, payload legacyUploadResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
