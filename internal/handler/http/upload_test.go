package http

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oredipendenti/backend-go/internal/domain/product"
	"github.com/oredipendenti/backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageService struct {
	lastProductID string
	lastFilename  string
	result        file.UploadResult
	err           error
}

func (f *fakeImageService) UploadProductImage(_ context.Context, productID string, filename string, _ []byte) (file.UploadResult, error) {
	f.lastProductID = productID
	f.lastFilename = filename
	if f.err != nil {
		return file.UploadResult{}, f.err
	}
	return f.result, nil
}

func (f *fakeImageService) ImageURL(_ context.Context, fileName string) (string, error) {
	return "http://localhost:8080/uploads/products/" + fileName, nil
}

type fakeProductService struct {
	product.ProductService

	lastImageID  string
	lastImageURL string
}

func (f *fakeProductService) SetImageURL(_ context.Context, id string, imageURL string) error {
	f.lastImageID = id
	f.lastImageURL = imageURL
	return nil
}

func smallJPEG(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, 10, 10)), nil))
	return buf.Bytes()
}

func multipartBody(t *testing.T, fieldFile string, filename string, content []byte, productID string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	if filename != "" {
		fw, err := w.CreateFormFile(fieldFile, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	if productID != "" {
		require.NoError(t, w.WriteField("productId", productID))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decodeUploadResponse(t *testing.T, rec *httptest.ResponseRecorder) legacyUploadResponse {
	t.Helper()
	var resp legacyUploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestUploadProductImageOptionsPreflight(t *testing.T) {
	h := NewUploadHandler(&fakeImageService{}, &fakeProductService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/upload-product-image", nil)
	rec := httptest.NewRecorder()
	h.UploadProductImage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadProductImageRejectsNonPost(t *testing.T) {
	h := NewUploadHandler(&fakeImageService{}, &fakeProductService{})

	req := httptest.NewRequest(http.MethodGet, "/api/upload-product-image", nil)
	rec := httptest.NewRecorder()
	h.UploadProductImage(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Metodo non consentito", resp.Message)
}

func TestUploadProductImageMissingFile(t *testing.T) {
	h := NewUploadHandler(&fakeImageService{}, &fakeProductService{})

	body, contentType := multipartBody(t, "productImage", "", nil, "sapone")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-product-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadProductImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.Equal(t, "Nessun file caricato o errore di caricamento", resp.Message)
}

func TestUploadProductImageTooLarge(t *testing.T) {
	h := NewUploadHandler(&fakeImageService{}, &fakeProductService{})

	oversized := make([]byte, 6<<20)
	body, contentType := multipartBody(t, "productImage", "big.jpg", oversized, "sapone")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-product-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadProductImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "File troppo grande. Massimo 5MB consentiti", resp.Message)
}

func TestUploadProductImageMissingProductID(t *testing.T) {
	h := NewUploadHandler(&fakeImageService{}, &fakeProductService{})

	body, contentType := multipartBody(t, "productImage", "photo.jpg", smallJPEG(t), "")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-product-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadProductImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.Equal(t, "ID prodotto mancante", resp.Message)
}

func TestUploadProductImageRejectsNonImageContent(t *testing.T) {
	h := NewUploadHandler(&fakeImageService{}, &fakeProductService{})

	body, contentType := multipartBody(t, "productImage", "fake.jpg", []byte("plain text pretending"), "sapone")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-product-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadProductImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.Equal(t, "Tipo di file non supportato. Usa JPG, PNG, GIF o WebP", resp.Message)
}

func TestUploadProductImageSuccess(t *testing.T) {
	imageSvc := &fakeImageService{
		result: file.UploadResult{
			FileName:  "sapone-bio.jpg",
			FilePath:  "products/sapone-bio.jpg",
			Optimized: true,
		},
	}
	productSvc := &fakeProductService{}
	h := NewUploadHandler(imageSvc, productSvc)

	// productId is sanitized, not rejected: uppercase and spaces are dropped.
	body, contentType := multipartBody(t, "productImage", "photo.jpg", smallJPEG(t), "Sapone-Bio!")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-product-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadProductImage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "File caricato con successo", resp.Message)
	assert.Equal(t, "sapone-bio.jpg", resp.FileName)
	assert.Equal(t, "products/sapone-bio.jpg", resp.FilePath)
	assert.True(t, resp.Optimized)

	assert.Equal(t, "sapone-bio", imageSvc.lastProductID)
	assert.Equal(t, "photo.jpg", imageSvc.lastFilename)
	assert.Equal(t, "sapone-bio", productSvc.lastImageID)
	assert.Equal(t, "http://localhost:8080/uploads/products/sapone-bio.jpg", productSvc.lastImageURL)
}
