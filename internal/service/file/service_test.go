package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	files map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: make(map[string][]byte)}
}

func (m *memoryStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	m.files[path] = data
	return path, nil
}

func (m *memoryStorage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memoryStorage) Delete(_ context.Context, path string) error {
	delete(m.files, path)
	return nil
}

func (m *memoryStorage) GetURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (m *memoryStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, img, nil))
	return buf.Bytes()
}

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func decodeStored(t *testing.T, st *memoryStorage, path string) image.Image {
	t.Helper()
	data, ok := st.files[path]
	require.True(t, ok, "expected %s to be stored", path)
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestUploadProductImageResizesLargeJPEG(t *testing.T) {
	st := newMemoryStorage()
	svc := NewProductImageService(st)

	result, err := svc.UploadProductImage(context.Background(), "detergente-multiuso", "photo.jpg", encodeTestJPEG(t, 1600, 1200))
	require.NoError(t, err)

	assert.Equal(t, "detergente-multiuso.jpg", result.FileName)
	assert.True(t, result.Optimized)

	img := decodeStored(t, st, result.FilePath)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestUploadProductImageKeepsAspectRatio(t *testing.T) {
	st := newMemoryStorage()
	svc := NewProductImageService(st)

	// Wide panorama: the width cap binds, not the height cap.
	result, err := svc.UploadProductImage(context.Background(), "sgrassatore", "wide.jpg", encodeTestJPEG(t, 2000, 500))
	require.NoError(t, err)

	img := decodeStored(t, st, result.FilePath)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestUploadProductImageSmallImageNotResized(t *testing.T) {
	st := newMemoryStorage()
	svc := NewProductImageService(st)

	result, err := svc.UploadProductImage(context.Background(), "sapone", "small.png", encodeTestPNG(t, 400, 300))
	require.NoError(t, err)

	assert.True(t, result.Optimized)
	img := decodeStored(t, st, result.FilePath)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestUploadProductImageRejectsUnknownExtension(t *testing.T) {
	svc := NewProductImageService(newMemoryStorage())

	_, err := svc.UploadProductImage(context.Background(), "sapone", "notes.txt", []byte("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestUploadProductImageRejectsCorruptData(t *testing.T) {
	svc := NewProductImageService(newMemoryStorage())

	_, err := svc.UploadProductImage(context.Background(), "sapone", "photo.jpg", []byte("definitely not a jpeg"))
	assert.ErrorIs(t, err, ErrCorruptImage)
}

func TestUploadProductImageReplacesOtherExtension(t *testing.T) {
	st := newMemoryStorage()
	svc := NewProductImageService(st)

	first, err := svc.UploadProductImage(context.Background(), "sapone", "old.png", encodeTestPNG(t, 100, 100))
	require.NoError(t, err)

	_, err = svc.UploadProductImage(context.Background(), "sapone", "new.jpg", encodeTestJPEG(t, 100, 100))
	require.NoError(t, err)

	exists, err := st.Exists(context.Background(), first.FilePath)
	require.NoError(t, err)
	assert.False(t, exists, "previous png should have been removed")
}

func TestImageURL(t *testing.T) {
	svc := NewProductImageService(newMemoryStorage())

	url, err := svc.ImageURL(context.Background(), "sapone.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/products/sapone.jpg", url)
}
