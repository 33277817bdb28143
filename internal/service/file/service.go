package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/oredipendenti/backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// Bounding box product images are scaled to fit. Images already inside the
// box are stored as-is.
const (
	maxImageWidth  = 800
	maxImageHeight = 600
	jpegQuality    = 85
)

var (
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrCorruptImage         = errors.New("corrupt or unreadable image")
)

var allowedImageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// UploadResult reports where a product image landed and whether it was
// recompressed on the way in.
type UploadResult struct {
	FileName  string
	FilePath  string
	Optimized bool
}

type ProductImageService interface {
	// UploadProductImage validates, optimizes and stores one product image.
	// The stored name is always productID + the original extension; an
	// earlier image for the same product under a different extension is
	// removed so the product never has two images on disk.
	UploadProductImage(ctx context.Context, productID string, filename string, data []byte) (UploadResult, error)

	// ImageURL returns the public URL for a stored image file name.
	ImageURL(ctx context.Context, fileName string) (string, error)
}

type productImageServiceImpl struct {
	storage storage.FileStorage
}

func NewProductImageService(st storage.FileStorage) ProductImageService {
	return &productImageServiceImpl{storage: st}
}

func (s *productImageServiceImpl) UploadProductImage(ctx context.Context, productID string, filename string, data []byte) (UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	isValid := false
	for _, allowed := range allowedImageExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return UploadResult{}, ErrUnsupportedImageType
	}

	optimized, optimizedData, err := optimizeImage(data, ext)
	if err != nil {
		return UploadResult{}, err
	}

	// Drop a previous image stored under another extension.
	newFilename := productID + ext
	for _, old := range allowedImageExts {
		if old == ext {
			continue
		}
		oldPath := filepath.Join("products", productID+old)
		if exists, err := s.storage.Exists(ctx, oldPath); err == nil && exists {
			if err := s.storage.Delete(ctx, oldPath); err != nil {
				return UploadResult{}, fmt.Errorf("failed to remove previous image: %w", err)
			}
		}
	}

	contentType := contentTypeForExt(ext)
	path := filepath.Join("products", newFilename)
	storedPath, err := s.storage.Upload(ctx, bytes.NewReader(optimizedData), path, contentType)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to store product image: %w", err)
	}

	return UploadResult{
		FileName:  newFilename,
		FilePath:  storedPath,
		Optimized: optimized,
	}, nil
}

func (s *productImageServiceImpl) ImageURL(ctx context.Context, fileName string) (string, error) {
	return s.storage.GetURL(ctx, filepath.Join("products", fileName), 0)
}

// optimizeImage re-encodes JPEG, PNG and GIF uploads, scaling them down to
// fit the bounding box. WebP is validated but stored byte for byte; the
// decoder is read-only and there is no encoder in the stack.
func optimizeImage(data []byte, ext string) (bool, []byte, error) {
	if ext == ".webp" {
		if _, err := webp.DecodeConfig(bytes.NewReader(data)); err != nil {
			return false, nil, ErrCorruptImage
		}
		return false, data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return false, nil, ErrCorruptImage
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxImageWidth || height > maxImageHeight {
		ratioW := float64(maxImageWidth) / float64(width)
		ratioH := float64(maxImageHeight) / float64(height)
		ratio := ratioW
		if ratioH < ratio {
			ratio = ratioH
		}
		img = resizeImage(img, int(float64(width)*ratio), int(float64(height)*ratio))
	}

	buf := new(bytes.Buffer)
	switch format {
	case "jpeg":
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality})
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(buf, img)
	case "gif":
		err = gif.Encode(buf, img, nil)
	default:
		return false, nil, ErrUnsupportedImageType
	}
	if err != nil {
		return false, nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return true, buf.Bytes(), nil
}

// resizeImage scales with CatmullRom into an RGBA canvas, which keeps the
// alpha channel of transparent PNGs.
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
