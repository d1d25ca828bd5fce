package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxImageDimension bounds the longest side of stored and analysed images.
const MaxImageDimension = 1600

var imageExts = []string{".jpg", ".jpeg", ".png"}

type FileService interface {
	// UploadDocument stores a document scan under documents/{employeeID}.
	// Images are downscaled and re-encoded as JPEG.
	UploadDocument(ctx context.Context, employeeID string, documentType string, file io.Reader, filename string) (string, error)

	// Open returns a stored file with its content type
	Open(ctx context.Context, path string) (io.ReadCloser, string, error)

	// ReadImage loads a stored image downscaled for analysis. ok is false
	// when the stored file is not an image.
	ReadImage(ctx context.Context, path string) (data []byte, contentType string, ok bool, err error)

	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadDocument uploads employee document
func (s *fileServiceImpl) UploadDocument(ctx context.Context, employeeID string, documentType string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var body io.Reader = file
	if IsImage(filename) {
		buffer, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("failed to read image: %w", err)
		}
		scaled, err := Downscale(buffer, MaxImageDimension)
		if err != nil {
			return "", fmt.Errorf("failed to downscale image: %w", err)
		}
		body = bytes.NewReader(scaled)
		ext = ".jpg"
	}

	newFilename := fmt.Sprintf("%s-%s%s", documentType, uuid.New().String(), ext)
	path := filepath.Join("documents", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, body, path)
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) Open(ctx context.Context, path string) (io.ReadCloser, string, error) {
	rc, err := s.storage.Download(ctx, path)
	if err != nil {
		return nil, "", err
	}
	return rc, ContentType(path), nil
}

func (s *fileServiceImpl) ReadImage(ctx context.Context, path string) ([]byte, string, bool, error) {
	if !IsImage(path) {
		return nil, "", false, nil
	}

	rc, err := s.storage.Download(ctx, path)
	if err != nil {
		return nil, "", false, err
	}
	defer rc.Close()

	buffer, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", false, fmt.Errorf("failed to read image: %w", err)
	}
	scaled, err := Downscale(buffer, MaxImageDimension)
	if err != nil {
		return nil, "", false, err
	}
	return scaled, "image/jpeg", true, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// ==================== HELPER FUNCTIONS ====================

func IsImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range imageExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Downscale decodes a JPEG or PNG image, shrinks it so neither side exceeds
// maxDimension and re-encodes it as JPEG. Smaller images are only re-encoded.
func Downscale(buffer []byte, maxDimension int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxDimension || height > maxDimension {
		if width >= height {
			height = height * maxDimension / width
			width = maxDimension
		} else {
			width = width * maxDimension / height
			height = maxDimension
		}
		img = resizeImage(img, max(width, 1), max(height, 1))
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// Use CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
