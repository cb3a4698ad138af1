package usecases

import (
	"bytes"

	"file-converter/internal/domain/entities"
	"file-converter/internal/domain/repositories"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	previewMaxSize = 320
	previewQuality = 80
)

// PreviewService registers a per-entry preview resource at acceptance time.
// Generation never fails in-band; on any decode trouble the original bytes
// are registered as-is.
type PreviewService interface {
	Generate(kind entities.Kind, contentType string, data []byte) string
}

type previewService struct {
	blobs  repositories.BlobStore
	logger *zap.Logger
}

func NewPreviewService(blobs repositories.BlobStore, logger *zap.Logger) PreviewService {
	return &previewService{
		blobs:  blobs,
		logger: logger,
	}
}

func (s *previewService) Generate(kind entities.Kind, contentType string, data []byte) string {
	if kind == entities.KindImage {
		if thumb, ok := s.thumbnail(data); ok {
			handle, err := s.blobs.Put(thumb, "image/jpeg")
			if err == nil {
				return handle
			}
			s.logger.Warn("Failed to store preview thumbnail", zap.Error(err))
		}
	}

	// Videos, undecodable images: register the original bytes under the
	// declared type, like handing out an object URL for the raw file.
	handle, err := s.blobs.Put(data, contentType)
	if err != nil {
		s.logger.Warn("Failed to store preview", zap.Error(err))
		return ""
	}
	return handle
}

func (s *previewService) thumbnail(data []byte) ([]byte, bool) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	thumb := imaging.Fit(img, previewMaxSize, previewMaxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(previewQuality)); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
