package usecases

import (
	"context"
	"time"

	"file-converter/internal/domain/entities"
	"file-converter/internal/domain/repositories"
	"file-converter/internal/infrastructure/engine"
	apperrors "file-converter/pkg/errors"
	"file-converter/pkg/file"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const imageQuality = "75"

// EngineProvider gates access to the single engine instance behind its
// readiness flag.
type EngineProvider interface {
	Ready() bool
	Engine() engine.Engine
}

// ConverterService owns the list of tracked entries and drives each one
// through its conversion state machine.
type ConverterService interface {
	// Accept tracks a submitted file. It classifies by declared content
	// type, assigns the type's default output format and never fails
	// in-band; malformed files surface at conversion time.
	Accept(name, contentType string, data []byte) (entities.ConversionEntry, error)
	// SetOutputFormat updates the requested format while the entry is
	// pending. Ignored for unknown or already-started entries.
	SetOutputFormat(id, format string)
	// Convert runs the write -> exec -> read -> cleanup sequence for one
	// entry. Workspace cleanup is attempted regardless of outcome and
	// never changes the result.
	Convert(ctx context.Context, id string) error
	// Remove drops an entry at any status. An in-flight conversion is not
	// cancelled; its eventual result is discarded.
	Remove(id string) error
	Get(id string) (entities.ConversionEntry, error)
	List() ([]entities.ConversionEntry, error)
	Output(id string) (data []byte, mimeType, downloadName string, err error)
	Preview(id string) (data []byte, mimeType string, err error)
	Ready() bool
}

type converterService struct {
	repo     repositories.EntryRepository
	blobs    repositories.BlobStore
	provider EngineProvider
	previews PreviewService
	logger   *zap.Logger
}

func NewConverterService(
	repo repositories.EntryRepository,
	blobs repositories.BlobStore,
	provider EngineProvider,
	previews PreviewService,
	logger *zap.Logger,
) ConverterService {
	return &converterService{
		repo:     repo,
		blobs:    blobs,
		provider: provider,
		previews: previews,
		logger:   logger,
	}
}

func (s *converterService) Accept(name, contentType string, data []byte) (entities.ConversionEntry, error) {
	kind := entities.KindVideo
	format := file.DefaultVideoFormat
	if file.IsImageType(contentType) {
		kind = entities.KindImage
		format = file.DefaultImageFormat
	}

	now := time.Now()
	entry := &entities.ConversionEntry{
		ID:            uuid.New().String(),
		OriginalName:  name,
		ContentType:   contentType,
		Data:          data,
		Kind:          kind,
		Status:        entities.StatusPending,
		OutputFormat:  format,
		PreviewHandle: s.previews.Generate(kind, contentType, data),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(entry); err != nil {
		return entities.ConversionEntry{}, err
	}

	s.logger.Info("File accepted",
		zap.String("entry_id", entry.ID),
		zap.String("filename", name),
		zap.String("kind", string(kind)),
		zap.String("format", format),
	)
	return *entry, nil
}

func (s *converterService) SetOutputFormat(id, format string) {
	if !s.repo.UpdateFormat(id, file.Normalize(format)) {
		s.logger.Debug("Format change ignored",
			zap.String("entry_id", id),
			zap.String("format", format),
		)
	}
}

func (s *converterService) Convert(ctx context.Context, id string) error {
	if !s.provider.Ready() {
		return apperrors.ErrEngineNotReady(nil)
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.repo.UpdateStatus(id, entities.StatusConverting); err != nil {
		return apperrors.ErrIllegalTransition(err)
	}

	// Video conversions always run the fixed H.264/AAC pipeline, so the
	// output name has to say mp4 no matter what was requested.
	format := entry.OutputFormat
	if entry.Kind == entities.KindVideo {
		format = file.DefaultVideoFormat
	}

	inputName := file.WorkspaceInputName(entry.ID, entry.OriginalName)
	outputName := file.WorkspaceOutputName(entry.ID, format)
	eng := s.provider.Engine()

	handle, convErr := s.runConversion(ctx, eng, entry, format, inputName, outputName)

	// Cleanup is best-effort and must never mask the conversion result.
	for _, name := range []string{inputName, outputName} {
		if err := eng.DeleteFile(name); err != nil {
			s.logger.Warn("Workspace cleanup failed",
				zap.String("entry_id", entry.ID),
				zap.String("name", name),
				zap.Error(err),
			)
		}
	}

	if convErr != nil {
		s.logger.Error("Conversion failed",
			zap.String("entry_id", entry.ID),
			zap.String("filename", entry.OriginalName),
			zap.Error(convErr),
		)
		if err := s.repo.UpdateStatus(id, entities.StatusError); err != nil {
			// Entry was removed mid-conversion; nothing left to mark.
			s.logger.Debug("Conversion result discarded", zap.String("entry_id", id))
		}
		return convErr
	}

	downloadName := file.DownloadName(entry.OriginalName, format)
	mimeType := file.GetMimeType(format)
	if err := s.repo.SetResult(id, handle, downloadName, mimeType); err != nil {
		// Entry was removed mid-conversion; drop the produced resource.
		s.blobs.Revoke(handle)
		s.logger.Debug("Conversion result discarded", zap.String("entry_id", id))
		return nil
	}

	s.logger.Info("Conversion completed",
		zap.String("entry_id", entry.ID),
		zap.String("download_name", downloadName),
		zap.String("mime_type", mimeType),
	)
	return nil
}

// runConversion performs the engine round trip and returns the handle of the
// stored output resource.
func (s *converterService) runConversion(
	ctx context.Context,
	eng engine.Engine,
	entry entities.ConversionEntry,
	format, inputName, outputName string,
) (string, error) {
	if err := eng.WriteFile(inputName, entry.Data); err != nil {
		return "", apperrors.ErrEngineCall(err)
	}

	args := buildConvertArgs(entry.Kind, format, inputName, outputName)
	if err := eng.Exec(ctx, args); err != nil {
		return "", apperrors.ErrEngineCall(err)
	}

	output, err := eng.ReadFile(outputName)
	if err != nil {
		return "", apperrors.ErrEngineCall(err)
	}
	if len(output) == 0 {
		return "", apperrors.ErrEmptyOutput(nil)
	}

	// The store copies the bytes; the engine's buffer may be invalidated
	// by the workspace deletes that follow.
	handle, err := s.blobs.Put(output, file.GetMimeType(format))
	if err != nil {
		return "", apperrors.ErrEngineCall(err)
	}
	return handle, nil
}

func buildConvertArgs(kind entities.Kind, format, inputName, outputName string) []string {
	if kind == entities.KindImage {
		args := []string{"-i", inputName}
		if file.IsQualityTunable(format) {
			args = append(args, "-q:v", imageQuality)
		}
		return append(args, outputName)
	}
	return []string{
		"-i", inputName,
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-crf", "23",
		"-c:a", "aac",
		outputName,
	}
}

func (s *converterService) Remove(id string) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.ErrNotFound(err)
	}
	s.blobs.Revoke(entry.PreviewHandle)
	s.blobs.Revoke(entry.OutputHandle)
	s.logger.Info("Entry removed",
		zap.String("entry_id", id),
		zap.String("status", string(entry.Status)),
	)
	return nil
}

func (s *converterService) Get(id string) (entities.ConversionEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return entities.ConversionEntry{}, apperrors.ErrNotFound(err)
	}
	return entry, nil
}

func (s *converterService) List() ([]entities.ConversionEntry, error) {
	return s.repo.GetAll()
}

func (s *converterService) Output(id string) ([]byte, string, string, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, "", "", apperrors.ErrNotFound(err)
	}
	if entry.Status != entities.StatusCompleted || entry.OutputHandle == "" {
		return nil, "", "", apperrors.ErrNoOutput(nil)
	}
	data, mimeType, err := s.blobs.Get(entry.OutputHandle)
	if err != nil {
		return nil, "", "", apperrors.ErrNoOutput(err)
	}
	return data, mimeType, entry.OutputName, nil
}

func (s *converterService) Preview(id string) ([]byte, string, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, "", apperrors.ErrNotFound(err)
	}
	if entry.PreviewHandle == "" {
		return nil, "", apperrors.ErrNoOutput(nil)
	}
	data, mimeType, err := s.blobs.Get(entry.PreviewHandle)
	if err != nil {
		return nil, "", apperrors.ErrNoOutput(err)
	}
	return data, mimeType, nil
}

func (s *converterService) Ready() bool {
	return s.provider.Ready()
}
