package usecases

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// CleanupService sweeps leftover files out of the engine workspace. The
// per-conversion deletes are best-effort, and entries removed mid-conversion
// never run theirs, so a periodic sweep picks up whatever stayed behind.
type CleanupService interface {
	CleanupStaleWorkspace(maxAge time.Duration) error
}

type cleanupService struct {
	workDir string
	logger  *zap.Logger
}

func NewCleanupService(workDir string, logger *zap.Logger) CleanupService {
	return &cleanupService{
		workDir: workDir,
		logger:  logger,
	}
}

func (s *cleanupService) CleanupStaleWorkspace(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.workDir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.workDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Warn("Cannot stat workspace file", zap.String("path", path), zap.Error(err))
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.logger.Warn("Cannot remove stale workspace file", zap.String("path", path), zap.Error(err))
			continue
		}
		s.logger.Info("Removed stale workspace file", zap.String("path", path))
	}
	return nil
}
