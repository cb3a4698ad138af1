package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// FFmpegEngine implements the engine boundary with the ffmpeg binary and a
// scratch workspace directory. A single mutex serializes Exec: the engine
// processes one command at a time, so overlapping conversions queue at this
// boundary instead of running in parallel.
type FFmpegEngine struct {
	binPath string
	workDir string
	logger  *zap.Logger

	execMu sync.Mutex
}

func NewFFmpegEngine(binPath, workDir string, logger *zap.Logger) *FFmpegEngine {
	if binPath == "" {
		binPath = "ffmpeg"
	}
	return &FFmpegEngine{
		binPath: binPath,
		workDir: workDir,
		logger:  logger,
	}
}

// Load resolves the ffmpeg binary, probes it once and prepares the
// workspace directory.
func (e *FFmpegEngine) Load(ctx context.Context) error {
	resolved, err := exec.LookPath(e.binPath)
	if err != nil {
		return fmt.Errorf("ffmpeg binary not found: %w", err)
	}
	e.binPath = resolved

	if err := os.MkdirAll(e.workDir, 0755); err != nil {
		return fmt.Errorf("failed to create workspace dir %s: %w", e.workDir, err)
	}

	probe := exec.CommandContext(ctx, e.binPath, "-version")
	out, err := probe.Output()
	if err != nil {
		return fmt.Errorf("ffmpeg probe failed: %w", err)
	}

	version := ""
	if lines := strings.SplitN(string(out), "\n", 2); len(lines) > 0 {
		version = strings.TrimSpace(lines[0])
	}
	e.logger.Info("Engine initialized",
		zap.String("binary", e.binPath),
		zap.String("workspace", e.workDir),
		zap.String("version", version),
	)
	return nil
}

func (e *FFmpegEngine) WriteFile(name string, data []byte) error {
	path, err := e.workspacePath(name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (e *FFmpegEngine) Exec(ctx context.Context, args []string) error {
	e.execMu.Lock()
	defer e.execMu.Unlock()

	// -y: workspace names are caller-unique, never prompt on overwrite
	full := append([]string{"-hide_banner", "-y"}, args...)
	cmd := exec.CommandContext(ctx, e.binPath, full...)
	cmd.Dir = e.workDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	e.logger.Debug("Engine exec", zap.Strings("args", args))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w, stderr: %s", err, tail(stderr.String(), 512))
	}
	return nil
}

func (e *FFmpegEngine) ReadFile(name string) ([]byte, error) {
	path, err := e.workspacePath(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (e *FFmpegEngine) DeleteFile(name string) error {
	path, err := e.workspacePath(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// workspacePath confines workspace names to flat entries inside workDir.
func (e *FFmpegEngine) workspacePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid workspace name: %q", name)
	}
	return filepath.Join(e.workDir, name), nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
