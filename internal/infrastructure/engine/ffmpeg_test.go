package engine

import (
	"bytes"
	"testing"

	"go.uber.org/zap/zaptest"
)

func newTestEngine(t *testing.T) *FFmpegEngine {
	return NewFFmpegEngine("ffmpeg", t.TempDir(), zaptest.NewLogger(t))
}

func TestFFmpegEngine_WorkspaceRoundTrip(t *testing.T) {
	eng := newTestEngine(t)

	data := []byte("input bytes")
	if err := eng.WriteFile("abc.png", data); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := eng.ReadFile("abc.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Expected %q, got %q", data, got)
	}

	if err := eng.DeleteFile("abc.png"); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if _, err := eng.ReadFile("abc.png"); err == nil {
		t.Error("Expected read of deleted workspace entry to fail")
	}
}

func TestFFmpegEngine_DeleteMissingFails(t *testing.T) {
	eng := newTestEngine(t)
	if err := eng.DeleteFile("missing.png"); err == nil {
		t.Error("Expected error deleting missing workspace entry")
	}
}

func TestFFmpegEngine_RejectsNonFlatNames(t *testing.T) {
	eng := newTestEngine(t)

	for _, name := range []string{"", "../escape.png", "sub/dir.png", "/abs.png"} {
		if err := eng.WriteFile(name, []byte("x")); err == nil {
			t.Errorf("Expected WriteFile(%q) to be rejected", name)
		}
		if _, err := eng.ReadFile(name); err == nil {
			t.Errorf("Expected ReadFile(%q) to be rejected", name)
		}
		if err := eng.DeleteFile(name); err == nil {
			t.Errorf("Expected DeleteFile(%q) to be rejected", name)
		}
	}
}
