package engine

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

type fakeLoadable struct {
	loadErr   error
	loadCalls int
}

func (f *fakeLoadable) Load(ctx context.Context) error {
	f.loadCalls++
	return f.loadErr
}

func (f *fakeLoadable) WriteFile(name string, data []byte) error { return nil }
func (f *fakeLoadable) Exec(ctx context.Context, args []string) error {
	return nil
}
func (f *fakeLoadable) ReadFile(name string) ([]byte, error) { return nil, nil }
func (f *fakeLoadable) DeleteFile(name string) error         { return nil }

func TestLoader_ReadyAfterSuccessfulLoad(t *testing.T) {
	eng := &fakeLoadable{}
	loader := NewLoader(eng, zaptest.NewLogger(t))

	if loader.Ready() {
		t.Fatal("Expected loader to start not ready")
	}
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loader.Ready() {
		t.Error("Expected loader to be ready")
	}
	if loader.Engine() == nil {
		t.Error("Expected engine instance")
	}
}

func TestLoader_FailedLoadStaysNotReady(t *testing.T) {
	eng := &fakeLoadable{loadErr: errors.New("no binary")}
	loader := NewLoader(eng, zaptest.NewLogger(t))

	if err := loader.Load(context.Background()); err == nil {
		t.Fatal("Expected load error")
	}
	if loader.Ready() {
		t.Error("Expected loader to stay not ready after failed load")
	}

	// No retry policy: a second Load must not touch the engine again.
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Second Load should be a no-op, got: %v", err)
	}
	if eng.loadCalls != 1 {
		t.Errorf("Expected exactly one load attempt, got %d", eng.loadCalls)
	}
	if loader.Ready() {
		t.Error("Expected loader to remain permanently not ready")
	}
}

func TestLoader_LoadOnlyOnce(t *testing.T) {
	eng := &fakeLoadable{}
	loader := NewLoader(eng, zaptest.NewLogger(t))

	loader.Load(context.Background())
	loader.Load(context.Background())

	if eng.loadCalls != 1 {
		t.Errorf("Expected one load call, got %d", eng.loadCalls)
	}
}
