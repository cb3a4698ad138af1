package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Loader initializes exactly one engine instance per process and gates all
// use behind a readiness flag. There is no retry: a failed load leaves the
// service permanently non-ready until a full restart.
type Loader struct {
	engine Loadable
	logger *zap.Logger

	mu        sync.RWMutex
	ready     bool
	attempted bool
}

func NewLoader(engine Loadable, logger *zap.Logger) *Loader {
	return &Loader{
		engine: engine,
		logger: logger,
	}
}

// Load runs the engine's one-time initialization. Only the first call does
// anything; later calls return without touching the engine again.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.attempted {
		l.mu.Unlock()
		return nil
	}
	l.attempted = true
	l.mu.Unlock()

	if err := l.engine.Load(ctx); err != nil {
		l.logger.Error("Engine load failed, conversions disabled", zap.Error(err))
		return err
	}

	l.mu.Lock()
	l.ready = true
	l.mu.Unlock()
	return nil
}

func (l *Loader) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}

// Engine returns the underlying instance. Callers must gate on Ready.
func (l *Loader) Engine() Engine {
	return l.engine
}
