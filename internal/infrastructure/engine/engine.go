// Package engine wraps the external media transcoding runtime behind a
// virtual-workspace boundary: named byte buffers plus command execution.
// The orchestrator treats the runtime as a black box and only ever talks
// to it through this interface.
package engine

import "context"

type Engine interface {
	WriteFile(name string, data []byte) error
	Exec(ctx context.Context, args []string) error
	ReadFile(name string) ([]byte, error)
	DeleteFile(name string) error
}

// Loadable is an engine that needs one-time initialization before use.
type Loadable interface {
	Engine
	Load(ctx context.Context) error
}
