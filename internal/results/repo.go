package results

import (
	"context"
	"errors"
)

// ErrStorage marks failures of the underlying store. Callers show a generic
// message instead of the wrapped error.
var ErrStorage = errors.New("storage error")

type Store interface {
	Insert(ctx context.Context, rec Record) (Row, error)
	// Recent returns up to limit rows, newest first.
	Recent(ctx context.Context, limit int) ([]Summary, error)
}
