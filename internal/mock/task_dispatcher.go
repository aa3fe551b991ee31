package mock

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

// Dispatcher implements task dispatching for tests.
type Dispatcher struct {
	ProcessCalled bool
	ProcessIDs    []db.UUID
	ProcessErr    error
}

func (m *Dispatcher) EnqueueProcessVideo(ctx context.Context, id db.UUID) error {
	m.ProcessCalled = true
	m.ProcessIDs = append(m.ProcessIDs, id)
	return m.ProcessErr
}
