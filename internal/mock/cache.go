package mock

import (
	"context"
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	DetailsOut []byte

	// errors
	GetErr error
	DelErr error

	// call flags
	GetCalled bool
	SetCalled bool
	DelCalled bool
	DelID     db.UUID
}

func (c *Cache) GetVideoDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	c.GetCalled = true
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.DetailsOut, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time) {
	c.SetCalled = true
	c.DetailsOut = data
}

func (c *Cache) DeleteVideoDetails(ctx context.Context, id db.UUID) error {
	c.DelCalled = true
	c.DelID = id
	return c.DelErr
}
