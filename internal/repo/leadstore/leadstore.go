package leadstore

import (
	"context"

	"github.com/minhng-ct/commerce-bot/internal/models"
)

// Backend kinds reported to callers for observability. They never affect
// behavior.
const (
	KindMongo    = "mongo"
	KindPostgres = "postgres"
	KindMemory   = "memory"
)

// Store is the append-only sink for captured leads. Implementations
// assign CreatedAt server-side, persist atomically and return a
// backend-assigned id opaque to the caller. Captures from different
// sessions are independent writes and must not interfere.
type Store interface {
	Capture(ctx context.Context, in models.LeadInput) (*models.Lead, error)
	Kind() string
}
