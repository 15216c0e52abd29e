package memory

import (
	"context"
	"sync"
	"time"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/google/uuid"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/leadstore"
)

var _ leadstore.Store = (*LeadStore)(nil)

// LeadStore is the degraded fallback backend: captures always succeed and
// are kept in process memory only. Every capture is logged so the record
// at least appears in the log stream.
type LeadStore struct {
	log *logger.Logger

	mu    sync.Mutex
	leads []models.Lead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{
		log: logger.MustNamed("leadstore"),
	}
}

func (s *LeadStore) Capture(_ context.Context, in models.LeadInput) (*models.Lead, error) {
	lead := models.Lead{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.leads = append(s.leads, lead)
	s.mu.Unlock()

	s.log.Infow("lead captured in memory store",
		"id", lead.ID, "name", lead.Name, "phone", lead.Phone)
	return &lead, nil
}

func (s *LeadStore) Kind() string {
	return leadstore.KindMemory
}

// Leads returns a copy of everything captured so far.
func (s *LeadStore) Leads() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}
