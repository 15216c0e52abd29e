package memory

import (
	"context"
	"testing"

	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/leadstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture(t *testing.T) {
	store := NewLeadStore()

	lead, err := store.Capture(context.Background(), models.LeadInput{
		Name:    "Ana",
		Phone:   "+84123456789",
		Email:   "ana@example.com",
		Message: "interested in skin care",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Equal(t, "Ana", lead.Name)

	leads := store.Leads()
	require.Len(t, leads, 1)
	assert.Equal(t, lead.ID, leads[0].ID)
}

func TestKind(t *testing.T) {
	assert.Equal(t, leadstore.KindMemory, NewLeadStore().Kind())
}

func TestLeadsReturnsCopy(t *testing.T) {
	store := NewLeadStore()
	_, err := store.Capture(context.Background(), models.LeadInput{Name: "Ana", Phone: "1"})
	require.NoError(t, err)

	leads := store.Leads()
	leads[0].Name = "mutated"
	assert.Equal(t, "Ana", store.Leads()[0].Name)
}
