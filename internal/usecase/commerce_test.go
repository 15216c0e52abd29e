package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/minhng-ct/commerce-bot/internal/cart"
	"github.com/minhng-ct/commerce-bot/internal/catalog"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/leadstore"
	"github.com/minhng-ct/commerce-bot/internal/repo/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Index {
	return catalog.New([]models.Product{
		{ID: "p1", Name: "Facial Serum", Category: "Skin Care", Tags: []string{"facial", "energy"}, Price: 25, Currency: "USD"},
		{ID: "p2", Name: "Daily Multivitamin", Category: "Nutrition", Tags: []string{"energy"}, Price: 32.5, Currency: "USD"},
		{ID: "p3", Name: "Body Lotion", Category: "Skin Care", Tags: []string{"skin"}, Price: 18.9, Currency: "USD"},
	})
}

type failingStore struct{}

func (failingStore) Capture(context.Context, models.LeadInput) (*models.Lead, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Kind() string { return leadstore.KindMongo }

func TestGetCatalog(t *testing.T) {
	uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), memory.NewLeadStore())

	snap := uc.GetCatalog(context.Background())
	assert.Equal(t, 3, snap.Count)
	require.Len(t, snap.Products, 3)
	assert.Equal(t, "p1", snap.Products[0].ID)
}

func TestRecommend(t *testing.T) {
	uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), memory.NewLeadStore())

	t.Run("matches by tag", func(t *testing.T) {
		products, err := uc.Recommend(context.Background(), "facial")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].ID)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := uc.Recommend(context.Background(), "   ")
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("no matches yields empty list", func(t *testing.T) {
		products, err := uc.Recommend(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestCaptureLead(t *testing.T) {
	t.Run("success returns backend receipt", func(t *testing.T) {
		store := memory.NewLeadStore()
		uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), store)

		receipt, err := uc.CaptureLead(context.Background(), models.LeadInput{
			Name:  "Ana",
			Phone: "+84123456789",
		})
		require.NoError(t, err)
		assert.Equal(t, leadstore.KindMemory, receipt.Backend)
		assert.NotEmpty(t, receipt.ID)
		assert.Len(t, store.Leads(), 1)
	})

	t.Run("missing phone writes nothing", func(t *testing.T) {
		store := memory.NewLeadStore()
		uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), store)

		_, err := uc.CaptureLead(context.Background(), models.LeadInput{Name: "Ana"})
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Empty(t, store.Leads())
	})

	t.Run("whitespace-only name is missing", func(t *testing.T) {
		uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), memory.NewLeadStore())

		_, err := uc.CaptureLead(context.Background(), models.LeadInput{Name: "  ", Phone: "1"})
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("store failure is wrapped with backend", func(t *testing.T) {
		uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), failingStore{})

		_, err := uc.CaptureLead(context.Background(), models.LeadInput{Name: "Ana", Phone: "1"})
		var serr *models.StoreError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, leadstore.KindMongo, serr.Backend)
	})
}

func TestCartAdd(t *testing.T) {
	uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), memory.NewLeadStore())

	t.Run("missing ids are rejected", func(t *testing.T) {
		_, err := uc.CartAdd(context.Background(), "", "p1", 1)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)

		_, err = uc.CartAdd(context.Background(), "s1", "", 1)
		require.ErrorAs(t, err, &verr)
	})

	t.Run("adds and reads back", func(t *testing.T) {
		items, err := uc.CartAdd(context.Background(), "s1", "p1", 2)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"p1": 2}, items)
		assert.Equal(t, map[string]int{"p1": 2}, uc.CartGet(context.Background(), "s1"))
	})
}

func TestBuildCheckoutInputs(t *testing.T) {
	uc := NewCommerceUsecase(testCatalog(), cart.NewLedger(), memory.NewLeadStore())

	t.Run("resolves catalog products in minor units", func(t *testing.T) {
		lines := uc.BuildCheckoutInputs([]models.CheckoutItem{
			{ProductID: "p1", Quantity: 2},
		})
		require.Len(t, lines, 1)
		assert.Equal(t, models.CheckoutLineItem{
			DisplayName: "Facial Serum",
			UnitAmount:  2500,
			Currency:    "usd",
			Quantity:    2,
		}, lines[0])
	})

	t.Run("rounds fractional prices", func(t *testing.T) {
		lines := uc.BuildCheckoutInputs([]models.CheckoutItem{
			{ProductID: "p3", Quantity: 1},
		})
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1890), lines[0].UnitAmount)
	})

	t.Run("unknown product falls back to supplied fields", func(t *testing.T) {
		lines := uc.BuildCheckoutInputs([]models.CheckoutItem{
			{ProductID: "nope", Quantity: 1, Name: "Custom Item", Price: 9.99},
		})
		require.Len(t, lines, 1)
		assert.Equal(t, "Custom Item", lines[0].DisplayName)
		assert.Equal(t, int64(999), lines[0].UnitAmount)
		assert.Equal(t, "usd", lines[0].Currency)
	})

	t.Run("non-positive quantity counts as one", func(t *testing.T) {
		lines := uc.BuildCheckoutInputs([]models.CheckoutItem{
			{ProductID: "p1", Quantity: 0},
		})
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}
