package usecase

import (
	"context"
	"math"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/minhng-ct/commerce-bot/internal/cart"
	"github.com/minhng-ct/commerce-bot/internal/catalog"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/leadstore"
)

// recommendLimit caps direct recommendation queries.
const recommendLimit = 6

// CommerceUsecase is the single entry surface every channel adapter and
// the HTTP API talk to.
type CommerceUsecase interface {
	GetCatalog(ctx context.Context) *models.CatalogSnapshot
	Recommend(ctx context.Context, query string) ([]models.Product, error)
	CaptureLead(ctx context.Context, in models.LeadInput) (*models.LeadReceipt, error)
	CartAdd(ctx context.Context, sessionID, productID string, qty int) (map[string]int, error)
	CartGet(ctx context.Context, sessionID string) map[string]int
	BuildCheckoutInputs(items []models.CheckoutItem) []models.CheckoutLineItem
}

type commerceUsecase struct {
	catalog *catalog.Index
	carts   *cart.Ledger
	leads   leadstore.Store
}

func NewCommerceUsecase(
	ix *catalog.Index,
	carts *cart.Ledger,
	leads leadstore.Store,
) CommerceUsecase {
	return &commerceUsecase{
		catalog: ix,
		carts:   carts,
		leads:   leads,
	}
}

func (uc *commerceUsecase) GetCatalog(_ context.Context) *models.CatalogSnapshot {
	products := uc.catalog.Products()
	return &models.CatalogSnapshot{
		Count:    len(products),
		Products: products,
	}
}

func (uc *commerceUsecase) Recommend(_ context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("missing query")
	}
	return uc.catalog.Match(query, recommendLimit), nil
}

func (uc *commerceUsecase) CaptureLead(ctx context.Context, in models.LeadInput) (*models.LeadReceipt, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Phone == "" {
		return nil, models.NewValidationError("missing name or phone")
	}

	lead, err := uc.leads.Capture(ctx, in)
	if err != nil {
		log.Errorw(ctx, "lead capture failed", "backend", uc.leads.Kind(), "error", err)
		return nil, &models.StoreError{Backend: uc.leads.Kind(), Err: err}
	}

	log.Infow(ctx, "lead captured", "backend", uc.leads.Kind(), "lead_id", lead.ID)
	return &models.LeadReceipt{
		ID:      lead.ID,
		Backend: uc.leads.Kind(),
	}, nil
}

func (uc *commerceUsecase) CartAdd(_ context.Context, sessionID, productID string, qty int) (map[string]int, error) {
	if sessionID == "" || productID == "" {
		return nil, models.NewValidationError("missing sessionId or productId")
	}
	return uc.carts.Add(sessionID, productID, qty), nil
}

func (uc *commerceUsecase) CartGet(_ context.Context, sessionID string) map[string]int {
	return uc.carts.Get(sessionID)
}

// BuildCheckoutInputs resolves each item against the catalog. An unknown
// product id falls back to the caller-supplied name and price instead of
// failing the whole batch.
func (uc *commerceUsecase) BuildCheckoutInputs(items []models.CheckoutItem) []models.CheckoutLineItem {
	lines := make([]models.CheckoutLineItem, 0, len(items))
	for _, it := range items {
		name := it.Name
		price := it.Price
		currency := "usd"
		if p, ok := uc.catalog.FindByID(it.ProductID); ok {
			name = p.Name
			price = p.Price
			currency = strings.ToLower(p.Currency)
		}

		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}

		lines = append(lines, models.CheckoutLineItem{
			DisplayName: name,
			UnitAmount:  int64(math.Round(price * 100)),
			Currency:    currency,
			Quantity:    qty,
		})
	}
	return lines
}
