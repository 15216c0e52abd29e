package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhng-ct/commerce-bot/internal/config"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/pkg/util"

	"github.com/go-resty/resty/v2"
)

// ErrDisabled is returned when no checkout provider is configured.
var ErrDisabled = errors.New("checkout provider is not configured")

// Client creates hosted payment sessions with the external processor.
// The processor's internals are out of scope; this client only ships the
// normalized line items and redirect targets and hands back the session
// reference.
type Client interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
}

type CreateSessionParams struct {
	LineItems  []models.CheckoutLineItem `json:"line_items"`
	SuccessURL string                    `json:"success_url"`
	CancelURL  string                    `json:"cancel_url"`
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config) Client {
	if cfg.Checkout.BaseURL == "" {
		return &disabledClient{}
	}

	http := util.NewRestyClient().
		SetBaseURL(cfg.Checkout.BaseURL).
		SetAuthToken(cfg.Checkout.APIKey)

	return &client{http: http}
}

func (c *client) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	var session Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(params).
		SetResult(&session).
		Post("/v1/checkout/sessions")
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create checkout session: provider returned status %d", resp.StatusCode())
	}
	return &session, nil
}

type disabledClient struct{}

func (d *disabledClient) CreateSession(context.Context, CreateSessionParams) (*Session, error) {
	return nil, ErrDisabled
}
