package server

import (
	"net/http"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/minhng-ct/commerce-bot/internal/config"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/checkout"
	"github.com/minhng-ct/commerce-bot/internal/usecase"
)

type Controller interface {
	GetCatalog(c echo.Context) error
	Recommend(c echo.Context) error
	CaptureLead(c echo.Context) error
	CartAdd(c echo.Context) error
	CartGet(c echo.Context) error
	CreateCheckout(c echo.Context) error
	ProcessMessage(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	commerce usecase.CommerceUsecase
	chat     usecase.ChatUsecase
	checkout checkout.Client

	successURL string
	cancelURL  string
}

func NewHandler(
	conf *config.Config,
	commerce usecase.CommerceUsecase,
	chat usecase.ChatUsecase,
	checkoutClient checkout.Client,
) Controller {
	return &controller{
		commerce:   commerce,
		chat:       chat,
		checkout:   checkoutClient,
		successURL: conf.Checkout.SuccessURL,
		cancelURL:  conf.Checkout.CancelURL,
	}
}

func (h *controller) GetCatalog(c echo.Context) error {
	snap := h.commerce.GetCatalog(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{
		"ok":       true,
		"count":    snap.Count,
		"products": snap.Products,
	})
}

type recommendRequest struct {
	Query string `json:"query"`
}

func (h *controller) Recommend(c echo.Context) error {
	var req recommendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	results, err := h.commerce.Recommend(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"query":   req.Query,
		"results": results,
	})
}

func (h *controller) CaptureLead(c echo.Context) error {
	var in models.LeadInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	receipt, err := h.commerce.CaptureLead(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":    true,
		"saved": true,
		"db":    receipt.Backend,
		"id":    receipt.ID,
	})
}

type cartAddRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

func (h *controller) CartAdd(c echo.Context) error {
	var req cartAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	snapshot, err := h.commerce.CartAdd(c.Request().Context(), req.SessionID, req.ProductID, req.Qty)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":   true,
		"cart": snapshot,
	})
}

func (h *controller) CartGet(c echo.Context) error {
	snapshot := h.commerce.CartGet(c.Request().Context(), c.Param("sessionId"))
	return c.JSON(http.StatusOK, echo.Map{
		"ok":   true,
		"cart": snapshot,
	})
}

type checkoutRequest struct {
	Items      []models.CheckoutItem `json:"items"`
	SuccessURL string                `json:"successUrl"`
	CancelURL  string                `json:"cancelUrl"`
}

func (h *controller) CreateCheckout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Items) == 0 {
		return models.NewValidationError("items required")
	}

	ctx := c.Request().Context()
	params := checkout.CreateSessionParams{
		LineItems:  h.commerce.BuildCheckoutInputs(req.Items),
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	}
	if params.SuccessURL == "" {
		params.SuccessURL = h.successURL
	}
	if params.CancelURL == "" {
		params.CancelURL = h.cancelURL
	}

	session, err := h.checkout.CreateSession(ctx, params)
	if err != nil {
		if err == checkout.ErrDisabled {
			return err
		}
		log.Errorw(ctx, "checkout session creation failed", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "checkout session could not be created")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":  true,
		"id":  session.ID,
		"url": session.URL,
	})
}

func (h *controller) ProcessMessage(c echo.Context) error {
	var msg models.InboundMessage
	if err := c.Bind(&msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.chat.HandleMessage(c.Request().Context(), msg)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":    true,
		"reply": reply,
	})
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "commerce-bot",
	})
}
