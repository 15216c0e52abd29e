package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/checkout"
)

// errorHandler renders every failure as the {ok:false, error} envelope.
// Validation failures are explicit; backend failures stay generic so no
// internal detail leaks.
func errorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var ve *models.ValidationError
		var se *models.StoreError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			code = http.StatusBadRequest
			msg = ve.Message
		case errors.As(err, &se):
			code = http.StatusBadGateway
			msg = "could not save lead, please retry"
			log.Errorw("lead store failure", "backend", se.Backend, "error", se.Err)
		case errors.Is(err, checkout.ErrDisabled):
			code = http.StatusServiceUnavailable
			msg = "checkout is not available"
		case errors.As(err, &he):
			code = he.Code
			msg = fmt.Sprint(he.Message)
		default:
			log.Errorw("unhandled request error", "error", err)
		}

		if err := c.JSON(code, echo.Map{"ok": false, "error": msg}); err != nil {
			log.Errorw("could not write error response", "code", code, "error", err)
		}
	}
}
