// Package api exposes the intake service HTTP surface: a liveness
// endpoint, the customer listing, record submission, and admin deletion.
package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/hafizn/kirimbot/internal/database"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request bodies.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewServer wires the intake routes with their dependencies and returns a
// configured echo instance. This is the API composition root; handlers
// stay unaware of the concrete storage adapter.
func NewServer(log *slog.Logger, store database.Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(requestLogger(log))

	h := &Handler{
		log:   log.With("component", "api"),
		store: store,
	}

	e.GET("/", h.Home)
	e.GET("/customers/", h.ListCustomers)
	e.POST("/save_customer/", h.SaveCustomer)
	e.DELETE("/customers/:id", h.DeleteCustomer)
	e.DELETE("/customers/", h.DeleteAllCustomers)

	return e
}

// requestLogger logs end-to-end request duration and response status for
// basic observability.
func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.LogAttrs(c.Request().Context(), slog.LevelInfo, "Handled request",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return nil
		}
	}
}

// Shutdown stops the server, waiting up to the given timeout for inflight
// requests to finish.
func Shutdown(e *echo.Echo, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return e.Shutdown(ctx)
}
