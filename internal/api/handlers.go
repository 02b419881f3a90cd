package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hafizn/kirimbot/internal/database"
)

// Handler carries the dependencies shared by all intake endpoints.
type Handler struct {
	log   *slog.Logger
	store database.Store
}

// saveCustomerRequest is the submission body. Normalization happens on
// the client side before submission; this layer only checks presence.
type saveCustomerRequest struct {
	Name         string `json:"name"          validate:"required"`
	Phone        string `json:"phone"         validate:"required"`
	Address      string `json:"address"       validate:"required"`
	DeliveryDate string `json:"delivery_date" validate:"required"`
}

// Home responds with a static liveness payload.
func (h *Handler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Chatbot API aktif dan siap menerima data!",
	})
}

// ListCustomers returns all stored records as a JSON array, newest first.
func (h *Handler) ListCustomers(c echo.Context) error {
	customers, err := h.store.ListCustomers(c.Request().Context())
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to list customers", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"detail": fmt.Sprintf("database error: %v", err),
		})
	}

	if customers == nil {
		customers = []database.Customer{}
	}
	return c.JSON(http.StatusOK, customers)
}

// SaveCustomer validates field presence and inserts a new record.
func (h *Handler) SaveCustomer(c echo.Context) error {
	req := new(saveCustomerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"detail": fmt.Sprintf("invalid request body: %v", err),
		})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"detail": fmt.Sprintf("missing required field: %v", err),
		})
	}

	customer := &database.Customer{
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		DeliveryDate: req.DeliveryDate,
	}
	if err := h.store.SaveCustomer(c.Request().Context(), customer); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to save customer", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"detail": fmt.Sprintf("database error: %v", err),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Data berhasil disimpan ke database!",
		"id":      customer.ID,
	})
}

// DeleteCustomer removes one record. Missing IDs are treated as success.
func (h *Handler) DeleteCustomer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"detail": fmt.Sprintf("invalid customer id: %v", err),
		})
	}

	if err := h.store.DeleteCustomer(c.Request().Context(), id); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to delete customer", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"detail": fmt.Sprintf("database error: %v", err),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Data dengan ID %d berhasil dihapus.", id),
	})
}

// DeleteAllCustomers removes every stored record.
func (h *Handler) DeleteAllCustomers(c echo.Context) error {
	if err := h.store.DeleteAllCustomers(c.Request().Context()); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to delete all customers", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"detail": fmt.Sprintf("database error: %v", err),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Semua data berhasil dihapus.",
	})
}
