// Package intake gives clients access to the stored record set, either
// through the intake API or directly through storage. Record retrieval is
// modeled as a Source capability with a remote and a direct
// implementation plus a fallback strategy combining the two.
package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hafizn/kirimbot/internal/database"
)

// Submitter persists one completed record.
type Submitter interface {
	Submit(ctx context.Context, customer database.Customer) error
}

// StatusError reports a non-success response from the intake API,
// carrying the raw status code and response detail for the caller to
// surface. There is no automatic retry.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("intake API returned status %d: %s", e.Code, e.Detail)
}

// Client talks to the intake API over HTTP. Every call is bounded by the
// configured timeout; failures surface to the caller with state intact.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates an intake API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "intake_client"),
	}
}

// Submit posts one record to the intake API.
func (c *Client) Submit(ctx context.Context, customer database.Customer) error {
	payload, err := json.Marshal(map[string]string{
		"name":          customer.Name,
		"phone":         customer.Phone,
		"address":       customer.Address,
		"delivery_date": customer.DeliveryDate,
	})
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/save_customer/", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "Submit request failed", "error", err)
		return fmt.Errorf("submit customer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}

	c.log.InfoContext(ctx, "Customer submitted", "phone", customer.Phone)
	return nil
}

// Delete removes one record by id through the intake API.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/customers/%d", id))
}

// DeleteAll removes every stored record through the intake API.
func (c *Client) DeleteAll(ctx context.Context) error {
	return c.deleteRequest(ctx, "/customers/")
}

func (c *Client) deleteRequest(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "Delete request failed", "path", path, "error", err)
		return fmt.Errorf("delete %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}

	return nil
}

// List fetches all stored records from the intake API, newest first.
func (c *Client) List(ctx context.Context) ([]database.Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/customers/", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}

	var customers []database.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}

	return customers, nil
}
