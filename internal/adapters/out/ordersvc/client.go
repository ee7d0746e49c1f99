// Package ordersvc implements the outbound status-sync contract to the
// external order service. One PATCH per relevant transition, bounded by a
// short timeout; the caller treats any failure as non-fatal.
package ordersvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shopqueue/internal/core/ports"
)

// DefaultTimeout bounds a single notification attempt.
const DefaultTimeout = 5 * time.Second

// Client notifies the external order service about queue status changes.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a notifier client for the order service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewClientWithHTTPClient creates a notifier client with a caller-supplied
// HTTP client, used by tests to control transport and timeouts.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type statusPatch struct {
	Status string `json:"status"`
}

// NotifyStatusChange issues PATCH /ordens_servico/{serviceOrderID}/status
// with the mapped status string. The path is the order service's existing
// wire contract. A non-2xx response is reported as an error; the decision to
// swallow it belongs to the caller.
func (c *Client) NotifyStatusChange(ctx context.Context, serviceOrderID int64, status ports.ExternalStatus) error {
	body, err := json.Marshal(statusPatch{Status: string(status)})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/ordens_servico/%d/status", c.baseURL, serviceOrderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order service returned status %d for service order %d",
			resp.StatusCode, serviceOrderID)
	}

	return nil
}
