// Package purchasing implements the outbound adapter for the purchasing
// system. It translates reorder submissions into HTTP calls and maps the
// downstream API's error responses to domain errors.
package purchasing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/platform/httpclient"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PurchasingGateway = (*Client)(nil)
	_ ports.HealthChecker     = (*Client)(nil)
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// Client is the outbound adapter for the purchasing system. It implements
// [ports.PurchasingGateway] on top of [httpclient.Client], which provides
// circuit breaking, retry with exponential backoff, and OpenTelemetry
// tracing for every outbound call.
type Client struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the purchasing
// API root (e.g. "https://purchasing.example.com").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{client: client, logger: logger}
}

// reorderRequest is the wire format for POST /api/v1/reorders.
type reorderRequest struct {
	PartID    string `json:"part_id"`
	Warehouse string `json:"warehouse"`
	Quantity  int    `json:"quantity"`
}

// SubmitReorder sends a POST /api/v1/reorders asking purchasing to buy
// quantity units of the part for the given warehouse. Returns
// [domain.ErrUnavailable] when the purchasing system cannot be reached or
// answers with a server error.
func (c *Client) SubmitReorder(ctx context.Context, partID uuid.UUID, warehouse string, quantity int) error {
	body, err := json.Marshal(reorderRequest{
		PartID:    partID.String(),
		Warehouse: warehouse,
		Quantity:  quantity,
	})
	if err != nil {
		return fmt.Errorf("marshaling reorder request: %w", err)
	}

	url := c.client.BaseURL() + "/api/v1/reorders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating reorder request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status. Translate the response when
		// one is available.
		if resp != nil {
			defer c.closeBody(ctx, resp)
			if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusCreated {
				return translateHTTPError(resp)
			}
		}
		c.logger.ErrorContext(ctx, "reorder request failed",
			slog.String("part_id", partID.String()),
			slog.String("warehouse", warehouse),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("submitting reorder: %w: %w", domain.ErrUnavailable, err)
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusCreated {
		c.logger.ErrorContext(ctx, "unexpected reorder status",
			slog.String("part_id", partID.String()),
			slog.Int("status", resp.StatusCode),
		)
		return translateHTTPError(resp)
	}

	return nil
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// Name returns the identifier used when this component is registered with a
// health registry. It matches the service name the underlying
// [httpclient.Client] uses for tracing and metrics.
func (c *Client) Name() string {
	return c.client.Name()
}

// HealthCheck reports the purchasing system's availability based on the
// underlying client's circuit breaker state. No network call is made.
//
// This reports downstream status, not service readiness. The service itself
// stays ready while purchasing is failing; it returns domain errors instead.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

// problemDetail represents an RFC 9457 Problem Details response from the
// purchasing API.
type problemDetail struct {
	Detail string `json:"detail"`
}

// translateHTTPError maps an HTTP error response to a domain error. It
// parses the response body as Problem Details when the content type is
// application/problem+json, using the detail field for context.
func translateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
	}
}

// parseProblemDetail attempts to read and parse a Problem Details body from
// the response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
