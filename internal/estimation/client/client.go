// Package client issues estimate requests against the pricing API and owns
// the submit → pending → succeed/fail → retry lifecycle around them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
)

// DefaultTimeout bounds a single outbound estimate request.
const DefaultTimeout = 15 * time.Second

// User-facing failure messages. The raw transport error is never shown
// verbatim; the timeout message is distinct so the user knows a retry may
// succeed.
const (
	timeoutMessage        = "Request timed out. Please try again."
	transportMessage      = "Unable to reach the estimation service. Please try again."
	serverFallbackMessage = "Failed to calculate estimate"
)

// Client posts project specifications to the estimate endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Estimate sends the specification and returns either the estimate or a
// typed failure. A non-2xx response uses the server's error string when the
// payload carries one, and keeps any partial details the payload included.
func (c *Client) Estimate(ctx context.Context, spec domain.ProjectSpecification) (*domain.CostEstimate, *Failure) {
	body, err := json.Marshal(spec)
	if err != nil {
		return nil, &Failure{Kind: FailureTransport, Message: transportMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/estimate", bytes.NewReader(body))
	if err != nil {
		return nil, &Failure{Kind: FailureTransport, Message: transportMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, failureFromTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failureFromTransport(err)
	}

	if resp.StatusCode == http.StatusOK {
		var est domain.CostEstimate
		if err := json.Unmarshal(data, &est); err != nil {
			return nil, &Failure{Kind: FailureTransport, Message: transportMessage}
		}
		return &est, nil
	}

	var payload struct {
		Error   string         `json:"error"`
		Details map[string]int `json:"details"`
	}
	_ = json.Unmarshal(data, &payload)

	msg := payload.Error
	if msg == "" {
		msg = serverFallbackMessage
	}
	return nil, &Failure{Kind: FailureServer, Message: msg, PartialDetails: payload.Details}
}

func failureFromTransport(err error) *Failure {
	if isTimeout(err) {
		return &Failure{Kind: FailureTimeout, Message: timeoutMessage}
	}
	return &Failure{Kind: FailureTransport, Message: transportMessage}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
