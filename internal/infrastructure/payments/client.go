package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/pkg/logger"
)

// IntentRequest is the provider payload for creating a payment intent
type IntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	OrderRef string `json:"order_ref"`
}

// Intent is the provider response for a created payment intent
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// Provider creates payment intents against the external payment service
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// Client is an HTTP client for the payment provider API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a payment provider client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateIntent creates a payment intent with the provider
func (c *Client) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intent request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build intent request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error(ctx, "payment provider unreachable", zap.Error(err))
		return nil, domainerrors.ErrPaymentFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error(ctx, "payment provider rejected intent",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, domainerrors.ErrPaymentFailed
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent response: %w", err)
	}
	if intent.ID == "" {
		return nil, domainerrors.ErrPaymentFailed
	}
	return &intent, nil
}
