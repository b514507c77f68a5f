// Package paypal is a thin client for the PayPal REST checkout flow:
// client-credentials token exchange, order creation, and order capture.
// It implements the deposit domain's Gateway port.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"bundle-backend/internal/domain/deposit"

	"github.com/google/uuid"
)

var (
	// ErrNotConfigured: credentials absent; surfaced before any network call.
	ErrNotConfigured = errors.New("paypal credentials are not configured")
	ErrNoApprovalURL = errors.New("no approval url in paypal order response")
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	ReturnURL    string
	CancelURL    string
	BrandName    string
}

type Client struct {
	cfg        Config
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.BrandName == "" {
		cfg.BrandName = "Bundle"
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ deposit.Gateway = (*Client)(nil)

func (c *Client) configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached client-credentials token, refreshing when it is
// within a minute of expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	if !c.configured() {
		return "", ErrNotConfigured
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal token request: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", apiError("token", resp.StatusCode, body)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("paypal token decode: %w", err)
	}
	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

type orderLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	Amount      orderAmount `json:"amount"`
	Description string      `json:"description,omitempty"`
	CustomID    string      `json:"custom_id,omitempty"`
	Payments    *struct {
		Captures []struct {
			ID     string      `json:"id"`
			Amount orderAmount `json:"amount"`
		} `json:"captures"`
	} `json:"payments,omitempty"`
}

type orderResponse struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
	Links         []orderLink    `json:"links"`
}

// CreateOrder opens a CAPTURE-intent checkout order and returns the id plus
// the approval URL the payer must be redirected to.
func (c *Client) CreateOrder(ctx context.Context, in deposit.CreateOrderInput) (*deposit.Order, error) {
	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"amount": orderAmount{
				CurrencyCode: in.Currency,
				Value:        fmt.Sprintf("%.2f", in.Amount),
			},
			"description": in.Description,
			"custom_id":   in.CustomID,
		}},
		"application_context": map[string]any{
			"brand_name":          c.cfg.BrandName,
			"landing_page":        "NO_PREFERENCE",
			"user_action":         "PAY_NOW",
			"return_url":          c.cfg.ReturnURL,
			"cancel_url":          c.cfg.CancelURL,
			"shipping_preference": "NO_SHIPPING",
		},
	}

	var order orderResponse
	if err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", payload, &order); err != nil {
		return nil, err
	}
	for _, l := range order.Links {
		if l.Rel == "approve" {
			return &deposit.Order{OrderID: order.ID, ApprovalURL: l.Href}, nil
		}
	}
	return nil, ErrNoApprovalURL
}

// CaptureOrder captures an approved order and returns the captured amount
// as reported by the gateway.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*deposit.CaptureResult, error) {
	var capture orderResponse
	path := "/v2/checkout/orders/" + orderID + "/capture"
	if err := c.do(ctx, http.MethodPost, path, struct{}{}, &capture); err != nil {
		return nil, err
	}

	out := &deposit.CaptureResult{PaymentID: capture.ID, Status: capture.Status}
	if len(capture.PurchaseUnits) > 0 {
		pu := capture.PurchaseUnits[0]
		out.CustomID = pu.CustomID
		if pu.Payments != nil && len(pu.Payments.Captures) > 0 {
			cap0 := pu.Payments.Captures[0]
			if cap0.ID != "" {
				out.PaymentID = cap0.ID
			}
			amt, err := strconv.ParseFloat(cap0.Amount.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("paypal capture amount %q: %w", cap0.Amount.Value, err)
			}
			out.Amount = amt
		}
	}
	return out, nil
}

// GetOrder fetches order details; used to recover the custom id when a
// callback arrives without context.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*deposit.CaptureResult, error) {
	var order orderResponse
	if err := c.do(ctx, http.MethodGet, "/v2/checkout/orders/"+orderID, nil, &order); err != nil {
		return nil, err
	}
	out := &deposit.CaptureResult{PaymentID: order.ID, Status: order.Status}
	if len(order.PurchaseUnits) > 0 {
		out.CustomID = order.PurchaseUnits[0].CustomID
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	// Fresh id per call; capture is not naturally idempotent on the wire.
	req.Header.Set("PayPal-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paypal %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(path, resp.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("paypal %s decode: %w", path, err)
		}
	}
	return nil
}

type errBody struct {
	Message string `json:"message"`
	Details []struct {
		Description string `json:"description"`
	} `json:"details"`
	ErrorDescription string `json:"error_description"`
}

func apiError(what string, code int, raw []byte) error {
	var eb errBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Message
	if len(eb.Details) > 0 && eb.Details[0].Description != "" {
		msg = eb.Details[0].Description
	}
	if msg == "" {
		msg = eb.ErrorDescription
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("paypal %s: %s (status %d)", what, msg, code)
}
