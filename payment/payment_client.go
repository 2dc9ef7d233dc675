package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=payment_client.go -destination=mocks/payment_client_mock.go -package=mocks

// Intent statuses as reported by the provider.
const (
	IntentStatusRequiresPayment = "requires_payment"
	IntentStatusSucceeded       = "succeeded"
	IntentStatusFailed          = "failed"
	IntentStatusCanceled        = "canceled"
)

// Intent is the provider's handle for one in-progress charge attempt.
type Intent struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
}

var ErrProviderUnavailable = errors.New("payment provider unavailable")

type PaymentClient interface {
	CreateIntent(ctx context.Context, amount int64, currency, idempotencyKey string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
	CancelIntent(ctx context.Context, id string) error
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient builds a provider client. Calls are bounded by a 10s timeout
// so a stalled provider never hangs a booking request; the booking simply
// stays pending until the expiry sweep.
func NewClient(baseURL, apiKey string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// CreateIntent opens a charge attempt with the provider. The idempotency
// key makes retries of the same booking return the original intent
// instead of opening a second charge path.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency, idempotencyKey string) (*Intent, error) {
	intentURL, err := c.getURL("v1", "payment_intents")

	if err != nil {
		return nil, err
	}

	formValues := url.Values{
		"amount":   {strconv.FormatInt(amount, 10)},
		"currency": {currency},
	}
	req, err := http.NewRequestWithContext(ctx, "POST", intentURL, strings.NewReader(formValues.Encode()))

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	var intent Intent

	if err := c.do(req, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

func (c *Client) GetIntent(ctx context.Context, id string) (*Intent, error) {
	if len(strings.TrimSpace(id)) == 0 {
		return nil, errors.New("intent id cannot be empty")
	}

	intentURL, err := c.getURL("v1", "payment_intents", id)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", intentURL, http.NoBody)

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	var intent Intent

	if err := c.do(req, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

func (c *Client) CancelIntent(ctx context.Context, id string) error {
	if len(strings.TrimSpace(id)) == 0 {
		return errors.New("intent id cannot be empty")
	}

	cancelURL, err := c.getURL("v1", "payment_intents", id, "cancel")

	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cancelURL, http.NoBody)

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return fmt.Errorf("%w: request failed with status %d; also failed reading body: %w", ErrProviderUnavailable, res.StatusCode, readErr)
		}
		return fmt.Errorf("%w: request failed with status '%v' and body:\n%v", ErrProviderUnavailable, res.StatusCode, string(bodyBytes))
	}

	if out == nil {
		return nil
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed reading body: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
