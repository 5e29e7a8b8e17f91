package sendit

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

const (
	// tokenValidity is how long a login token stays usable. Sendit does not
	// return an expiry, the documented validity is one hour; refresh a minute
	// early to never send a dying token.
	tokenValidity     = time.Hour
	tokenRefreshSlack = time.Minute

	requestTimeout = 15 * time.Second

	// transport-level retries only; business fallbacks live in the
	// delivery orchestrator.
	retryCount       = 2
	retryWaitTime    = 500 * time.Millisecond
	retryMaxWaitTime = 3 * time.Second
)

// Client talks to the Sendit courier API.
type Client struct {
	http      *resty.Client
	publicKey string
	secretKey string

	mu             sync.Mutex
	token          string
	tokenExpiresAt time.Time
}

func NewClient(baseURL, publicKey, secretKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryConditions(func(res *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return res.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{
		http:      httpClient,
		publicKey: publicKey,
		secretKey: secretKey,
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// ensureToken returns a cached login token, re-authenticating only when the
// cached one is about to expire.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiresAt.Add(-tokenRefreshSlack)) {
		return c.token, nil
	}

	var envelope loginResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{PublicKey: c.publicKey, SecretKey: c.secretKey}).
		SetResult(&envelope).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("failed to reach sendit login: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("sendit login returned status %d: %s", res.StatusCode(), res.String())
	}
	if !envelope.Success || envelope.Data.Token == "" {
		return "", &APIError{Code: envelope.Code, Message: envelope.Message}
	}

	c.token = envelope.Data.Token
	c.tokenExpiresAt = time.Now().Add(tokenValidity)
	log.Info().Time("expires_at", c.tokenExpiresAt).Msg("sendit token refreshed")

	return c.token, nil
}
