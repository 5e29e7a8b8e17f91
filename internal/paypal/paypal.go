package paypal

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
	requestTimeout = 15 * time.Second

	// refresh the OAuth token a minute before PayPal's stated expiry.
	tokenRefreshSlack = time.Minute
)

// Client talks to the PayPal REST API.
type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string

	mu             sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

func NewClient(baseURL, clientID, clientSecret string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryConditions(func(res *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return res.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{
		http:         httpClient,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (c *Client) Close() error {
	return c.http.Close()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ensureToken returns a cached OAuth2 access token, fetching a new one via the
// client-credentials grant only when the cached token is about to expire.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiresAt.Add(-tokenRefreshSlack)) {
		return c.accessToken, nil
	}

	var token tokenResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&token).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("failed to reach paypal oauth: %w", err)
	}
	if !res.IsSuccess() || token.AccessToken == "" {
		return "", fmt.Errorf("paypal oauth returned status %d: %s", res.StatusCode(), res.String())
	}

	c.accessToken = token.AccessToken
	c.tokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	log.Info().Time("expires_at", c.tokenExpiresAt).Msg("paypal access token refreshed")

	return c.accessToken, nil
}
