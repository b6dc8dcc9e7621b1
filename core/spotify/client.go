// Package spotify is a minimal Spotify Web API client covering track
// search and audio features, authenticated with the client-credentials
// grant.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	apiBaseURL = "https://api.spotify.com/v1"
	tokenURL   = "https://accounts.spotify.com/api/token"
)

// ErrTokenRefreshed is returned when the initial token grant failed and
// the client refreshed its cached token instead. The request that
// triggered the refresh is not retried, so its caller gets no result on
// this path.
var ErrTokenRefreshed = errors.New("spotify: access token refreshed, request not retried")

// Client is a Spotify Web API client. The client-credentials token is
// cached on the client and renewed on demand; the cache is guarded by a
// mutex so only one goroutine writes it at a time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *clientcredentials.Config

	mu    sync.Mutex
	token *oauth2.Token
}

// NewClient creates a new API client for the given application credentials.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		baseURL: apiBaseURL,
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		creds: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
	}
}

// SetBaseURL overrides the API base URL.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SetTokenURL overrides the token endpoint URL.
func (c *Client) SetTokenURL(url string) {
	c.creds.TokenURL = url
}

// SetTimeout sets the request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// ensureToken returns a valid access token, acquiring one when none is
// cached or the cached one has expired. When the grant itself fails the
// client attempts one refresh, stores the result, and reports
// ErrTokenRefreshed without retrying the caller's request.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && c.token.Valid() {
		return c.token.AccessToken, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := c.creds.Token(ctx)
	if err != nil {
		refreshed, rerr := c.creds.Token(ctx)
		if rerr != nil {
			return "", fmt.Errorf("failed to obtain access token: %w", rerr)
		}
		c.token = refreshed
		return "", ErrTokenRefreshed
	}

	c.token = tok
	return tok.AccessToken, nil
}

// doRequest performs an authenticated GET against the API and decodes
// the JSON response into result.
func (c *Client) doRequest(ctx context.Context, token, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
