package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/based-profile/backend/internal/config"
	"go.uber.org/zap"
)

// Client talks to the Neynar user directory. Every call is a single attempt.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger

	missingKeyOnce sync.Once
}

func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.DirectoryBaseURL, "/"),
		apiKey:     cfg.DirectoryAPIKey,
		httpClient: &http.Client{},
		log:        log,
	}
}

// LookupByID fetches the user with the given fid from the bulk endpoint.
func (c *Client) LookupByID(ctx context.Context, fid int64) (*User, error) {
	if err := c.checkKey(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v2/farcaster/user/bulk?fids=%d", c.baseURL, fid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Users []apiUser `json:"users"`
	}
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	if len(result.Users) == 0 {
		return nil, ErrNotFound
	}
	return result.Users[0].toUser(), nil
}

// LookupByAddress fetches the user that verified the given wallet address.
func (c *Client) LookupByAddress(ctx context.Context, address string) (*User, error) {
	if err := c.checkKey(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string][]string{"addresses": {address}})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v2/farcaster/user/bulk-by-address", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result struct {
		Result struct {
			User *apiUser `json:"user"`
		} `json:"result"`
	}
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	if result.Result.User == nil {
		return nil, ErrNotFound
	}
	return result.Result.User.toUser(), nil
}

func (c *Client) checkKey() error {
	if c.apiKey != "" {
		return nil
	}
	c.missingKeyOnce.Do(func() {
		c.log.Warn("directory lookup skipped: NEYNAR_API_KEY is not set")
	})
	return ErrNotConfigured
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
