package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/based-profile/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, key string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.Config{DirectoryAPIKey: key, DirectoryBaseURL: srv.URL + "/"}, zap.NewNop())
}

func TestLookupByID(t *testing.T) {
	c := newTestClient(t, "key-123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/farcaster/user/bulk", r.URL.Path)
		assert.Equal(t, "123", r.URL.Query().Get("fids"))
		assert.Equal(t, "key-123", r.Header.Get("api_key"))
		_, _ = w.Write([]byte(`{"users":[{
			"fid":123,"username":"alice","display_name":"Alice",
			"pfp_url":"https://img/alice.png","follower_count":640,"following_count":12,
			"custody_address":"0xAAA",
			"verified_addresses":{"eth_addresses":["0xBBB"],"sol_addresses":["So1ana"]},
			"active_status":"active","created_at":"2023-02-01T10:00:00Z"}]}`))
	})

	u, err := c.LookupByID(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, int64(123), u.FID)
	assert.Equal(t, "Alice", u.DisplayName)
	assert.Equal(t, "https://img/alice.png", u.AvatarURL)
	assert.Equal(t, int64(640), u.FollowerCount)
	assert.Equal(t, "0xAAA", u.CustodyAddress)
	assert.Equal(t, []string{"0xBBB", "So1ana"}, u.Verifications)
	assert.Equal(t, []string{"0xBBB"}, u.EthAddresses())
	assert.Equal(t, []string{"So1ana"}, u.SolAddresses())
	require.NotNil(t, u.CreatedAt)
	assert.Equal(t, 2023, u.CreatedAt.Year())
}

func TestLookupByID_CamelCaseFields(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":[{"fid":7,"displayName":"Bob","pfp":{"url":"https://img/bob.png"},
			"followerCount":5,"custodyAddress":"0xC","verifications":["0xD"],"activeStatus":"inactive"}]}`))
	})

	u, err := c.LookupByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Bob", u.DisplayName)
	assert.Equal(t, "https://img/bob.png", u.AvatarURL)
	assert.Equal(t, int64(5), u.FollowerCount)
	assert.Equal(t, "0xC", u.CustodyAddress)
	assert.Equal(t, []string{"0xD"}, u.Verifications)
	assert.Equal(t, "inactive", u.ActiveStatus)
	assert.Nil(t, u.CreatedAt)
}

func TestLookupByID_NotFound(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":[]}`))
	})

	_, err := c.LookupByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupByID_Upstream(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.LookupByID(context.Background(), 1)
	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusBadGateway, upErr.StatusCode)
}

func TestLookupByID_Malformed(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.LookupByID(context.Background(), 1)
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestLookupByID_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(&config.Config{DirectoryAPIKey: "k", DirectoryBaseURL: srv.URL}, zap.NewNop())

	_, err := c.LookupByID(context.Background(), 1)
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestLookupWithoutKey(t *testing.T) {
	called := false
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.LookupByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.LookupByAddress(context.Background(), "0x1")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called, "no request should be issued without a credential")
}

func TestLookupByAddress(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/farcaster/user/bulk-by-address", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Addresses []string `json:"addresses"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"0xCCC"}, body.Addresses)

		_, _ = w.Write([]byte(`{"result":{"user":{"fid":9,"username":"carol","pfp":"https://img/c.png"}}}`))
	})

	u, err := c.LookupByAddress(context.Background(), "0xCCC")
	require.NoError(t, err)
	assert.Equal(t, int64(9), u.FID)
	assert.Equal(t, "carol", u.Username)
	assert.Equal(t, "https://img/c.png", u.AvatarURL)
}

func TestLookupByAddress_NotFound(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{}}`))
	})

	_, err := c.LookupByAddress(context.Background(), "0xCCC")
	assert.ErrorIs(t, err, ErrNotFound)
}
