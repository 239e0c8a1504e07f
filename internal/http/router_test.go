package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/based-profile/backend/internal/config"
	"github.com/based-profile/backend/internal/directory"
	"github.com/based-profile/backend/internal/events"
	"github.com/based-profile/backend/internal/http/handlers"
	"github.com/based-profile/backend/internal/middleware"
	"github.com/based-profile/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticDirectory map[int64]*directory.User

func (d staticDirectory) LookupByID(_ context.Context, fid int64) (*directory.User, error) {
	if u, ok := d[fid]; ok {
		return u, nil
	}
	return nil, directory.ErrNotFound
}

func (d staticDirectory) LookupByAddress(context.Context, string) (*directory.User, error) {
	return nil, directory.ErrNotFound
}

func newTestApp() *fiber.App {
	cfg := &config.Config{CORSAllowOrigins: "*", EventsChannel: "events:profile"}
	log := zap.NewNop()
	dir := staticDirectory{123: {FID: 123, Username: "alice", DisplayName: "Alice", FollowerCount: 1200}}
	svc := services.NewProfileService(dir, events.NopPublisher{}, cfg, log)

	app := NewApp()
	SetupRouter(app, cfg, log,
		handlers.NewLookupHandler(dir, log),
		handlers.NewProfileHandler(svc, log),
		handlers.NewMetaHandler(cfg),
		handlers.NewProfileStream(svc, log),
	)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestHealth(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	assert.Equal(t, "ok", decode(t, resp)["status"])
}

func TestRequestIDPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	resp, err := newTestApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp.Header.Get(middleware.HeaderRequestID))
}

func TestLookupAliases(t *testing.T) {
	app := newTestApp()
	for _, target := range []string{"/lookup-by-id?id=123", "/api/neynar-user-by-fid?fid=123"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, target)
		assert.Equal(t, "alice", decode(t, resp)["handle"], target)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/neynar-user?address=0xdead", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResolveRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/resolve", strings.NewReader(`{"user":{"fid":123}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := newTestApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Alice", data["display_name"])
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "⭐⭐⭐⭐ Rising Star", data["star_level"])
	assert.Equal(t, true, data["has_user_context"])
}

func TestWebsocketRequiresUpgrade(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/profile", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-ws")
	resp, err := newTestApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "req-ws", body["request_id"])
	assert.NotEmpty(t, body["error"])
}
