package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fakeDirectory(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/farcaster/user/bulk":
			if r.URL.Query().Get("fids") != "123" {
				_, _ = w.Write([]byte(`{"users":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"users":[{"fid":123,"username":"alice","display_name":"Alice",
				"follower_count":600,"verifications":["0xAAA1111111111111"],"custody_address":"0xC0C0C0C0C0C0C0C0"}]}`))
		case "/v2/farcaster/user/bulk-by-address":
			_, _ = w.Write([]byte(`{"result":{"user":{"fid":77,"username":"bob"}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("NEYNAR_API_KEY", "test-key-123456")
	t.Setenv("NEYNAR_BASE_URL", srv.URL)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupID(t *testing.T) {
	fakeDirectory(t)

	out, err := run(t, "", "lookup-id", "123")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "alice", got["handle"])
	assert.Equal(t, []any{"0xAAA1111111111111"}, got["ethAddresses"])
}

func TestLookupID_InvalidFid(t *testing.T) {
	_, err := run(t, "", "lookup-id", "zero")
	assert.ErrorContains(t, err, "positive integer")
}

func TestLookupID_NotFound(t *testing.T) {
	fakeDirectory(t)
	_, err := run(t, "", "lookup-id", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLookupAddress_YAML(t *testing.T) {
	fakeDirectory(t)

	out, err := run(t, "", "lookup-address", "0xabc", "--output", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "bob", got["handle"])
	assert.Equal(t, 77, got["id"])
}

func TestResolveFromFile(t *testing.T) {
	fakeDirectory(t)

	path := filepath.Join(t.TempDir(), "ctx.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user":{"fid":123,"displayName":"Al"}}`), 0o600))

	out, err := run(t, "", "resolve", "--context", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Al", got["display_name"])
	assert.Equal(t, "alice", got["username"])
	assert.Equal(t, "⭐⭐⭐ New Star", got["star_level"])
	require.NotNil(t, got["custody_wallet"])
}

func TestResolveFromStdin(t *testing.T) {
	fakeDirectory(t)

	out, err := run(t, `{"interactor":{"verified_accounts":[{"display_name":"Carol"}]}}`, "resolve", "-c", "-")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Carol", got["display_name"])
	assert.Equal(t, "user", got["username"])
}

func TestResolveEmptyContext(t *testing.T) {
	fakeDirectory(t)

	out, err := run(t, "", "resolve")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "User", got["display_name"])
	assert.Equal(t, false, got["has_user_context"])
}

func TestUnsupportedOutput(t *testing.T) {
	_, err := run(t, "", "resolve", "--output", "xml")
	assert.ErrorContains(t, err, "unsupported output")
}
