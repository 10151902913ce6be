package help

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteProvider_FromRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/en_US/accounts.index.md":
			w.Write([]byte("# Accounts\n\nManage your **accounts**.\n\n<script>alert(1)</script>\n"))
		case "/en_US/empty.md":
			w.Write([]byte("   \n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	provider := NewRemoteProvider(nil, Options{BaseURL: server.URL + "/", Timeout: time.Second}, zerolog.Nop())
	ctx := context.Background()

	t.Run("renders sanitized html", func(t *testing.T) {
		html := provider.FromRemote(ctx, "accounts.index", "en_US")
		assert.Contains(t, html, "<h1>Accounts</h1>")
		assert.Contains(t, html, "<strong>accounts</strong>")
		assert.NotContains(t, html, "<script")
	})

	t.Run("missing page", func(t *testing.T) {
		assert.Equal(t, "", provider.FromRemote(ctx, "accounts.index", "de_DE"))
	})

	t.Run("blank page", func(t *testing.T) {
		assert.Equal(t, "", provider.FromRemote(ctx, "empty", "en_US"))
	})

	t.Run("unreachable host", func(t *testing.T) {
		down := NewRemoteProvider(nil, Options{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond}, zerolog.Nop())
		assert.Equal(t, "", down.FromRemote(ctx, "index", "en_US"))
	})
}

func TestRemoteProvider_Cache(t *testing.T) {
	db, mock := redismock.NewClientMock()
	provider := NewRemoteProvider(db, Options{Routes: []string{"index"}, CacheTTL: time.Hour}, zerolog.Nop())
	ctx := context.Background()

	mock.ExpectExists("help:index:nl_NL").SetVal(1)
	mock.ExpectGet("help:index:nl_NL").SetVal("<p>Hallo</p>")
	mock.ExpectSet("help:index:en_US", "<p>Hello</p>", time.Hour).SetVal("OK")
	mock.ExpectExists("help:index:fr_FR").SetErr(errors.New("connection refused"))

	assert.True(t, provider.InCache(ctx, "index", "nl_NL"))
	content, err := provider.FromCache(ctx, "index", "nl_NL")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hallo</p>", content)

	provider.PutInCache(ctx, "index", "en_US", "<p>Hello</p>")
	assert.False(t, provider.InCache(ctx, "index", "fr_FR"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteProvider_WithoutCache(t *testing.T) {
	provider := NewRemoteProvider(nil, Options{Routes: []string{"index"}}, zerolog.Nop())
	ctx := context.Background()

	assert.True(t, provider.HasRoute("index"))
	assert.False(t, provider.HasRoute("missing"))
	assert.Equal(t, []string{"index"}, provider.Routes())
	assert.False(t, provider.InCache(ctx, "index", "en_US"))
	provider.PutInCache(ctx, "index", "en_US", "<p>x</p>")
	_, err := provider.FromCache(ctx, "index", "en_US")
	assert.Error(t, err)
}
