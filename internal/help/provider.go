// Package help serves per-route help text. Content is fetched as markdown
// from a remote documentation repository, rendered to sanitized HTML and
// cached in Redis per (route, language).
package help

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
)

const maxHelpBytes = 1 << 20

// Provider is the storage and transport behind Service.
type Provider interface {
	HasRoute(route string) bool
	InCache(ctx context.Context, route, language string) bool
	FromCache(ctx context.Context, route, language string) (string, error)
	// FromRemote returns "" when the text could not be fetched.
	FromRemote(ctx context.Context, route, language string) string
	PutInCache(ctx context.Context, route, language, content string)
}

type Options struct {
	BaseURL  string
	Routes   []string
	CacheTTL time.Duration
	Timeout  time.Duration
}

// RemoteProvider fetches help markdown over HTTP and caches rendered HTML in Redis.
type RemoteProvider struct {
	cache    *redis.Client
	client   *http.Client
	baseURL  string
	routes   map[string]struct{}
	ttl      time.Duration
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
	log      zerolog.Logger
}

func NewRemoteProvider(cache *redis.Client, opts Options, log zerolog.Logger) *RemoteProvider {
	routes := make(map[string]struct{}, len(opts.Routes))
	for _, r := range opts.Routes {
		routes[r] = struct{}{}
	}
	return &RemoteProvider{
		cache:    cache,
		client:   &http.Client{Timeout: opts.Timeout},
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		routes:   routes,
		ttl:      opts.CacheTTL,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
		log:      log,
	}
}

func (p *RemoteProvider) HasRoute(route string) bool {
	_, ok := p.routes[route]
	return ok
}

// Routes lists the routes help exists for.
func (p *RemoteProvider) Routes() []string {
	routes := make([]string, 0, len(p.routes))
	for r := range p.routes {
		routes = append(routes, r)
	}
	return routes
}

func (p *RemoteProvider) InCache(ctx context.Context, route, language string) bool {
	if p.cache == nil {
		return false
	}
	n, err := p.cache.Exists(ctx, cacheKey(route, language)).Result()
	if err != nil {
		p.log.Warn().Err(err).Str("route", route).Msg("[HELP] Cache lookup failed")
		return false
	}
	return n > 0
}

func (p *RemoteProvider) FromCache(ctx context.Context, route, language string) (string, error) {
	if p.cache == nil {
		return "", redis.Nil
	}
	return p.cache.Get(ctx, cacheKey(route, language)).Result()
}

func (p *RemoteProvider) PutInCache(ctx context.Context, route, language, content string) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Set(ctx, cacheKey(route, language), content, p.ttl).Err(); err != nil {
		p.log.Warn().Err(err).Str("route", route).Str("language", language).Msg("[HELP] Failed to cache help text")
	}
}

func (p *RemoteProvider) FromRemote(ctx context.Context, route, language string) string {
	uri := fmt.Sprintf("%s/%s/%s.md", p.baseURL, url.PathEscape(language), url.PathEscape(route))
	p.log.Debug().Str("url", uri).Msg("[HELP] Fetching help text")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		p.log.Error().Err(err).Str("url", uri).Msg("[HELP] Could not build request")
		return ""
	}
	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error().Err(err).Str("url", uri).Msg("[HELP] Remote request failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.Info().Int("status", resp.StatusCode).Str("url", uri).Msg("[HELP] Remote returned non-OK status")
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxHelpBytes))
	if err != nil {
		p.log.Error().Err(err).Str("url", uri).Msg("[HELP] Failed to read help text")
		return ""
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}

	var html bytes.Buffer
	if err := p.markdown.Convert(body, &html); err != nil {
		p.log.Error().Err(err).Str("url", uri).Msg("[HELP] Failed to render help text")
		return ""
	}
	return strings.TrimSpace(p.policy.Sanitize(html.String()))
}

func cacheKey(route, language string) string {
	return "help:" + route + ":" + language
}
