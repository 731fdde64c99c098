// Package dictionary は英和辞書APIから単語の意味を取得します。
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tsumitan/internal/config"

	"github.com/coocood/freecache"
)

var (
	ErrNotFound    = errors.New("dictionary: word not found")
	ErrUnavailable = errors.New("dictionary: service unavailable")
)

// 応答本文の上限
const maxBodyBytes = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache // nil ならキャッシュしない
	ttlSeconds int
	observe    func(result string)
}

// 検索結果の種類 (メトリクスのラベル)
const (
	ResultCacheHit    = "cache_hit"
	ResultFound       = "found"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
)

type Option func(*Client)

// WithLookupObserver は検索のたびに結果の種類を通知する関数を設定します
func WithLookupObserver(fn func(result string)) Option {
	return func(c *Client) { c.observe = fn }
}

// WithHTTPClient はテストなどで http.Client を差し替えます
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient は設定からクライアントを作ります。リトライはしません。
func NewClient(cfg config.DictionaryConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		ttlSeconds: int(cfg.CacheTTL.Seconds()),
		observe:    func(string) {},
	}
	if cfg.CacheSizeMB > 0 {
		c.cache = freecache.NewCache(cfg.CacheSizeMB * 1024 * 1024)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup は単語の意味を返します。見つからない場合は ErrNotFound。
func (c *Client) Lookup(ctx context.Context, word string) (string, error) {
	if c.cache != nil {
		if cached, err := c.cache.Get([]byte(word)); err == nil {
			c.observe(ResultCacheHit)
			return string(cached), nil
		}
	}

	meaning, err := c.fetch(ctx, word)
	switch {
	case err == nil:
		c.observe(ResultFound)
	case errors.Is(err, ErrNotFound):
		c.observe(ResultNotFound)
		return "", err
	default:
		c.observe(ResultUnavailable)
		return "", err
	}

	if c.cache != nil {
		_ = c.cache.Set([]byte(word), []byte(meaning), c.ttlSeconds)
	}
	return meaning, nil
}

func (c *Client) fetch(ctx context.Context, word string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base url: %w", ErrUnavailable, err)
	}
	q := u.Query()
	q.Set("word", word)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	meaning := strings.TrimSpace(string(body))
	if meaning == "" {
		return "", ErrNotFound
	}
	return meaning, nil
}
