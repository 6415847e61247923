package hn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"hnsearch/internal/config"
	"hnsearch/internal/domain"
	"hnsearch/internal/logging"
)

// ErrUnexpectedStatus is returned for any non-200 response
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Client queries the Algolia Hacker News search API
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a client for the configured API root
func NewClient(cfg config.APIConfig, opts ...Option) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = config.DefaultBaseURL
	}
	c := &Client{
		http:    &http.Client{},
		baseURL: base,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchURL builds the request URL for one page of a term
func (c *Client) SearchURL(term string, page, pageSize int) string {
	q := url.Values{}
	q.Set("query", term)
	q.Set("page", strconv.Itoa(page))
	q.Set("hitsPerPage", strconv.Itoa(pageSize))
	return c.baseURL + "/search?" + q.Encode()
}

// Fetch retrieves one page of results. It does not retry.
func (c *Client) Fetch(ctx context.Context, term string, page, pageSize int) (domain.ResultPage, error) {
	log := logging.NewLogger("hn")
	if pageSize <= 0 {
		pageSize = config.DefaultHitsPerPage
	}
	target := c.SearchURL(term, page, pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.ResultPage{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.WithField("url", target).Debug("requesting page")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ResultPage{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ResultPage{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ResultPage{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var result domain.ResultPage
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.ResultPage{}, fmt.Errorf("failed to unmarshal json response: %w", err)
	}
	if result.Hits == nil {
		result.Hits = []domain.Hit{}
	}

	log.WithFields(logrus.Fields{
		"term": term,
		"page": result.Page,
		"hits": len(result.Hits),
	}).Debug("page received")

	return result, nil
}
