package linktree

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/html"

	"linky/internal/domain"
)

// Client fetches Linktree pages over HTTP.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	MaxBody   int64 // response size cap in bytes
}

func NewClient(httpClient *http.Client, userAgent string, maxBody int64) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{HTTP: httpClient, UserAgent: userAgent, MaxBody: maxBody}
}

var _ domain.ProfileFetcher = (*Client)(nil)

// FetchProfile downloads the page at url and extracts its links.
func (c *Client) FetchProfile(ctx context.Context, url string) (domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Profile{}, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.Profile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain.Profile{}, fmt.Errorf("get %s: %s", url, resp.Status)
	}

	body := io.Reader(resp.Body)
	if c.MaxBody > 0 {
		body = io.LimitReader(resp.Body, c.MaxBody)
	}
	doc, err := html.Parse(body)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("parse %s: %w", url, err)
	}

	links, err := extractLinks(doc)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("extract %s: %w", url, err)
	}
	return domain.Profile{URL: url, Links: links}, nil
}
