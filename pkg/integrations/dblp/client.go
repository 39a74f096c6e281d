package dblp

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/scholarnet/pkg/cache"
	"github.com/matzehuels/scholarnet/pkg/coauthor"
	"github.com/matzehuels/scholarnet/pkg/integrations"
)

// DefaultBaseURL is the public DBLP site.
const DefaultBaseURL = "https://dblp.org"

// Client reads DBLP author search results and person pages.
// All methods are safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a DBLP client. Responses are cached in backend for ttl.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(backend cache.Cache, ttl time.Duration, baseURL string, opts ...integrations.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	headers := map[string]string{
		"Accept": "text/html,application/xhtml+xml",
	}
	return &Client{
		Client:  integrations.NewClient(backend, "dblp", ttl, headers, opts...),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the site root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// SearchURL returns the author search URL for name.
func (c *Client) SearchURL(name string) string {
	return c.baseURL + "/search/author?q=" + integrations.URLEncode(name)
}

// Search runs an author search. It implements [coauthor.Searcher] and
// always reads through the cache.
func (c *Client) Search(ctx context.Context, name string) (*coauthor.SearchResult, error) {
	return c.SearchAuthor(ctx, name, false)
}

// SearchAuthor runs an author search, bypassing the cache when refresh is
// set.
func (c *Client) SearchAuthor(ctx context.Context, name string, refresh bool) (*coauthor.SearchResult, error) {
	u := c.SearchURL(name)
	base, err := url.Parse(u)
	if err != nil {
		return nil, err
	}

	var res coauthor.SearchResult
	err = c.Cached(ctx, u, refresh, &res, func() error {
		body, err := c.GetText(ctx, u)
		if err != nil {
			return err
		}
		parsed, err := ParseSearch(strings.NewReader(body), base)
		if err != nil {
			return err
		}
		res = *parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// FetchProfile downloads and parses the person page at locator. It
// implements [coauthor.Source].
//
// Returns [integrations.ErrNotFound] for a 404, an error wrapping
// [integrations.ErrNetwork] for other HTTP failures, and [*ParseError] for a
// page without DBLP markup.
func (c *Client) FetchProfile(ctx context.Context, locator string, refresh bool) (*coauthor.Profile, error) {
	var p coauthor.Profile
	err := c.Cached(ctx, locator, refresh, &p, func() error {
		body, err := c.GetText(ctx, locator)
		if err != nil {
			return err
		}
		parsed, err := ParseProfile(strings.NewReader(body), locator)
		if err != nil {
			return err
		}
		p = *parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var (
	_ coauthor.Searcher = (*Client)(nil)
	_ coauthor.Source   = (*Client)(nil)
)
