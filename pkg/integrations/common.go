package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/scholarnet/pkg/buildinfo"
)

const httpTimeout = 30 * time.Second

// Request pacing defaults: two requests per second, no bursts. DBLP asks
// crawlers to keep a low request rate.
const (
	DefaultRateLimit = 2.0
	DefaultBurst     = 1
)

var (
	// ErrNotFound is returned when the requested page does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned for 429 responses. It always comes wrapped
	// together with ErrNetwork.
	ErrRateLimited = errors.New("rate limited")
)

// UserAgent identifies scholarnet to remote services.
func UserAgent() string {
	return "scholarnet/" + buildinfo.Version + " (+https://github.com/matzehuels/scholarnet)"
}

// NewHTTPClient creates an HTTP client with a standard timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
