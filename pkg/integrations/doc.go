// Package integrations provides HTTP clients for remote bibliography
// services.
//
// # Overview
//
// Each service has its own subpackage built on the shared [Client]:
//
//   - [dblp]: DBLP author search and profile pages
//
// # Client Pattern
//
// Service clients embed [*Client] and follow one pattern:
//
//	client := dblp.NewClient(backend, 24*time.Hour, dblp.DefaultBaseURL)
//	profile, err := client.FetchProfile(ctx, locator, false) // false = use cache
//
// The shared client handles:
//   - retry with exponential backoff for transport errors, 5xx and 429
//   - request pacing with a token bucket (2 requests/second by default)
//   - response caching through [cache.Cache], keyed per namespace
//   - deduplication of identical in-flight fetches
//
// Status mapping: 404 becomes [ErrNotFound]; everything else that is not a
// 200 wraps [ErrNetwork], and 429 additionally wraps [ErrRateLimited].
//
// [dblp]: github.com/matzehuels/scholarnet/pkg/integrations/dblp
// [cache.Cache]: github.com/matzehuels/scholarnet/pkg/cache.Cache
package integrations
