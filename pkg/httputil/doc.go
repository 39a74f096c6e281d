// Package httputil provides retry helpers for HTTP clients.
//
// # Retry
//
// [Retry] re-runs a request for transient failures only. The caller marks
// which failures are transient by wrapping them in [RetryableError]:
//
//   - transport errors (timeouts, refused connections)
//   - 5xx server errors
//   - 429 rate limit responses, honoring Retry-After via [ParseRetryAfter]
//
// Anything else (404, a parse error) is returned at once.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// Defaults: 3 attempts, 1 second initial delay, doubling.
package httputil
