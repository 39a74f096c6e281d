package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// debugHooks logs pipeline, cache, and HTTP events at debug level.
type debugHooks struct {
	logger *log.Logger
}

func (h *debugHooks) OnResolveStart(_ context.Context, query string) {
	h.logger.Debug("resolving author", "query", query)
}

func (h *debugHooks) OnResolveComplete(_ context.Context, query, locator string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("resolve failed", "query", query, "error", err, "duration", d)
		return
	}
	h.logger.Debug("resolved", "query", query, "locator", locator, "duration", d)
}

func (h *debugHooks) OnFetchStart(_ context.Context, locator string) {
	h.logger.Debug("fetching profile", "locator", locator)
}

func (h *debugHooks) OnFetchComplete(_ context.Context, locator string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "locator", locator, "error", err, "duration", d)
		return
	}
	h.logger.Debug("fetched", "locator", locator, "records", records, "duration", d)
}

func (h *debugHooks) OnBuild(_ context.Context, primary string, nodes, edges int, d time.Duration) {
	h.logger.Debug("graph built", "primary", primary, "nodes", nodes, "edges", edges, "duration", d)
}

func (h *debugHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("rendering", "formats", formats)
}

func (h *debugHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("rendered", "formats", formats, "error", err, "duration", d)
}

func (h *debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *debugHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *debugHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *debugHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "error", err)
}
