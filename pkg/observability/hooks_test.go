package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnResolveStart(ctx, "Zeshan Khan")
	p.OnResolveComplete(ctx, "Zeshan Khan", "https://dblp.org/pid/1/2.html", time.Second, nil)
	p.OnFetchStart(ctx, "https://dblp.org/pid/1/2.html")
	p.OnFetchComplete(ctx, "https://dblp.org/pid/1/2.html", 12, time.Second, nil)
	p.OnBuild(ctx, "Zeshan Khan", 10, 20, time.Millisecond)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "dblp")
	c.OnCacheMiss(ctx, "profile")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "dblp.org", "/search/author")
	h.OnResponse(ctx, "GET", "dblp.org", "/search/author", 200, time.Second)
	h.OnError(ctx, "GET", "dblp.org", "/search/author", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

type recordingHooks struct {
	NoopPipelineHooks
	events []string
}

func (r *recordingHooks) OnResolveStart(_ context.Context, query string) {
	r.events = append(r.events, "resolve:"+query)
}

func (r *recordingHooks) OnBuild(_ context.Context, primary string, _, _ int, _ time.Duration) {
	r.events = append(r.events, "build:"+primary)
}

func TestPartialHooksEmbedNoop(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnResolveStart(ctx, "Ada")
	Pipeline().OnFetchStart(ctx, "https://dblp.org/pid/1/2.html")
	Pipeline().OnBuild(ctx, "Ada", 1, 0, 0)

	if len(rec.events) != 2 || rec.events[0] != "resolve:Ada" || rec.events[1] != "build:Ada" {
		t.Errorf("events = %v", rec.events)
	}
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
