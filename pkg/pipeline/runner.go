package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/scholarnet/pkg/cache"
	"github.com/matzehuels/scholarnet/pkg/coauthor"
	"github.com/matzehuels/scholarnet/pkg/graph"
	"github.com/matzehuels/scholarnet/pkg/observability"
)

// Backend searches a bibliographic directory and fetches profile pages.
// The DBLP client implements it.
type Backend interface {
	coauthor.Searcher
	coauthor.Source
}

// Runner executes the pipeline with caching.
//
// A Runner holds no per-run state, so one Runner may serve concurrent runs
// with different options.
type Runner struct {
	Backend Backend
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger

	resolver *coauthor.Resolver
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses the default keyer, and a nil logger uses the default logger.
func NewRunner(b Backend, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Backend:  b,
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		resolver: coauthor.NewResolver(b),
	}
}

// Execute runs resolve → fetch → build → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.DepthIgnored() {
		opts.Logger.Warn("only direct co-authors are collected; ignoring depth", "depth", opts.Depth)
	}

	result := &Result{}

	start := time.Now()
	locator, err := r.Resolve(ctx, opts.Query)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Locator = locator
	result.Stats.ResolveTime = time.Since(start)
	opts.Logger.Info("resolved author", "query", opts.Query, "locator", locator)

	start = time.Now()
	profile, hit, err := r.FetchWithCacheInfo(ctx, locator, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Primary = profile.PrimaryAuthor
	result.Stats.Records = len(profile.Records)
	result.Stats.FetchTime = time.Since(start)
	result.CacheInfo.ProfileHit = hit
	opts.Logger.Info("fetched profile",
		"author", profile.PrimaryAuthor,
		"records", len(profile.Records),
		"cached", hit,
		"duration", result.Stats.FetchTime)

	start = time.Now()
	g, skipped := r.build(ctx, profile, opts.Logger)
	result.Graph = g
	result.Stats.Skipped = skipped
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.BuildTime = time.Since(start)
	opts.Logger.Info("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	start = time.Now()
	artifacts, hash, renderHit, err := r.render(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.GraphHash = hash
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = renderHit
	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Resolve turns a query into a profile locator.
func (r *Runner) Resolve(ctx context.Context, query string) (string, error) {
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, query)
	start := time.Now()
	locator, err := r.resolver.Resolve(ctx, query)
	hooks.OnResolveComplete(ctx, query, locator, time.Since(start), err)
	return locator, err
}

// Search returns the raw search result for name.
func (r *Runner) Search(ctx context.Context, name string) (*coauthor.SearchResult, error) {
	return r.Backend.Search(ctx, name)
}

// FetchWithCacheInfo fetches a profile, consulting the profile cache unless
// refresh is set, and reports whether the cache served it.
func (r *Runner) FetchWithCacheInfo(ctx context.Context, locator string, refresh bool) (*coauthor.Profile, bool, error) {
	key := r.Keyer.ProfileKey(locator)
	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var p coauthor.Profile
			if err := json.Unmarshal(data, &p); err == nil {
				return &p, true, nil
			}
		}
	}

	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, locator)
	start := time.Now()
	p, err := r.Backend.FetchProfile(ctx, locator, refresh)
	records := 0
	if p != nil {
		records = len(p.Records)
	}
	hooks.OnFetchComplete(ctx, locator, records, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(p); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLProfile)
	}
	return p, false, nil
}

// Fetch is FetchWithCacheInfo without the cache hit flag.
func (r *Runner) Fetch(ctx context.Context, locator string, refresh bool) (*coauthor.Profile, error) {
	p, _, err := r.FetchWithCacheInfo(ctx, locator, refresh)
	return p, err
}

// Build folds a profile's records into a graph.
func (r *Runner) Build(ctx context.Context, p *coauthor.Profile) *coauthor.Graph {
	g, _ := r.build(ctx, p, r.Logger)
	return g
}

func (r *Runner) build(ctx context.Context, p *coauthor.Profile, logger *log.Logger) (*coauthor.Graph, int) {
	skipped := 0
	for i, rec := range p.Records {
		if len(rec) == 0 {
			skipped++
			logger.Debug("skipping record without authors", "index", i)
		}
	}
	start := time.Now()
	g := coauthor.Build(p.PrimaryAuthor, p.Records)
	observability.Pipeline().OnBuild(ctx, p.PrimaryAuthor, g.NodeCount(), g.EdgeCount(), time.Since(start))
	if _, ok := g.PrimaryNode(); !ok && g.NodeCount() > 0 {
		logger.Debug("primary author not listed on any record", "author", p.PrimaryAuthor)
	}
	return g, skipped
}

// Render renders g in every format of opts, using cached artifacts where
// available.
func (r *Runner) Render(ctx context.Context, g *coauthor.Graph, opts Options) (map[string][]byte, error) {
	artifacts, _, _, err := r.render(ctx, g, opts)
	return artifacts, err
}

// render returns the artifacts, the graph hash, and whether every format
// was served from the cache. Missing formats render concurrently.
func (r *Runner) render(ctx context.Context, g *coauthor.Graph, opts Options) (map[string][]byte, string, bool, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, "", false, err
	}

	data, err := graph.Marshal(g)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	hash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
			continue
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, hash, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	for _, format := range missing {
		eg.Go(func() error {
			out, err := RenderFormat(egCtx, g, format, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = out
			mu.Unlock()
			return nil
		})
	}
	err = eg.Wait()
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	for _, format := range missing {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, artifacts[format], cache.TTLArtifact)
	}
	return artifacts, hash, false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
