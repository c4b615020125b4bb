// Package planner answers route queries over a multigraph.Graph and memoizes
// the resulting paths in a pathcache.Table.
//
// Cache keys are (source index, destination index, weighted). Weighted
// queries blend edge weights with the configured heuristic weight α;
// unweighted queries use Weight0 alone (α = 0). Any structural edit made
// through the Planner invalidates the cache, because cached paths hold vertex
// and edge indices that the edit may shift.
//
// A Planner serializes all calls with a mutex; the graph and table it wraps
// must not be mutated behind its back.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hroute/multigraph"
	"github.com/katalvlaran/hroute/pathcache"
	"github.com/katalvlaran/hroute/routing"
)

const instrumentationName = "github.com/katalvlaran/hroute/planner"

var (
	// ErrNilGraph is returned by New without a graph.
	ErrNilGraph = errors.New("planner: graph is nil")
	// ErrNilCache is returned by New without a cache.
	ErrNilCache = errors.New("planner: cache is nil")
	// ErrBadAlpha is returned by New for α outside [0, 1].
	ErrBadAlpha = errors.New("planner: alpha must be within [0, 1]")
	// ErrBadEvictBatch is returned by New for a batch below 1.
	ErrBadEvictBatch = errors.New("planner: evict batch must be at least 1")
)

// Query names a route.
type Query struct {
	From     string
	To       string
	Weighted bool
}

// Result is the answer to a Query.
type Result struct {
	Path   routing.Path
	Found  bool
	Cached bool
	Alpha  float64
	Cost   float64
}

// Planner ties the routing engine to a path cache.
type Planner struct {
	mu sync.Mutex

	g     *multigraph.Graph
	cache *pathcache.Table

	alpha      float64
	evictBatch int
	logger     *slog.Logger

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	tracer         trace.Tracer
	hits           metric.Int64Counter
	misses         metric.Int64Counter
	evictions      metric.Int64Counter
}

// Option configures a Planner.
type Option func(*Planner)

// WithAlpha sets the heuristic weight of weighted queries. Default 0.5.
func WithAlpha(alpha float64) Option {
	return func(p *Planner) { p.alpha = alpha }
}

// WithEvictBatch sets how many least-used entries are evicted when the cache
// refuses a new path. Default 1.
func WithEvictBatch(n int) Option {
	return func(p *Planner) { p.evictBatch = n }
}

// WithLogger sets the logger for cache and query events.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Planner) {
		if tp != nil {
			p.tracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *Planner) {
		if mp != nil {
			p.meterProvider = mp
		}
	}
}

// New wraps g and cache.
func New(g *multigraph.Graph, cache *pathcache.Table, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cache == nil {
		return nil, ErrNilCache
	}
	p := &Planner{
		g:              g,
		cache:          cache,
		alpha:          0.5,
		evictBatch:     1,
		logger:         slog.New(slog.DiscardHandler),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if math.IsNaN(p.alpha) || p.alpha < 0 || p.alpha > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadAlpha, p.alpha)
	}
	if p.evictBatch < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadEvictBatch, p.evictBatch)
	}

	p.tracer = p.tracerProvider.Tracer(instrumentationName)
	meter := p.meterProvider.Meter(instrumentationName)
	var err error
	if p.hits, err = meter.Int64Counter("route.cache.hits",
		metric.WithDescription("Route queries answered from the path cache")); err != nil {
		return nil, err
	}
	if p.misses, err = meter.Int64Counter("route.cache.misses",
		metric.WithDescription("Route queries computed by the routing engine")); err != nil {
		return nil, err
	}
	if p.evictions, err = meter.Int64Counter("route.cache.evictions",
		metric.WithDescription("Path cache entries evicted to make room")); err != nil {
		return nil, err
	}

	return p, nil
}

// Alpha returns the heuristic weight used by weighted queries.
func (p *Planner) Alpha() float64 { return p.alpha }

// Graph returns the wrapped graph. Mutate it only through the Planner.
func (p *Planner) Graph() *multigraph.Graph { return p.g }

// Cache returns the wrapped table.
func (p *Planner) Cache() *pathcache.Table { return p.cache }

func (p *Planner) queryAlpha(weighted bool) float64 {
	if weighted {
		return p.alpha
	}

	return 0
}

// Route answers q from the cache when possible, otherwise computes the
// shortest path and caches it. A missing route is not an error: Found is
// false and nothing is cached.
func (p *Planner) Route(ctx context.Context, q Query) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, span := p.tracer.Start(ctx, "planner.Route", trace.WithAttributes(
		attribute.String("route.from", q.From),
		attribute.String("route.to", q.To),
		attribute.Bool("route.weighted", q.Weighted),
	))
	defer span.End()

	from, ok := p.g.Index(q.From)
	if !ok {
		return Result{}, fail(span, fmt.Errorf("%w: %q", multigraph.ErrVertexNotFound, q.From))
	}
	to, ok := p.g.Index(q.To)
	if !ok {
		return Result{}, fail(span, fmt.Errorf("%w: %q", multigraph.ErrVertexNotFound, q.To))
	}
	alpha := p.queryAlpha(q.Weighted)

	if seq, hit := p.cache.Find(from, to, q.Weighted, true); hit {
		p.hits.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("route.cache_hit", true))
		return p.result(routing.Path(seq), alpha, true)
	}
	p.misses.Add(ctx, 1)
	span.SetAttributes(attribute.Bool("route.cache_hit", false))

	path, found, err := routing.ShortestPath(p.g, q.From, q.To, alpha)
	if err != nil {
		return Result{}, fail(span, err)
	}
	if !found {
		return Result{Alpha: alpha}, nil
	}
	p.store(ctx, path, q.Weighted)

	return p.result(path, alpha, false)
}

// store inserts path, evicting once if the table refuses it. A path that
// still does not fit is logged and dropped.
func (p *Planner) store(ctx context.Context, path routing.Path, weighted bool) {
	_, _, err := p.cache.Insert(path, weighted)
	if errors.Is(err, pathcache.ErrCapacityExceeded) {
		n := min(p.evictBatch, p.cache.Len())
		if evErr := p.cache.RemoveLRU(n); evErr != nil {
			p.logger.WarnContext(ctx, "path cache eviction failed", "error", evErr)
			return
		}
		p.evictions.Add(ctx, int64(n))
		p.logger.DebugContext(ctx, "path cache evicted", "count", n)
		_, _, err = p.cache.Insert(path, weighted)
	}
	if err != nil {
		p.logger.WarnContext(ctx, "path not cached", "error", err, "hops", path.Hops())
	}
}

func (p *Planner) result(path routing.Path, alpha float64, cached bool) (Result, error) {
	cost, err := path.Cost(p.g, alpha)
	if err != nil {
		return Result{}, err
	}

	return Result{Path: path, Found: true, Cached: cached, Alpha: alpha, Cost: cost}, nil
}

// RouteFiltered computes the shortest path of q while ignoring every edge
// whose name is in excluded. Filtered results are never cached.
func (p *Planner) RouteFiltered(ctx context.Context, q Query, excluded []string) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, span := p.tracer.Start(ctx, "planner.RouteFiltered", trace.WithAttributes(
		attribute.String("route.from", q.From),
		attribute.String("route.to", q.To),
		attribute.Bool("route.weighted", q.Weighted),
		attribute.StringSlice("route.excluded", excluded),
	))
	defer span.End()

	alpha := p.queryAlpha(q.Weighted)
	path, found, err := routing.FilteredShortestPath(p.g, q.From, q.To, alpha, excluded)
	if err != nil {
		return Result{}, fail(span, err)
	}
	if !found {
		return Result{Alpha: alpha}, nil
	}

	return p.result(path, alpha, false)
}

// Depth returns the hop eccentricity of start restricted to edgeName.
func (p *Planner) Depth(ctx context.Context, start, edgeName string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, span := p.tracer.Start(ctx, "planner.Depth", trace.WithAttributes(
		attribute.String("route.start", start),
		attribute.String("route.edge", edgeName),
	))
	defer span.End()

	d, err := routing.MaxDepthViaEdgeName(p.g, start, edgeName)
	if err != nil {
		return 0, fail(span, err)
	}
	span.SetAttributes(attribute.Int("route.depth", d))

	return d, nil
}

// Mutual returns the number of unordered vertex pairs with edges both ways.
func (p *Planner) Mutual(ctx context.Context) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, span := p.tracer.Start(ctx, "planner.Mutual")
	defer span.End()

	return routing.BiDirectionalEdgeCount(p.g)
}

// InsertVertex adds a vertex and invalidates the cache.
func (p *Planner) InsertVertex(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.g.InsertVertex(name); err != nil {
		return err
	}
	p.invalidate("insert vertex")

	return nil
}

// RemoveVertex removes a vertex with its cascade and invalidates the cache.
func (p *Planner) RemoveVertex(name string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, err := p.g.RemoveVertex(name)
	if err != nil {
		return 0, err
	}
	p.invalidate("remove vertex")

	return n, nil
}

// AddEdge adds an edge and invalidates the cache.
func (p *Planner) AddEdge(edgeName, from, to string, w0, w1 float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.g.AddEdge(edgeName, from, to, w0, w1); err != nil {
		return err
	}
	p.invalidate("add edge")

	return nil
}

// RemoveEdge removes an edge and invalidates the cache.
func (p *Planner) RemoveEdge(edgeName, from, to string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.g.RemoveEdge(edgeName, from, to); err != nil {
		return err
	}
	p.invalidate("remove edge")

	return nil
}

func (p *Planner) invalidate(reason string) {
	dropped := p.cache.Len()
	p.cache.Invalidate()
	p.logger.Debug("path cache invalidated", "reason", reason, "dropped", dropped)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
