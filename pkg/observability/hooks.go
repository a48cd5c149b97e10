// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module emit events through the registered hooks; the
// defaults do nothing. The CLI registers [LogPipelineHooks] and
// [LogCacheHooks] at debug verbosity so each stage reports its timing.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnReshapeStart(ctx, prefix)
//	// ... reshape ...
//	observability.Pipeline().OnReshapeComplete(ctx, prefix, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the plotting pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, rows int, duration time.Duration, err error)

	// Reshape events
	OnReshapeStart(ctx context.Context, prefix string)
	OnReshapeComplete(ctx context.Context, prefix string, rows int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, kind string, categories int)
	OnRenderComplete(ctx context.Context, kind string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnReshapeStart(context.Context, string)                             {}
func (NoopPipelineHooks) OnReshapeComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, int)                         {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)       {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Logging Implementations
// =============================================================================

// LogPipelineHooks writes stage timings to a logger at debug level.
type LogPipelineHooks struct {
	Logger *log.Logger
}

func (h LogPipelineHooks) OnLoadStart(_ context.Context, path string) {
	h.Logger.Debug("load start", "path", path)
}

func (h LogPipelineHooks) OnLoadComplete(_ context.Context, path string, rows int, d time.Duration, err error) {
	h.Logger.Debug("load complete", "path", path, "rows", rows, "took", d, "err", err)
}

func (h LogPipelineHooks) OnReshapeStart(_ context.Context, prefix string) {
	h.Logger.Debug("reshape start", "prefix", prefix)
}

func (h LogPipelineHooks) OnReshapeComplete(_ context.Context, prefix string, rows int, d time.Duration, err error) {
	h.Logger.Debug("reshape complete", "prefix", prefix, "rows", rows, "took", d, "err", err)
}

func (h LogPipelineHooks) OnRenderStart(_ context.Context, kind string, categories int) {
	h.Logger.Debug("render start", "kind", kind, "categories", categories)
}

func (h LogPipelineHooks) OnRenderComplete(_ context.Context, kind string, d time.Duration, err error) {
	h.Logger.Debug("render complete", "kind", kind, "took", d, "err", err)
}

// LogCacheHooks writes cache events to a logger at debug level.
type LogCacheHooks struct {
	Logger *log.Logger
}

func (h LogCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h LogCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h LogCacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
