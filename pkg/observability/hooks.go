// Package observability lets a binary observe chart rendering, the artifact
// cache and the HTTP shell without the libraries depending on a metrics
// backend.
//
// Libraries emit events through the registered hooks:
//
//	observability.Pipeline().OnLayoutStart(ctx, "compare")
//
// and main registers implementations once at startup:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
// The defaults are no-ops.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Hook interfaces
// =============================================================================

// PipelineHooks receives chart layout and render events, one pair per view.
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, view string)
	OnLayoutComplete(ctx context.Context, view string, primitives int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, view string, formats []string)
	OnRenderComplete(ctx context.Context, view string, formats []string, duration time.Duration, err error)
}

// CacheHooks receives artifact cache events. kind names the entry type,
// e.g. "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

// HTTPHooks receives one event per request served by the HTTP shell. route
// is the matched pattern, not the raw path.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

// =============================================================================
// No-ops
// =============================================================================

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, string)                                    {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Registry
// =============================================================================

var (
	hooksMu       sync.RWMutex
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
)

// SetPipelineHooks registers h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
