package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level; failures are
// logged as warnings. It implements all three hook interfaces.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or to the default logger
// when nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger.WithPrefix("obs")}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, view string) {
	h.logger.Debug("layout start", "view", view)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, view string, primitives int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("layout failed", "view", view, "err", err)
		return
	}
	h.logger.Debug("layout done", "view", view, "primitives", primitives, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, view string, formats []string) {
	h.logger.Debug("render start", "view", view, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, view string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "view", view, "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render done", "view", view, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h *LogHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	if status >= 500 {
		h.logger.Warn("response", "method", method, "route", route, "status", status, "duration", d)
		return
	}
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
