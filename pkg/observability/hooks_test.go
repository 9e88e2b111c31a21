package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooks(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, "compare")
	p.OnLayoutComplete(ctx, "compare", 40, time.Millisecond, nil)
	p.OnRenderStart(ctx, "compare", []string{"svg"})
	p.OnRenderComplete(ctx, "compare", []string{"svg"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/views/{view}/{format}")
	h.OnResponse(ctx, "GET", "/views/{view}/{format}", 200, time.Millisecond)
}

func TestRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() default is not a no-op")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() default is not a no-op")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() default is not a no-op")
	}

	hooks := NewLogHooks(log.New(&bytes.Buffer{}))
	SetPipelineHooks(hooks)
	SetCacheHooks(hooks)
	SetHTTPHooks(hooks)
	if Pipeline() != PipelineHooks(hooks) || Cache() != CacheHooks(hooks) || HTTP() != HTTPHooks(hooks) {
		t.Error("Set*Hooks() did not register")
	}

	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(hooks) {
		t.Error("SetPipelineHooks(nil) replaced the hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() did not restore the no-op")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnLayoutComplete(ctx, "trends", 0, 0, errors.New("boom"))
	h.OnCacheSet(ctx, "artifact", 512)
	h.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"layout failed", "view=trends", "cache set", "bytes=512", "route=/healthz"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
