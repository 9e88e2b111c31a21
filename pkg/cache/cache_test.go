package cache

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set() error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get() = %q, %v, %v, want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}

	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Fatal("Get() on empty cache hit")
	}
	if err := c.Set(ctx, "svg", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, hit, err := c.Get(ctx, "svg")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Errorf("Get() = %q, %v, %v, want <svg/>", data, hit, err)
	}

	if err := c.Delete(ctx, "svg"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Error("Get() after Delete() hit")
	}
	if err := c.Delete(ctx, "svg"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry hit")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl missed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("x"), 0)
	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = %v, %v, want miss", hit, err)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	if err := Clear(ctx, c); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("Clear() left %d entries", len(entries))
	}
	if err := Clear(ctx, NewNullCache()); err != nil {
		t.Errorf("Clear(null) error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("hello"))
	if h != Hash([]byte("hello")) {
		t.Error("Hash() is not deterministic")
	}
	if h == Hash([]byte("world")) {
		t.Error("Hash() collides on different inputs")
	}
	if len(h) != 64 {
		t.Errorf("len(Hash()) = %d, want 64", len(h))
	}

	a, _ := HashValue(map[string]int{"x": 1, "y": 2})
	b, _ := HashValue(map[string]int{"y": 2, "x": 1})
	if a != b {
		t.Error("HashValue() depends on map order")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	if got := k.DataKey("abc"); got != "data:abc" {
		t.Errorf("DataKey() = %q, want data:abc", got)
	}

	base := ArtifactKeyOpts{View: "compare", Format: "svg", Width: 700, Height: 440, Theme: "dark"}
	key := k.ArtifactKey("abc", base)
	if !strings.HasPrefix(key, "artifact:") {
		t.Errorf("ArtifactKey() = %q, want artifact: prefix", key)
	}
	if key != k.ArtifactKey("abc", base) {
		t.Error("ArtifactKey() is not deterministic")
	}

	variants := []ArtifactKeyOpts{base, base, base, base}
	variants[0].Format = "png"
	variants[1].View = "trends"
	variants[2].Theme = "light"
	variants[3].Selected = 3
	for _, v := range variants {
		if k.ArtifactKey("abc", v) == key {
			t.Errorf("ArtifactKey(%+v) collides with base", v)
		}
	}
	if k.ArtifactKey("def", base) == key {
		t.Error("ArtifactKey() ignores the data hash")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "staging:")
	if got := scoped.DataKey("abc"); got != "staging:data:abc" {
		t.Errorf("DataKey() = %q, want staging:data:abc", got)
	}
	inner := NewDefaultKeyer().ArtifactKey("abc", ArtifactKeyOpts{Format: "svg"})
	if got := scoped.ArtifactKey("abc", ArtifactKeyOpts{Format: "svg"}); got != "staging:"+inner {
		t.Errorf("ArtifactKey() = %q, want staging:%s", got, inner)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) != nil")
	}
	err := Retryable(ErrNetwork)
	if !IsRetryable(err) || !errors.Is(err, ErrNetwork) {
		t.Errorf("Retryable(ErrNetwork) = %v, want retryable wrapping ErrNetwork", err)
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), ErrNetwork.Error())
	}
	if IsRetryable(ErrNetwork) {
		t.Error("IsRetryable(plain) = true")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	defer func(d time.Duration) { backoff = d }(backoff)
	backoff = time.Millisecond
	ctx := context.Background()
	permanent := errors.New("permanent")

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   error
	}{
		{"success", 0, nil, 1, nil},
		{"permanent", 5, permanent, 1, permanent},
		{"recovers", 1, Retryable(ErrNetwork), 2, nil},
		{"gives up", 5, Retryable(ErrNetwork), 3, ErrNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := RetryWithBackoff(ctx, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RetryWithBackoff() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetryWithBackoffCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RetryWithBackoff(ctx, func() error { return Retryable(ErrNetwork) })
	if err != context.Canceled {
		t.Errorf("RetryWithBackoff() = %v, want context.Canceled", err)
	}
}

func TestNewRedisCacheCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("NewRedisCache() with canceled context succeeded")
	}
}
