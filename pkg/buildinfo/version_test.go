package buildinfo

import (
	"strings"
	"testing"
)

func TestGetPrefersLdflags(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02T00:00:00Z"
	got := Get()
	want := Info{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02T00:00:00Z"}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if s := got.String(); !strings.Contains(s, "version: v1.2.3") || !strings.Contains(s, "commit: abc123") {
		t.Errorf("String() = %q", s)
	}
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", tmpl)
	}
}
