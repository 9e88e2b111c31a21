// Package styles defines chart themes.
//
// Layout primitives carry color tokens rather than concrete colors. A token
// is either a literal hex color, passed through unchanged, or a theme name
// such as "text" or "axis" that a [Theme] resolves when a sink draws it.
package styles

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultFont is the CSS font stack used for chart text.
const DefaultFont = "Inter, system-ui, -apple-system, sans-serif"

const barHoverCSS = `
    .bar, .segment { transition: opacity 0.15s ease; }
    .bar:hover, .segment:hover { opacity: 1 !important; }
    .ribbon { transition: stroke-opacity 0.15s ease; }
    .ribbon:hover { stroke-opacity: 0.6; }`

// Theme maps color tokens to concrete colors.
type Theme struct {
	Name       string
	Background string
	Font       string
	Colors     map[string]string
}

// Dark is the slate dashboard theme.
func Dark() Theme {
	return Theme{
		Name:       ThemeDark,
		Background: "#0f172a",
		Font:       DefaultFont,
		Colors: map[string]string{
			layout.TokenText:      "#e2e8f0",
			layout.TokenMuted:     "#94a3b8",
			layout.TokenFaint:     "#64748b",
			layout.TokenAxis:      "#475569",
			layout.TokenGrid:      "#334155",
			layout.TokenReference: "#fbbf24",
			layout.TokenMarker:    "#ef4444",
			layout.TokenInverse:   "#ffffff",
			layout.TokenSurface:   "#1e293b",
		},
	}
}

// Light is a print-friendly theme.
func Light() Theme {
	return Theme{
		Name:       ThemeLight,
		Background: "#ffffff",
		Font:       DefaultFont,
		Colors: map[string]string{
			layout.TokenText:      "#0f172a",
			layout.TokenMuted:     "#475569",
			layout.TokenFaint:     "#94a3b8",
			layout.TokenAxis:      "#94a3b8",
			layout.TokenGrid:      "#e2e8f0",
			layout.TokenReference: "#d97706",
			layout.TokenMarker:    "#dc2626",
			layout.TokenInverse:   "#ffffff",
			layout.TokenSurface:   "#ffffff",
		},
	}
}

var themes = map[string]func() Theme{
	ThemeDark:  Dark,
	ThemeLight: Light,
}

// Names lists the built-in themes.
func Names() []string {
	return slices.Sorted(maps.Keys(themes))
}

// ByName returns a built-in theme. The empty name selects Dark.
func ByName(name string) (Theme, error) {
	if name == "" {
		return Dark(), nil
	}
	fn, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, cerrors.New(cerrors.ErrCodeInvalidTheme,
			"unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}

// Resolve returns the concrete color for a token. Hex colors and unknown
// names pass through unchanged; the empty token is "none".
func (t Theme) Resolve(token string) string {
	if token == "" {
		return layout.TokenNone
	}
	if strings.HasPrefix(token, "#") {
		return token
	}
	if c, ok := t.Colors[token]; ok {
		return c
	}
	return token
}

// RenderDefs writes the shared <style> block.
func (t Theme) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <defs>\n    <style>\n    text { font-family: %s; }%s\n    </style>\n  </defs>\n",
		EscapeXML(t.Font), barHoverCSS)
}
