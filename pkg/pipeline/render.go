package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/architecture"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
	"github.com/matzehuels/cansdash/pkg/render/chart/sink"
	"github.com/matzehuels/cansdash/pkg/render/chart/styles"
)

// errSkipFormat marks a format the view has no rendering for, such as an
// interactive page for the card grid. Callers skip the format.
var errSkipFormat = errors.New("format not available for view")

// IsSkipped reports whether err means the format was skipped.
func IsSkipped(err error) bool { return errors.Is(err, errSkipFormat) }

// RenderFormat renders one artifact of a laid-out chart. opts must be
// validated.
func RenderFormat(c layout.Chart, opts Options, format string) ([]byte, error) {
	if opts.tab == dashboard.TabArchitecture {
		return renderArchitecture(opts.Data.Architecture, opts, format)
	}

	theme, err := styles.ByName(opts.Theme)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithTheme(theme), sink.WithTooltips(), sink.WithBackground()}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(c, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(c, sink.WithPNGTheme(theme), sink.WithPNGScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(c, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(c, sink.WithJSONTheme(opts.Theme), sink.WithJSONIndent())
	case FormatHTML:
		out, err := dashboard.RenderInteractive(*opts.Data, opts.tab)
		if cerrors.Is(err, cerrors.ErrCodeUnsupported) {
			return nil, fmt.Errorf("%s %s: %w", opts.View, format, errSkipFormat)
		}
		return out, err
	}
	return nil, ValidateFormat(format)
}

func renderArchitecture(d architecture.Diagram, opts Options, format string) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		return architecture.RenderSVG(architecture.ToDOT(d))
	case FormatPNG:
		return architecture.RenderPNG(architecture.ToDOT(d), opts.Scale)
	case FormatPDF:
		return architecture.RenderPDF(architecture.ToDOT(d))
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatHTML:
		return nil, fmt.Errorf("%s %s: %w", opts.View, format, errSkipFormat)
	}
	return nil, ValidateFormat(format)
}
