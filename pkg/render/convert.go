package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

const rsvgConvert = "rsvg-convert"

// ToPDF converts SVG bytes to PDF with rsvg-convert.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "-f", "pdf")
}

// ToPNG converts SVG bytes to PNG with rsvg-convert, scaled by scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(svg, "-f", "png", "-z", strconv.FormatFloat(scale, 'f', -1, 64))
}

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(rsvgConvert)
	return err == nil
}

func convert(svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath(rsvgConvert)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeUnsupported, err,
			"%s not found (install librsvg)", rsvgConvert)
	}

	var out, stderr bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", rsvgConvert, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}
