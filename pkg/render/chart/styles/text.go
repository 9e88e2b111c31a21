package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

const charWidthRatio = 0.55

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// TextWidth estimates the rendered width of s at fontSize.
func TextWidth(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * charWidthRatio
}

// TruncateLabel shortens label to fit within width at fontSize, ending it
// with "..". At least three characters are kept.
func TruncateLabel(label string, width, fontSize float64) string {
	maxChars := max(3, int(width/(fontSize*charWidthRatio)))
	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	return string(runes[:maxChars-2]) + ".."
}
