package io

import (
	"path/filepath"
	"strings"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// Format is a dataset file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var extFormats = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", cerrors.New(cerrors.ErrCodeInvalidFormat,
		"unsupported data file extension %q (want .json, .yaml, .yml or .toml)", ext)
}

// ParseFormat parses a format name such as "yaml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", cerrors.New(cerrors.ErrCodeInvalidFormat, "unsupported data format %q", s)
}
