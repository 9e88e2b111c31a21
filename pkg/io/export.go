package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// WriteData encodes d to w in the given format. The output can be read
// back with [ReadData].
func WriteData(w io.Writer, d dashboard.Data, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return cerrors.New(cerrors.ErrCodeInvalidFormat, "unsupported data format %q", format)
	}
	return nil
}

// ExportData writes d to path in the format named by its extension.
func ExportData(path string, d dashboard.Data) error {
	if err := cerrors.ValidateOutputPath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteData(f, d, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
