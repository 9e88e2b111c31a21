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

// ReadData decodes a dataset from r in the given format and validates it.
//
// ReadData returns INVALID_FORMAT for an unknown format, INVALID_INPUT for
// malformed input, and the codes of [dashboard.Data.Validate] for data that
// decodes but cannot be drawn. ReadData does not close r.
func ReadData(r io.Reader, format Format) (dashboard.Data, error) {
	var d dashboard.Data
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&d)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(&d)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %s", undecoded[0])
			}
		}
	default:
		return dashboard.Data{}, cerrors.New(cerrors.ErrCodeInvalidFormat, "unsupported data format %q", format)
	}
	if err != nil {
		return dashboard.Data{}, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "decode %s", format)
	}

	if err := d.Validate(); err != nil {
		return dashboard.Data{}, err
	}
	return d, nil
}

// ImportData reads the dataset file at path, choosing the decoder from its
// extension. A missing file is FILE_NOT_FOUND.
func ImportData(path string) (dashboard.Data, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return dashboard.Data{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dashboard.Data{}, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "data file %s", path)
		}
		return dashboard.Data{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadData(f, format)
	if err != nil {
		return dashboard.Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
