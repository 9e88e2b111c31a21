package pipeline

import (
	"github.com/matzehuels/cansdash/pkg/dashboard"
	"github.com/matzehuels/cansdash/pkg/io"
)

// LoadData imports the dataset at path, or returns the bundled sample when
// path is empty.
func LoadData(path string) (dashboard.Data, error) {
	if path == "" {
		return dashboard.Sample(), nil
	}
	return io.ImportData(path)
}
