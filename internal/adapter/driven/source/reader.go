package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/normalize"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

// Scope restringe a leitura quando a origem sabe filtrar na fonte.
type Scope struct {
	BranchID *int64
}

// RowReader loads the rows stored at one location.
type RowReader interface {
	ReadRows(ctx context.Context, location string, scope Scope) ([]normalize.Row, error)
}

// Esquemas de localização suportados.
const (
	SchemeFile  = "file"
	SchemeS3    = "s3"
	SchemeMySQL = "mysql"
)

// SchemeOf returns the scheme of a location; plain paths are files.
func SchemeOf(location string) string {
	if i := strings.Index(location, "://"); i > 0 {
		return strings.ToLower(location[:i])
	}
	return SchemeFile
}

// FileReader reads JSON, CSV or YAML files from the local disk.
type FileReader struct{}

// ReadRows implementa RowReader.
func (FileReader) ReadRows(ctx context.Context, location string, _ Scope) ([]normalize.Row, error) {
	p := strings.TrimPrefix(location, "file://")

	format, err := FormatFromName(p)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Clean(p))
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", p, err)
	}
	defer file.Close()

	rows, err := DecodeRows(format, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return rows, nil
}

func unsupported(location string) error {
	return fmt.Errorf("%w: %s", types.ErrUnsupportedSource, location)
}
