package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/normalize"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

// Format identifica o formato de um arquivo de registros.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// FormatFromName deduz o formato pela extensão do arquivo ou da chave do objeto.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, name)
	}
}

// DecodeRows reads a collection of loosely typed rows.
//
// JSON accepts either a top-level array or an object wrapping it under "data", "items" or
// "results", which is how the inventory service pages its responses. CSV needs a header row.
func DecodeRows(format Format, r io.Reader) ([]normalize.Row, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatCSV:
		return decodeCSV(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, format)
	}
}

func decodeJSON(r io.Reader) ([]normalize.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON records: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []normalize.Row{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if data[0] == '[' {
		var rows []normalize.Row
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("error parsing JSON records: %w", err)
		}
		return compact(rows), nil
	}

	var envelope map[string]json.RawMessage
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("error parsing JSON records: %w", err)
	}
	for _, key := range []string{"data", "items", "results"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		return decodeJSON(bytes.NewReader(raw))
	}
	return nil, fmt.Errorf("error parsing JSON records: expected an array or a data/items/results envelope")
}

func decodeCSV(r io.Reader) ([]normalize.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []normalize.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")))
	}

	rows := []normalize.Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}
		row := make(normalize.Row, len(header))
		for i, name := range header {
			if i >= len(record) || name == "" {
				continue
			}
			if v := strings.TrimSpace(record[i]); v != "" {
				row[name] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeYAML(r io.Reader) ([]normalize.Row, error) {
	var rows []normalize.Row
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		if err == io.EOF {
			return []normalize.Row{}, nil
		}
		return nil, fmt.Errorf("error parsing YAML records: %w", err)
	}
	return compact(rows), nil
}

// compact descarta elementos nulos da coleção.
func compact(rows []normalize.Row) []normalize.Row {
	out := make([]normalize.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			out = append(out, row)
		}
	}
	return out
}
