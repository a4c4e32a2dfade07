package client

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Format is the rendering of command results on stdout.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formatter writes data to w in one output format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format. Matching is case-insensitive.
func NewFormatter(format string) (Formatter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatJSON, "":
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want json, yaml or table)", ErrUnknownFormat, format)
	}
}

// JSONFormatter formats data as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// YAMLFormatter formats data as YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// TableFormatter draws data as a bordered table. A list of objects becomes
// one row per object with the union of their keys as columns; a single object
// becomes KEY/VALUE rows. Nested values are printed as compact JSON.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, data any) error {
	// Round-trip through JSON so every result type is reduced to maps,
	// slices and scalars named by their json tags.
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var generic any
	if err = json.Unmarshal(b, &generic); err != nil {
		return err
	}

	var headers []string
	var rows [][]string

	switch v := generic.(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		headers = columns(v)
		for _, item := range v {
			obj, _ := item.(map[string]any)
			row := make([]string, len(headers))
			for i, h := range headers {
				row[i] = cell(obj[h])
			}
			rows = append(rows, row)
		}
	case map[string]any:
		headers = []string{"KEY", "VALUE"}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, []string{k, cell(v[k])})
		}
	default:
		_, err = fmt.Fprintln(w, cell(v))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err = fmt.Fprintln(w, t.String())
	return err
}

func columns(items []any) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			seen[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
