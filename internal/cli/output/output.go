package output

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats is the list of supported output formats to use in flag descriptions.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format '%s': must be one of %v", format, Formats)
	}
}

// Column defines how to render a specific field from the data for the Table view.
type Column[T any] struct {
	// Header is the column title.
	Header string
	// Accessor extracts the value from the row object and formats it for the table.
	// If Accessor is provided, it takes precedence over Field.
	Accessor func(row T) string
	// Field is the name of the struct field to extract value from.
	// It is used if Accessor is nil.
	Field string
}

// Print renders a slice of structs as a table using the columns, or as JSON or YAML as is.
func Print[T any](w io.Writer, data []T, columns []Column[T], format string) error {
	switch format {
	case FormatJSON:
		return printJSON(w, data)
	case FormatYAML:
		return printYAML(w, data)
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	t := newTable(headers...)
	for _, item := range data {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = getValue(item, col)
		}
		t.Row(row...)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// PrintProperties renders a single resource given as parallel slices of attribute names and values.
// The table format has one row per attribute.
func PrintProperties(w io.Writer, columns []string, values []any, format string) error {
	if len(columns) != len(values) {
		return fmt.Errorf("output.PrintProperties: %d columns but %d values", len(columns), len(values))
	}

	switch format {
	case FormatJSON:
		return printJSON(w, orderedObject{keys: columns, values: values})
	case FormatYAML:
		return printYAML(w, mapSlice(columns, values))
	}

	t := newTable("FIELD", "VALUE")
	for i, col := range columns {
		t.Row(col, FormatValue(values[i]))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// PrintRows renders rows produced by the sequence under the column headers. The sequence is consumed once.
func PrintRows(w io.Writer, columns []string, rows iter.Seq[[]any], format string) error {
	switch format {
	case FormatJSON:
		var objects []orderedObject
		for row := range rows {
			objects = append(objects, orderedObject{keys: columns, values: row})
		}
		if objects == nil {
			objects = []orderedObject{}
		}
		return printJSON(w, objects)
	case FormatYAML:
		objects := []yaml.MapSlice{}
		for row := range rows {
			objects = append(objects, mapSlice(columns, row))
		}
		return printYAML(w, objects)
	}

	t := newTable(columns...)
	for row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = FormatValue(v)
		}
		t.Row(cells...)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.Border{}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(3)
			}
			return lipgloss.NewStyle().PaddingRight(3)
		}).
		Headers(headers...)
}

func printJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
	return encoder.Encode(data)
}

// orderedObject is a JSON object that keeps the order of its keys.
type orderedObject struct {
	keys   []string
	values []any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, k := range o.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		var v any
		if i < len(o.values) {
			v = o.values[i]
		}
		value, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal '%s': %w", k, err)
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}'), nil
}

func mapSlice(keys []string, values []any) yaml.MapSlice {
	ms := make(yaml.MapSlice, len(keys))
	for i, k := range keys {
		ms[i] = yaml.MapItem{Key: k}
		if i < len(values) {
			ms[i].Value = values[i]
		}
	}
	return ms
}

func getValue[T any](row T, col Column[T]) string {
	if col.Accessor != nil {
		return col.Accessor(row)
	}

	if col.Field == "" {
		return ""
	}

	v := reflect.ValueOf(row)
	// If it's a pointer, dereference it
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	f := v.FieldByName(col.Field)
	if !f.IsValid() {
		return ""
	}

	// Handle pointers
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return "-"
		}
		f = f.Elem()
	}
	return FormatValue(f.Interface())
}
