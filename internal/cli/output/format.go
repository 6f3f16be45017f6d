package output

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// FormatValue renders an attribute value for a table cell. Lists are comma-separated and maps are rendered
// as key='value' pairs sorted by key.
func FormatValue(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ""
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	case reflect.Map:
		items := make(map[string]string, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			items[fmt.Sprint(iter.Key().Interface())] = FormatValue(iter.Value().Interface())
		}
		parts := make([]string, 0, len(items))
		for _, k := range slices.Sorted(maps.Keys(items)) {
			parts = append(parts, fmt.Sprintf("%s='%s'", k, items[k]))
		}
		return strings.Join(parts, ", ")
	case reflect.Ptr:
		if rv.IsNil() {
			return ""
		}
		return FormatValue(rv.Elem().Interface())
	default:
		return fmt.Sprint(v)
	}
}

// FormatList renders a list value as its sorted elements separated with commas. Non-list values are rendered
// with FormatValue.
func FormatList(v any) any {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return FormatValue(v)
	}

	items := make([]string, rv.Len())
	for i := range items {
		items[i] = FormatValue(rv.Index(i).Interface())
	}
	slices.Sort(items)
	return strings.Join(items, ", ")
}

// Formatter transforms an attribute value before it's added to a row.
type Formatter func(v any) any

// ItemProperties extracts the attributes named by the column headers from a resource attribute map.
// A header is mapped to the attribute name by lowercasing it and replacing spaces with underscores,
// e.g. "Availability Zone" -> "availability_zone". Missing attributes are rendered as empty strings.
func ItemProperties(attrs map[string]any, columns []string, formatters map[string]Formatter) []any {
	row := make([]any, len(columns))
	for i, col := range columns {
		field := strings.ReplaceAll(strings.ToLower(col), " ", "_")
		v, ok := attrs[field]
		if !ok {
			v = ""
		}
		if f, ok := formatters[col]; ok {
			v = f(v)
		}
		row[i] = v
	}
	return row
}
