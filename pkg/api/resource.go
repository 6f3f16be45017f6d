package api

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// Attributes is the raw attribute map of a resource exactly as returned by the service.
type Attributes map[string]any

// Properties returns the attribute names sorted lexicographically and the corresponding values in the same order.
func (a Attributes) Properties() ([]string, []any) {
	names := slices.Sorted(maps.Keys(a))
	values := make([]any, len(names))
	for i, name := range names {
		values[i] = a[name]
	}
	return names, values
}

// decodeAttributes decodes the attribute map into a typed resource struct using its json tags.
// Unknown attributes are ignored, they remain available in the Attributes map.
func decodeAttributes(attrs Attributes, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	return decoder.Decode(map[string]any(attrs))
}

// Resource is a service resource that can be looked up by its name or ID.
type Resource interface {
	GetID() string
	GetName() string
}

func (g ConsistencyGroup) GetID() string   { return g.ID }
func (g ConsistencyGroup) GetName() string { return g.Name }
func (t VolumeType) GetID() string         { return t.ID }
func (t VolumeType) GetName() string       { return t.Name }
