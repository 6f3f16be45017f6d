package api

import (
	"encoding/json"
	"fmt"
)

// VolumeType is a named class of volumes, e.g. backed by a particular storage backend.
type VolumeType struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	IsPublic    bool              `json:"is_public"`
	ExtraSpecs  map[string]string `json:"extra_specs"`

	Attributes Attributes `json:"-"`
}

func NewVolumeType(attrs Attributes) (VolumeType, error) {
	var t VolumeType
	if err := decodeAttributes(attrs, &t); err != nil {
		return t, fmt.Errorf("decode volume type: %w", err)
	}
	t.Attributes = attrs
	return t, nil
}

func (t *VolumeType) UnmarshalJSON(data []byte) error {
	var attrs Attributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	decoded, err := NewVolumeType(attrs)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}
