package api

import (
	"encoding/json"
	"fmt"
)

const (
	ConsistencyGroupStatusAvailable = "available"
	ConsistencyGroupStatusCreating  = "creating"
	ConsistencyGroupStatusDeleting  = "deleting"
	ConsistencyGroupStatusError     = "error"
)

// ConsistencyGroup is a collection of volumes that can be snapshotted together atomically.
type ConsistencyGroup struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	AvailabilityZone string `json:"availability_zone"`
	Status           string `json:"status"`
	// VolumeTypes contains the IDs of the volume types the group supports.
	VolumeTypes []string `json:"volume_types"`
	CreatedAt   string   `json:"created_at"`

	// Attributes holds every attribute returned by the service including the typed ones above.
	Attributes Attributes `json:"-"`
}

// NewConsistencyGroup decodes a consistency group from its raw attribute map.
func NewConsistencyGroup(attrs Attributes) (ConsistencyGroup, error) {
	var g ConsistencyGroup
	if err := decodeAttributes(attrs, &g); err != nil {
		return g, fmt.Errorf("decode consistency group: %w", err)
	}
	g.Attributes = attrs
	return g, nil
}

// Properties returns the sorted attribute names and values of the group as returned by the service.
func (g ConsistencyGroup) Properties() ([]string, []any) {
	return g.AllAttributes().Properties()
}

// AllAttributes returns the attributes returned by the service or the typed fields if the group wasn't
// decoded from a service response.
func (g ConsistencyGroup) AllAttributes() Attributes {
	if g.Attributes != nil {
		return g.Attributes
	}
	return Attributes{
		"id":                g.ID,
		"name":              g.Name,
		"description":       g.Description,
		"availability_zone": g.AvailabilityZone,
		"status":            g.Status,
		"volume_types":      g.VolumeTypes,
		"created_at":        g.CreatedAt,
	}
}

func (g ConsistencyGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.AllAttributes())
}

func (g *ConsistencyGroup) UnmarshalJSON(data []byte) error {
	var attrs Attributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	decoded, err := NewConsistencyGroup(attrs)
	if err != nil {
		return err
	}
	*g = decoded
	return nil
}

// ConsistencyGroupCreateRequest defines a new consistency group for the given volume type.
type ConsistencyGroupCreateRequest struct {
	VolumeTypeID     string
	Name             string
	Description      string
	AvailabilityZone string
}

// ConsistencyGroupFromSourceRequest defines a new consistency group cloned from an existing group or
// a consistency group snapshot.
type ConsistencyGroupFromSourceRequest struct {
	// SnapshotID is the ID of a consistency group snapshot to create the group from.
	SnapshotID *string
	// SourceGroupID is the ID of an existing consistency group to clone.
	SourceGroupID string
	Name          string
	Description   string
}

// ConsistencyGroupListOptions defines the options for listing consistency groups.
type ConsistencyGroupListOptions struct {
	// Detailed requests the full attribute set of each group.
	Detailed bool
	// AllTenants lists the groups of all projects. The service only allows it for admins.
	AllTenants bool
	// Name filters groups by their exact name.
	Name string
}
