package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/psviderski/blockctl/pkg/api"
)

// GetVolumeType returns the volume type with the given ID. It returns an error matching api.ErrNotFound
// if the type doesn't exist.
func (c *Client) GetVolumeType(ctx context.Context, id string) (api.VolumeType, error) {
	seg, err := idSegment(id)
	if err != nil {
		return api.VolumeType{}, fmt.Errorf("volume type '%s': %w", id, err)
	}

	var resp struct {
		VolumeType *api.VolumeType `json:"volume_type"`
	}
	if err = c.do(ctx, http.MethodGet, []string{"types", seg}, nil, nil, &resp); err != nil {
		return api.VolumeType{}, err
	}
	if resp.VolumeType == nil || resp.VolumeType.ID == "" {
		return api.VolumeType{}, fmt.Errorf("volume type '%s': %w", id, api.ErrNotFound)
	}
	return *resp.VolumeType, nil
}

// ListVolumeTypes returns the volume types visible to the project.
func (c *Client) ListVolumeTypes(ctx context.Context) ([]api.VolumeType, error) {
	var resp struct {
		VolumeTypes []api.VolumeType `json:"volume_types"`
	}
	if err := c.do(ctx, http.MethodGet, []string{"types"}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.VolumeTypes, nil
}
