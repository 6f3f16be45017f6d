package consistencygroup

import (
	"context"
	"errors"

	"github.com/psviderski/blockctl/pkg/api"
)

type deleteCall struct {
	id    string
	force bool
}

// fakeService is an in-memory block storage service. Unimplemented methods panic through the nil embedded client.
type fakeService struct {
	api.Client
	groups      []api.ConsistencyGroup
	volumeTypes []api.VolumeType
	listErr     error
	deleteErr   map[string]error

	created     []api.ConsistencyGroupCreateRequest
	createdFrom []api.ConsistencyGroupFromSourceRequest
	deleted     []deleteCall
	listOpts    []api.ConsistencyGroupListOptions
	getCalls    int
}

func notFound() error {
	return &api.ServiceError{StatusCode: 404, Kind: "itemNotFound", Message: "not found"}
}

func (f *fakeService) GetConsistencyGroup(_ context.Context, id string) (api.ConsistencyGroup, error) {
	f.getCalls++
	for _, g := range f.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return api.ConsistencyGroup{}, notFound()
}

func (f *fakeService) ListConsistencyGroups(
	_ context.Context, opts api.ConsistencyGroupListOptions,
) ([]api.ConsistencyGroup, error) {
	f.listOpts = append(f.listOpts, opts)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if opts.Name == "" {
		return f.groups, nil
	}
	var groups []api.ConsistencyGroup
	for _, g := range f.groups {
		if g.Name == opts.Name {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

func (f *fakeService) CreateConsistencyGroup(
	_ context.Context, req api.ConsistencyGroupCreateRequest,
) (api.ConsistencyGroup, error) {
	f.created = append(f.created, req)
	return api.NewConsistencyGroup(api.Attributes{
		"id":                "cg-new",
		"name":              req.Name,
		"description":       req.Description,
		"availability_zone": req.AvailabilityZone,
		"status":            api.ConsistencyGroupStatusCreating,
		"volume_types":      []any{req.VolumeTypeID},
	})
}

func (f *fakeService) CreateConsistencyGroupFromSource(
	_ context.Context, req api.ConsistencyGroupFromSourceRequest,
) (api.ConsistencyGroup, error) {
	f.createdFrom = append(f.createdFrom, req)
	return api.NewConsistencyGroup(api.Attributes{
		"id":     "cg-clone",
		"name":   req.Name,
		"status": api.ConsistencyGroupStatusCreating,
	})
}

func (f *fakeService) DeleteConsistencyGroup(_ context.Context, id string, force bool) error {
	f.deleted = append(f.deleted, deleteCall{id: id, force: force})
	if err, ok := f.deleteErr[id]; ok {
		return err
	}
	return nil
}

func (f *fakeService) GetVolumeType(_ context.Context, id string) (api.VolumeType, error) {
	for _, vt := range f.volumeTypes {
		if vt.ID == id {
			return vt, nil
		}
	}
	return api.VolumeType{}, notFound()
}

func (f *fakeService) ListVolumeTypes(context.Context) ([]api.VolumeType, error) {
	return f.volumeTypes, nil
}

var errServiceUnavailable = errors.New("service unavailable")
