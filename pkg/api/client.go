package api

import "context"

type Client interface {
	ConsistencyGroupClient
	VolumeTypeClient
}

type ConsistencyGroupClient interface {
	CreateConsistencyGroup(ctx context.Context, req ConsistencyGroupCreateRequest) (ConsistencyGroup, error)
	CreateConsistencyGroupFromSource(
		ctx context.Context, req ConsistencyGroupFromSourceRequest,
	) (ConsistencyGroup, error)
	DeleteConsistencyGroup(ctx context.Context, id string, force bool) error
	GetConsistencyGroup(ctx context.Context, id string) (ConsistencyGroup, error)
	ListConsistencyGroups(ctx context.Context, opts ConsistencyGroupListOptions) ([]ConsistencyGroup, error)
}

type VolumeTypeClient interface {
	GetVolumeType(ctx context.Context, id string) (VolumeType, error)
	ListVolumeTypes(ctx context.Context) ([]VolumeType, error)
}
