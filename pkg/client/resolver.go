package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/psviderski/blockctl/pkg/api"
)

type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupAmbiguous
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not found"
	case LookupAmbiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("LookupStatus(%d)", int(s))
	}
}

// Lookup is the outcome of resolving a name or ID to exactly one resource.
type Lookup[T api.Resource] struct {
	Status LookupStatus
	// Kind is a human-readable resource kind used in error messages.
	Kind  string
	Token string
	// Found is only set when Status is LookupFound.
	Found T
}

// Resource returns the found resource or an *api.LookupError if the token didn't resolve to exactly one resource.
func (l Lookup[T]) Resource() (T, error) {
	var zero T
	switch l.Status {
	case LookupFound:
		return l.Found, nil
	case LookupAmbiguous:
		return zero, &api.LookupError{Kind: l.Kind, Token: l.Token, Err: api.ErrAmbiguous}
	default:
		return zero, &api.LookupError{Kind: l.Kind, Token: l.Token, Err: api.ErrNotFound}
	}
}

// Finder resolves names and IDs of a single resource kind.
type Finder[T api.Resource] struct {
	Kind string
	// Get returns the resource with the given ID or an error matching api.ErrNotFound.
	Get func(ctx context.Context, id string) (T, error)
	// List returns candidate resources for the name. It may return resources with other names.
	List func(ctx context.Context, name string) ([]T, error)
}

// Find resolves the token as an ID first and then as an exact name. A NotFound or Ambiguous outcome is reported
// in the returned Lookup, the error is only returned if the service request itself failed.
func (f Finder[T]) Find(ctx context.Context, token string) (Lookup[T], error) {
	lookup := Lookup[T]{Status: LookupNotFound, Kind: f.Kind, Token: token}
	if token == "" {
		return lookup, nil
	}

	res, err := f.Get(ctx, token)
	if err == nil {
		lookup.Status = LookupFound
		lookup.Found = res
		return lookup, nil
	}
	if !errors.Is(err, api.ErrNotFound) {
		return lookup, fmt.Errorf("get %s '%s': %w", f.Kind, token, err)
	}

	candidates, err := f.List(ctx, token)
	if err != nil {
		return lookup, fmt.Errorf("list %ss: %w", f.Kind, err)
	}
	var matches int
	for _, c := range candidates {
		if c.GetName() != token || c.GetID() == "" {
			continue
		}
		matches++
		lookup.Found = c
	}

	switch {
	case matches == 1:
		lookup.Status = LookupFound
	case matches > 1:
		lookup.Status = LookupAmbiguous
		var zero T
		lookup.Found = zero
	}
	return lookup, nil
}

// Resolve is like Find but returns an *api.LookupError if the token doesn't resolve to exactly one resource.
func (f Finder[T]) Resolve(ctx context.Context, token string) (T, error) {
	lookup, err := f.Find(ctx, token)
	if err != nil {
		var zero T
		return zero, err
	}
	return lookup.Resource()
}

func ConsistencyGroupFinder(c api.ConsistencyGroupClient) Finder[api.ConsistencyGroup] {
	return Finder[api.ConsistencyGroup]{
		Kind: "consistency group",
		Get:  c.GetConsistencyGroup,
		List: func(ctx context.Context, name string) ([]api.ConsistencyGroup, error) {
			// Search across all projects so that admins can refer to other projects' groups by name.
			// The service ignores all_tenants for regular users.
			return c.ListConsistencyGroups(ctx, api.ConsistencyGroupListOptions{
				Detailed:   true,
				AllTenants: true,
				Name:       name,
			})
		},
	}
}

func VolumeTypeFinder(c api.VolumeTypeClient) Finder[api.VolumeType] {
	return Finder[api.VolumeType]{
		Kind: "volume type",
		Get:  c.GetVolumeType,
		List: func(ctx context.Context, _ string) ([]api.VolumeType, error) {
			return c.ListVolumeTypes(ctx)
		},
	}
}
