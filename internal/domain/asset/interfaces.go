package asset

import "context"

// Repository provides the asset catalog.
type Repository interface {
	Create(ctx context.Context, a *Asset) error
	Get(ctx context.Context, id string) (*Asset, error)
	Search(ctx context.Context, query string, opts SearchOptions) ([]Asset, error)
	ListByTag(ctx context.Context, tag string) ([]Asset, error)
}

// SearchOptions narrows a catalog search.
type SearchOptions struct {
	Types  []AssetType
	Limit  int
	Offset int
}
