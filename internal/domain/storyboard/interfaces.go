package storyboard

import (
	"context"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
)

// AssetResolver looks up catalog assets by ID.
type AssetResolver interface {
	Get(ctx context.Context, id string) (*asset.Asset, error)
}

// ActivityLogger records storyboard activity.
type ActivityLogger interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
