package mocks

import (
	"context"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/script"
	"github.com/stretchr/testify/mock"
)

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AssetRepository is a mock for asset.Repository.
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssetRepository) Get(ctx context.Context, id string) (*asset.Asset, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*asset.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) Search(ctx context.Context, query string, opts asset.SearchOptions) ([]asset.Asset, error) {
	args := m.Called(ctx, query, opts)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) ListByTag(ctx context.Context, tag string) ([]asset.Asset, error) {
	args := m.Called(ctx, tag)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AssetResolver is a mock for storyboard.AssetResolver.
type AssetResolver struct {
	mock.Mock
}

func (m *AssetResolver) Get(ctx context.Context, id string) (*asset.Asset, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*asset.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityLogger is a mock for storyboard.ActivityLogger.
type ActivityLogger struct {
	mock.Mock
}

func (m *ActivityLogger) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Generator is a mock for script.Generator.
type Generator struct {
	mock.Mock
}

func (m *Generator) Generate(ctx context.Context, req script.GenerateRequest) (*script.GenerateResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*script.GenerateResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}
