package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/repository"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, repo *AssetRepository) {
	t.Helper()
	ctx := context.Background()
	for _, a := range asset.StockCatalog() {
		a := a
		require.NoError(t, repo.Create(ctx, &a))
	}
}

func TestAssetRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAssetRepository(db)

	a := &asset.Asset{
		ID:        "clip-1",
		Title:     "Harbor Timelapse",
		URL:       "https://media.example.com/harbor.mp4",
		Thumbnail: "https://media.example.com/harbor.jpg",
		Type:      asset.TypeVideo,
		Tags:      []string{"water", "city", "night"},
		Author:    "Studio",
	}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.Get(ctx, "clip-1")
	require.NoError(t, err)
	require.Equal(t, a, got)

	err = repo.Create(ctx, a)
	require.ErrorIs(t, err, repository.ErrConflict)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssetRepository_Search(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAssetRepository(db)
	seedCatalog(t, repo)

	all, err := repo.Search(ctx, "  ", asset.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, all, len(asset.StockCatalog()))
	require.Equal(t, asset.StockCatalog()[0].ID, all[0].ID)
	require.NotEmpty(t, all[0].Tags)

	byTitle, err := repo.Search(ctx, "FOREST", asset.SearchOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, byTitle)
	for _, a := range byTitle {
		require.True(t, matches(a, "forest"), "unexpected match %s", a.Title)
	}

	none, err := repo.Search(ctx, "zzz-no-such-asset", asset.SearchOptions{})
	require.NoError(t, err)
	require.Empty(t, none)

	videos, err := repo.Search(ctx, "", asset.SearchOptions{Types: []asset.AssetType{asset.TypeVideo}})
	require.NoError(t, err)
	require.Empty(t, videos)

	page, err := repo.Search(ctx, "", asset.SearchOptions{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, all[2].ID, page[0].ID)
}

func TestAssetRepository_SearchEscapesWildcards(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAssetRepository(db)
	seedCatalog(t, repo)

	results, err := repo.Search(ctx, "%", asset.SearchOptions{})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestAssetRepository_ListByTag(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewAssetRepository(db)
	seedCatalog(t, repo)

	tag := asset.StockCatalog()[0].Tags[0]
	results, err := repo.ListByTag(ctx, tag)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, a := range results {
		require.Contains(t, a.Tags, tag)
	}

	results, err = repo.ListByTag(ctx, "no-such-tag")
	require.NoError(t, err)
	require.Empty(t, results)
}

func matches(a asset.Asset, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}
