package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/repository"
)

// AssetRepository implements asset.Repository for SQLite
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `a.id, a.title, a.url, a.thumbnail, a.type, a.author, a.source`

// Create inserts an asset and its tags in one transaction
func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO assets (id, title, url, thumbnail, type, author, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.Title, a.URL, a.Thumbnail, a.Type, a.Author, a.Source)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("asset %s: %w", a.ID, repository.ErrConflict)
		}
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	for i, tag := range a.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO asset_tags (asset_id, position, tag) VALUES (?, ?, ?)`,
			a.ID, i, tag,
		); err != nil {
			return fmt.Errorf("failed to insert asset tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit asset: %w", err)
	}
	return nil
}

// Get returns the asset with the given ID
func (r *AssetRepository) Get(ctx context.Context, id string) (*asset.Asset, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets a WHERE a.id = ?`, id)

	var a asset.Asset
	if err := scanAsset(row, &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	tags, err := r.loadTags(ctx, []string{a.ID})
	if err != nil {
		return nil, err
	}
	a.Tags = tags[a.ID]
	return &a, nil
}

// Search matches query case-insensitively against titles and tags. A blank
// query matches every asset.
func (r *AssetRepository) Search(ctx context.Context, query string, opts asset.SearchOptions) ([]asset.Asset, error) {
	q := `SELECT ` + assetColumns + ` FROM assets a`

	var args []any
	var conditions []string

	if query = strings.TrimSpace(query); query != "" {
		pattern := likePattern(query)
		conditions = append(conditions, `(lower(a.title) LIKE ? ESCAPE '\'
			OR EXISTS (SELECT 1 FROM asset_tags t WHERE t.asset_id = a.id AND lower(t.tag) LIKE ? ESCAPE '\'))`)
		args = append(args, pattern, pattern)
	}

	if len(opts.Types) > 0 {
		conditions = append(conditions, fmt.Sprintf("a.type IN (%s)", placeholders(len(opts.Types))))
		for _, typ := range opts.Types {
			args = append(args, typ)
		}
	}

	if len(conditions) > 0 {
		q += " WHERE " + strings.Join(conditions, " AND ")
	}
	q += " ORDER BY a.rowid"
	q, args = paginate(q, args, opts.Limit, opts.Offset)

	return r.queryAssets(ctx, q, args...)
}

// ListByTag returns assets carrying exactly the given tag
func (r *AssetRepository) ListByTag(ctx context.Context, tag string) ([]asset.Asset, error) {
	q := `SELECT ` + assetColumns + ` FROM assets a
		WHERE EXISTS (SELECT 1 FROM asset_tags t WHERE t.asset_id = a.id AND t.tag = ?)
		ORDER BY a.rowid`
	return r.queryAssets(ctx, q, tag)
}

func (r *AssetRepository) queryAssets(ctx context.Context, query string, args ...any) ([]asset.Asset, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		var a asset.Asset
		if err := scanAsset(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	if len(assets) == 0 {
		return assets, nil
	}

	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	tags, err := r.loadTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range assets {
		assets[i].Tags = tags[assets[i].ID]
	}
	return assets, nil
}

func (r *AssetRepository) loadTags(ctx context.Context, ids []string) (map[string][]string, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT asset_id, tag FROM asset_tags WHERE asset_id IN (%s) ORDER BY asset_id, position`,
		placeholders(len(ids))), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string][]string, len(ids))
	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan asset tag: %w", err)
		}
		tags[id] = append(tags[id], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset tags: %w", err)
	}
	return tags, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(s scanner, a *asset.Asset) error {
	return s.Scan(&a.ID, &a.Title, &a.URL, &a.Thumbnail, &a.Type, &a.Author, &a.Source)
}
