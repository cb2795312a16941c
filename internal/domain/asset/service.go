package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/storyboard/internal/repository"
)

// Service resolves search strings and ids to catalog assets.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new asset service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Seed adds assets to the catalog, skipping ids that already exist.
func (s *Service) Seed(ctx context.Context, assets []Asset) error {
	for i := range assets {
		a := assets[i]
		if err := s.repo.Create(ctx, &a); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				continue
			}
			return fmt.Errorf("seeding asset %s: %w", a.ID, err)
		}
	}
	return nil
}

// Search returns assets whose title or any tag contains query, ignoring case.
// A blank query returns the whole catalog.
func (s *Service) Search(ctx context.Context, query string, opts SearchOptions) ([]Asset, error) {
	results, err := s.repo.Search(ctx, strings.TrimSpace(query), opts)
	if err != nil {
		return nil, fmt.Errorf("searching assets: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug("asset search", "query", query, "results", len(results))
	}
	return results, nil
}

// Get returns an asset by ID.
func (s *Service) Get(ctx context.Context, id string) (*Asset, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	return a, nil
}

// ListByTag returns assets carrying exactly the given tag.
func (s *Service) ListByTag(ctx context.Context, tag string) ([]Asset, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByTag(ctx, tag)
}
