package storyboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/scene"
	"github.com/rpggio/storyboard/internal/domain/script"
)

// Service is one editing session over a storyboard project. It serializes
// access to the scene manager and owns the scene selection.
type Service struct {
	mu         sync.Mutex
	manager    *project.Manager
	selected   *string
	assets     AssetResolver
	generator  script.Generator
	activities ActivityLogger
	tier       script.UserTier
	logger     *slog.Logger
}

// NewService creates a new storyboard session service.
func NewService(
	manager *project.Manager,
	assets AssetResolver,
	generator script.Generator,
	activities ActivityLogger,
	tier script.UserTier,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		manager:    manager,
		assets:     assets,
		generator:  generator,
		activities: activities,
		tier:       tier,
		logger:     logger,
	}
}

// GenerateResult describes scenes added from a generated script.
type GenerateResult struct {
	Script            string        `json:"script"`
	Scenes            []scene.Scene `json:"scenes"`
	EstimatedDuration int           `json:"estimated_duration"`
}

// Project returns the current project snapshot.
func (s *Service) Project(ctx context.Context) project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Project()
}

// Timeline returns the current project laid out on a timeline.
func (s *Service) Timeline(ctx context.Context) []project.TimelineSlot {
	return project.Timeline(s.Project(ctx))
}

// AddScene validates d and appends it as a new scene.
func (s *Service) AddScene(ctx context.Context, d scene.Draft) (scene.Scene, error) {
	if err := scene.ValidateDraft(d); err != nil {
		return scene.Scene{}, err
	}

	s.mu.Lock()
	id := s.manager.Add(d)
	created, _ := s.manager.Scene(id)
	projectID := s.manager.ProjectID()
	s.mu.Unlock()

	s.logActivity(ctx, projectID, &created.ID, activity.TypeSceneAdded,
		fmt.Sprintf("added scene %q at position %d", created.Title, created.Position), nil)
	return created, nil
}

// AddBlankScene appends a placeholder scene and selects it.
func (s *Service) AddBlankScene(ctx context.Context) (scene.Scene, error) {
	s.mu.Lock()
	d := scene.Draft{
		Title:          fmt.Sprintf("Scene %d", s.manager.Len()+1),
		Description:    "New scene description",
		Duration:       5,
		ShotType:       scene.ShotMedium,
		CameraMovement: scene.CameraStatic,
		Lighting:       scene.LightingNatural,
	}
	id := s.manager.Add(d)
	created, _ := s.manager.Scene(id)
	s.selected = &id
	projectID := s.manager.ProjectID()
	s.mu.Unlock()

	s.logActivity(ctx, projectID, &created.ID, activity.TypeSceneAdded,
		fmt.Sprintf("added blank scene %q", created.Title), nil)
	return created, nil
}

// UpdateScene applies a partial update to the scene with the given ID.
func (s *Service) UpdateScene(ctx context.Context, id string, p scene.Patch) (scene.Scene, error) {
	if p.IsEmpty() {
		return scene.Scene{}, fmt.Errorf("%w: no fields to update", scene.ErrInvalidInput)
	}
	if err := scene.ValidatePatch(p); err != nil {
		return scene.Scene{}, err
	}

	s.mu.Lock()
	if !s.manager.Update(id, p) {
		s.mu.Unlock()
		return scene.Scene{}, ErrSceneNotFound
	}
	updated, _ := s.manager.Scene(id)
	projectID := s.manager.ProjectID()
	s.mu.Unlock()

	s.logActivity(ctx, projectID, &id, activity.TypeSceneUpdated,
		fmt.Sprintf("updated scene %q", updated.Title), changedFields(p))
	return updated, nil
}

// DeleteScene removes the scene with the given ID, clearing the selection if
// it pointed at that scene.
func (s *Service) DeleteScene(ctx context.Context, id string) error {
	s.mu.Lock()
	if !s.manager.Delete(id) {
		s.mu.Unlock()
		return ErrSceneNotFound
	}
	if s.selected != nil && *s.selected == id {
		s.selected = nil
	}
	projectID := s.manager.ProjectID()
	s.mu.Unlock()

	s.logActivity(ctx, projectID, &id, activity.TypeSceneDeleted, fmt.Sprintf("deleted scene %s", id), nil)
	return nil
}

// DuplicateScene appends a copy of the scene with the given ID and selects it.
func (s *Service) DuplicateScene(ctx context.Context, id string) (scene.Scene, error) {
	s.mu.Lock()
	copyID, ok := s.manager.Duplicate(id)
	if !ok {
		s.mu.Unlock()
		return scene.Scene{}, ErrSceneNotFound
	}
	created, _ := s.manager.Scene(copyID)
	s.selected = &copyID
	projectID := s.manager.ProjectID()
	s.mu.Unlock()

	s.logActivity(ctx, projectID, &copyID, activity.TypeSceneDuplicated,
		fmt.Sprintf("duplicated scene %s", id), map[string]string{"source_id": id})
	return created, nil
}

// ReorderScenes moves the scene at index from to index to.
func (s *Service) ReorderScenes(ctx context.Context, from, to int) error {
	s.mu.Lock()
	err := s.manager.Reorder(from, to)
	projectID := s.manager.ProjectID()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.logActivity(ctx, projectID, nil, activity.TypeScenesReordered,
		fmt.Sprintf("moved scene from %d to %d", from, to), map[string]int{"from": from, "to": to})
	return nil
}

// MoveScene moves the scene with activeID to the slot currently held by overID,
// the way a drag ends over another card. Dropping a scene on itself is a no-op.
func (s *Service) MoveScene(ctx context.Context, activeID, overID string) error {
	if activeID == overID {
		return nil
	}

	s.mu.Lock()
	from := s.manager.Index(activeID)
	to := s.manager.Index(overID)
	if from < 0 || to < 0 {
		s.mu.Unlock()
		return ErrSceneNotFound
	}
	err := s.manager.Reorder(from, to)
	projectID := s.manager.ProjectID()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.logActivity(ctx, projectID, &activeID, activity.TypeScenesReordered,
		fmt.Sprintf("moved scene %s from %d to %d", activeID, from, to), map[string]int{"from": from, "to": to})
	return nil
}

// SelectScene marks the scene with the given ID as selected.
func (s *Service) SelectScene(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.manager.Scene(id); !ok {
		return ErrSceneNotFound
	}
	s.selected = &id
	return nil
}

// ClearSelection drops the current selection.
func (s *Service) ClearSelection(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Selection returns the selected scene, if any.
func (s *Service) Selection(ctx context.Context) (scene.Scene, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return scene.Scene{}, false
	}
	return s.manager.Scene(*s.selected)
}

// AttachAsset sets the selected scene's image to the asset's URL.
func (s *Service) AttachAsset(ctx context.Context, assetID string) (scene.Scene, *asset.Asset, error) {
	target, ok := s.Selection(ctx)
	if !ok {
		return scene.Scene{}, nil, ErrNoSelection
	}
	if s.assets == nil {
		return scene.Scene{}, nil, errors.New("asset resolver not configured")
	}

	a, err := s.assets.Get(ctx, assetID)
	if err != nil {
		return scene.Scene{}, nil, err
	}

	s.mu.Lock()
	if s.selected == nil || *s.selected != target.ID {
		s.mu.Unlock()
		return scene.Scene{}, nil, fmt.Errorf("%w: selection changed while resolving asset", ErrNoSelection)
	}
	if !s.manager.Update(target.ID, scene.Patch{ImageURL: &a.URL}) {
		s.mu.Unlock()
		return scene.Scene{}, nil, ErrSceneNotFound
	}
	updated, _ := s.manager.Scene(target.ID)
	projectID := s.manager.ProjectID()
	s.mu.Unlock()

	s.logActivity(ctx, projectID, &target.ID, activity.TypeAssetAttached,
		fmt.Sprintf("added %q to scene %q", a.Title, updated.Title), map[string]string{"asset_id": a.ID, "url": a.URL})
	return updated, a, nil
}

// GenerateScenes runs the script generator and appends every generated draft.
// The caller's tier applies when req.Tier is empty.
func (s *Service) GenerateScenes(ctx context.Context, req script.GenerateRequest) (*GenerateResult, error) {
	if s.generator == nil {
		return nil, errors.New("script generator not configured")
	}
	if req.Tier == "" {
		req.Tier = s.tier
	}

	resp, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	for i, d := range resp.Scenes {
		if err := scene.ValidateDraft(d); err != nil {
			return nil, fmt.Errorf("generated scene %d: %w", i, err)
		}
	}

	s.mu.Lock()
	created := make([]scene.Scene, 0, len(resp.Scenes))
	for _, d := range resp.Scenes {
		id := s.manager.Add(d)
		sc, _ := s.manager.Scene(id)
		created = append(created, sc)
	}
	projectID := s.manager.ProjectID()
	s.mu.Unlock()

	s.logActivity(ctx, projectID, nil, activity.TypeScenesGenerated,
		fmt.Sprintf("generated %d scenes", len(created)), map[string]any{"prompt": req.Prompt, "count": len(created)})

	return &GenerateResult{
		Script:            resp.Script,
		Scenes:            created,
		EstimatedDuration: resp.EstimatedDuration,
	}, nil
}

// RenameProject replaces the project's title and description.
func (s *Service) RenameProject(ctx context.Context, title, description string) (project.Project, error) {
	if strings.TrimSpace(title) == "" {
		return project.Project{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	s.mu.Lock()
	s.manager.Rename(title, description)
	p := s.manager.Project()
	s.mu.Unlock()

	s.logActivity(ctx, p.ID, nil, activity.TypeProjectRenamed, fmt.Sprintf("renamed project to %q", title), nil)
	return p, nil
}

func (s *Service) logActivity(ctx context.Context, projectID string, sceneID *string, typ activity.ActivityType, summary string, details any) {
	s.logger.Debug("storyboard mutation", "type", typ, "project_id", projectID, "summary", summary)
	if s.activities == nil {
		return
	}

	entry := &activity.ActivityEntry{
		ProjectID:    projectID,
		SceneID:      sceneID,
		ActivityType: typ,
		Summary:      summary,
	}
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			entry.Details = string(data)
		}
	}
	if err := s.activities.Log(ctx, entry); err != nil {
		s.logger.Warn("failed to log activity", "type", typ, "error", err)
	}
}

func changedFields(p scene.Patch) map[string][]string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.Duration != nil {
		fields = append(fields, "duration")
	}
	if p.ShotType != nil {
		fields = append(fields, "shot_type")
	}
	if p.CameraMovement != nil {
		fields = append(fields, "camera_movement")
	}
	if p.Lighting != nil {
		fields = append(fields, "lighting")
	}
	if p.ImageURL != nil {
		fields = append(fields, "image_url")
	}
	if p.Notes != nil {
		fields = append(fields, "notes")
	}
	return map[string][]string{"fields": fields}
}
