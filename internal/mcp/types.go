package mcp

import (
	"time"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/scene"
)

type EmptyParams struct{}

type SceneIDParams struct {
	SceneID string `json:"scene_id" jsonschema:"scene identifier"`
}

type AddSceneParams struct {
	Title          string `json:"title" jsonschema:"scene title"`
	Description    string `json:"description,omitempty" jsonschema:"what happens in the scene"`
	Duration       int    `json:"duration" jsonschema:"length in seconds, must be positive"`
	ShotType       string `json:"shot_type,omitempty" jsonschema:"wide, medium, close, extreme-close or over-shoulder"`
	CameraMovement string `json:"camera_movement,omitempty" jsonschema:"static, pan, tilt, zoom, dolly or tracking"`
	Lighting       string `json:"lighting,omitempty" jsonschema:"natural, dramatic, soft, harsh or silhouette"`
	ImageURL       string `json:"image_url,omitempty" jsonschema:"reference image URL"`
	Notes          string `json:"notes,omitempty" jsonschema:"free-form production notes"`
}

type UpdateSceneParams struct {
	SceneID        string  `json:"scene_id" jsonschema:"scene identifier"`
	Title          *string `json:"title,omitempty" jsonschema:"new title"`
	Description    *string `json:"description,omitempty" jsonschema:"new description"`
	Duration       *int    `json:"duration,omitempty" jsonschema:"new length in seconds"`
	ShotType       *string `json:"shot_type,omitempty" jsonschema:"new shot type, empty string clears it"`
	CameraMovement *string `json:"camera_movement,omitempty" jsonschema:"new camera movement, empty string clears it"`
	Lighting       *string `json:"lighting,omitempty" jsonschema:"new lighting, empty string clears it"`
	ImageURL       *string `json:"image_url,omitempty" jsonschema:"new reference image URL"`
	Notes          *string `json:"notes,omitempty" jsonschema:"new production notes"`
}

type ReorderScenesParams struct {
	From int `json:"from" jsonschema:"current zero-based position of the scene"`
	To   int `json:"to" jsonschema:"zero-based position the scene should end up at"`
}

type MoveSceneParams struct {
	SceneID     string `json:"scene_id" jsonschema:"scene being dragged"`
	OverSceneID string `json:"over_scene_id" jsonschema:"scene it was dropped on"`
}

type SearchAssetsParams struct {
	Query  string   `json:"query,omitempty" jsonschema:"matched against titles and tags; empty lists everything"`
	Tag    string   `json:"tag,omitempty" jsonschema:"exact tag match; when set the other filters are ignored"`
	Types  []string `json:"types,omitempty" jsonschema:"restrict to image, video or audio"`
	Limit  int      `json:"limit,omitempty" jsonschema:"maximum number of results"`
	Offset int      `json:"offset,omitempty" jsonschema:"offset for pagination"`
}

type AttachAssetParams struct {
	AssetID string `json:"asset_id" jsonschema:"asset to use as the selected scene's image"`
}

type GenerateScenesParams struct {
	Prompt   string `json:"prompt" jsonschema:"story premise"`
	Genre    string `json:"genre,omitempty" jsonschema:"optional genre"`
	Tone     string `json:"tone,omitempty" jsonschema:"optional tone"`
	Duration int    `json:"duration,omitempty" jsonschema:"target total length in seconds"`
	Tier     string `json:"tier,omitempty" jsonschema:"free, pro or enterprise; defaults to the session tier"`
}

type RenameProjectParams struct {
	Title       string `json:"title" jsonschema:"project title"`
	Description string `json:"description,omitempty" jsonschema:"project description"`
}

type GetRecentActivityParams struct {
	SceneID string `json:"scene_id,omitempty" jsonschema:"only entries for this scene"`
	Type    string `json:"type,omitempty" jsonschema:"only entries of this activity type"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of entries (default 50)"`
	Offset  int    `json:"offset,omitempty" jsonschema:"offset for pagination"`
}

type ProjectResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Scenes          []scene.Scene `json:"scenes"`
	TotalDuration   int           `json:"total_duration"`
	Runtime         string        `json:"runtime"`
	SelectedSceneID string        `json:"selected_scene_id,omitempty"`
	CreatedAt       string        `json:"created_at"`
	UpdatedAt       string        `json:"updated_at"`
}

type SceneResponse struct {
	Scene         scene.Scene `json:"scene"`
	TotalDuration int         `json:"total_duration"`
}

type DeleteSceneResponse struct {
	Deleted       string `json:"deleted"`
	SceneCount    int    `json:"scene_count"`
	TotalDuration int    `json:"total_duration"`
}

type TimelineResponse struct {
	Slots         []project.TimelineSlot `json:"slots"`
	TotalDuration int                    `json:"total_duration"`
	Runtime       string                 `json:"runtime"`
}

type SelectionResponse struct {
	Selected *scene.Scene `json:"selected,omitempty"`
}

type AssetsResponse struct {
	Assets []asset.Asset `json:"assets"`
}

type AttachAssetResponse struct {
	Scene scene.Scene `json:"scene"`
	Asset asset.Asset `json:"asset"`
}

type GenerateScenesResponse struct {
	Script            string        `json:"script"`
	Scenes            []scene.Scene `json:"scenes"`
	EstimatedDuration int           `json:"estimated_duration"`
	TotalDuration     int           `json:"total_duration"`
}

type ExportResponse struct {
	Format   string `json:"format"`
	Document string `json:"document"`
}

type ActivityResponse struct {
	Entries []ActivityEntryResponse `json:"entries"`
}

type ActivityEntryResponse struct {
	ID        int64  `json:"id"`
	SceneID   string `json:"scene_id,omitempty"`
	Type      string `json:"type"`
	Summary   string `json:"summary"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}

func (p AddSceneParams) draft() scene.Draft {
	return scene.Draft{
		Title:          p.Title,
		Description:    p.Description,
		Duration:       p.Duration,
		ShotType:       scene.ShotType(p.ShotType),
		CameraMovement: scene.CameraMovement(p.CameraMovement),
		Lighting:       scene.Lighting(p.Lighting),
		ImageURL:       p.ImageURL,
		Notes:          p.Notes,
	}
}

func (p UpdateSceneParams) patch() scene.Patch {
	patch := scene.Patch{
		Title:       p.Title,
		Description: p.Description,
		Duration:    p.Duration,
		ImageURL:    p.ImageURL,
		Notes:       p.Notes,
	}
	if p.ShotType != nil {
		v := scene.ShotType(*p.ShotType)
		patch.ShotType = &v
	}
	if p.CameraMovement != nil {
		v := scene.CameraMovement(*p.CameraMovement)
		patch.CameraMovement = &v
	}
	if p.Lighting != nil {
		v := scene.Lighting(*p.Lighting)
		patch.Lighting = &v
	}
	return patch
}

func toProjectResponse(p project.Project, selected string) ProjectResponse {
	scenes := p.Scenes
	if scenes == nil {
		scenes = []scene.Scene{}
	}
	return ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Scenes:          scenes,
		TotalDuration:   p.TotalDuration,
		Runtime:         project.FormatDuration(p.TotalDuration),
		SelectedSceneID: selected,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toActivityResponse(entries []activity.ActivityEntry) ActivityResponse {
	out := ActivityResponse{Entries: make([]ActivityEntryResponse, 0, len(entries))}
	for _, e := range entries {
		item := ActivityEntryResponse{
			ID:        e.ID,
			Type:      string(e.ActivityType),
			Summary:   e.Summary,
			Details:   e.Details,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
		if e.SceneID != nil {
			item.SceneID = *e.SceneID
		}
		out.Entries = append(out.Entries, item)
	}
	return out
}
