package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeSceneAdded      ActivityType = "scene_added"
	TypeSceneUpdated    ActivityType = "scene_updated"
	TypeSceneDeleted    ActivityType = "scene_deleted"
	TypeSceneDuplicated ActivityType = "scene_duplicated"
	TypeScenesReordered ActivityType = "scenes_reordered"
	TypeScenesGenerated ActivityType = "scenes_generated"
	TypeAssetAttached   ActivityType = "asset_attached"
	TypeProjectRenamed  ActivityType = "project_renamed"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	ProjectID    string       `json:"project_id"`
	SceneID      *string      `json:"scene_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
