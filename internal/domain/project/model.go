package project

import (
	"time"

	"github.com/rpggio/storyboard/internal/domain/scene"
)

// Project is the storyboard aggregate: an ordered scene sequence plus derived totals.
type Project struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Scenes        []scene.Scene `json:"scenes"`
	TotalDuration int           `json:"total_duration"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TimelineSlot places one scene on the project timeline.
type TimelineSlot struct {
	SceneID  string  `json:"scene_id"`
	Index    int     `json:"index"`
	Title    string  `json:"title"`
	Start    int     `json:"start"`
	Duration int     `json:"duration"`
	Width    float64 `json:"width_percent"`
}
