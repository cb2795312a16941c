package storyboard

import (
	"context"
	"fmt"

	"github.com/rpggio/storyboard/internal/domain/project"
	"gopkg.in/yaml.v3"
)

// exportVersion identifies the export document layout.
const exportVersion = "1"

type exportDocument struct {
	Version       string        `yaml:"version"`
	Title         string        `yaml:"title"`
	Description   string        `yaml:"description,omitempty"`
	TotalDuration int           `yaml:"total_duration"`
	Runtime       string        `yaml:"runtime"`
	Scenes        []exportScene `yaml:"scenes"`
}

type exportScene struct {
	Index          int    `yaml:"index"`
	ID             string `yaml:"id"`
	Title          string `yaml:"title"`
	Description    string `yaml:"description,omitempty"`
	Start          int    `yaml:"start"`
	Duration       int    `yaml:"duration"`
	ShotType       string `yaml:"shot_type,omitempty"`
	CameraMovement string `yaml:"camera_movement,omitempty"`
	Lighting       string `yaml:"lighting,omitempty"`
	ImageURL       string `yaml:"image_url,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
}

// Export renders the storyboard as a YAML shot list.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	p := s.Project(ctx)
	if len(p.Scenes) == 0 {
		return nil, ErrEmptyStoryboard
	}

	doc := exportDocument{
		Version:       exportVersion,
		Title:         p.Title,
		Description:   p.Description,
		TotalDuration: p.TotalDuration,
		Runtime:       project.FormatDuration(p.TotalDuration),
		Scenes:        make([]exportScene, 0, len(p.Scenes)),
	}
	for i, slot := range project.Timeline(p) {
		sc := p.Scenes[i]
		doc.Scenes = append(doc.Scenes, exportScene{
			Index:          slot.Index + 1,
			ID:             sc.ID,
			Title:          sc.Title,
			Description:    sc.Description,
			Start:          slot.Start,
			Duration:       sc.Duration,
			ShotType:       string(sc.ShotType),
			CameraMovement: string(sc.CameraMovement),
			Lighting:       string(sc.Lighting),
			ImageURL:       sc.ImageURL,
			Notes:          sc.Notes,
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal storyboard: %w", err)
	}
	return data, nil
}
