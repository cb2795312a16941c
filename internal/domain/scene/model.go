package scene

// ShotType describes the framing of a shot.
type ShotType string

const (
	ShotWide         ShotType = "wide"
	ShotMedium       ShotType = "medium"
	ShotClose        ShotType = "close"
	ShotExtremeClose ShotType = "extreme-close"
	ShotOverShoulder ShotType = "over-shoulder"
)

// CameraMovement describes how the camera moves during a shot.
type CameraMovement string

const (
	CameraStatic   CameraMovement = "static"
	CameraPan      CameraMovement = "pan"
	CameraTilt     CameraMovement = "tilt"
	CameraZoom     CameraMovement = "zoom"
	CameraDolly    CameraMovement = "dolly"
	CameraTracking CameraMovement = "tracking"
)

// Lighting describes the lighting setup of a shot.
type Lighting string

const (
	LightingNatural    Lighting = "natural"
	LightingDramatic   Lighting = "dramatic"
	LightingSoft       Lighting = "soft"
	LightingHarsh      Lighting = "harsh"
	LightingSilhouette Lighting = "silhouette"
)

// Scene is one shot in a storyboard. Position always equals the scene's index
// in the owning project's sequence.
type Scene struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Duration       int            `json:"duration"`
	Position       int            `json:"position"`
	ShotType       ShotType       `json:"shot_type,omitempty"`
	CameraMovement CameraMovement `json:"camera_movement,omitempty"`
	Lighting       Lighting       `json:"lighting,omitempty"`
	ImageURL       string         `json:"image_url,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

// Draft carries every scene field except ID and Position.
type Draft struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Duration       int            `json:"duration"`
	ShotType       ShotType       `json:"shot_type,omitempty"`
	CameraMovement CameraMovement `json:"camera_movement,omitempty"`
	Lighting       Lighting       `json:"lighting,omitempty"`
	ImageURL       string         `json:"image_url,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

// Patch is a partial scene update. Nil fields are left untouched.
type Patch struct {
	Title          *string
	Description    *string
	Duration       *int
	ShotType       *ShotType
	CameraMovement *CameraMovement
	Lighting       *Lighting
	ImageURL       *string
	Notes          *string
}

// FromDraft builds a scene from a draft with the given identity.
func FromDraft(id string, position int, d Draft) Scene {
	return Scene{
		ID:             id,
		Title:          d.Title,
		Description:    d.Description,
		Duration:       d.Duration,
		Position:       position,
		ShotType:       d.ShotType,
		CameraMovement: d.CameraMovement,
		Lighting:       d.Lighting,
		ImageURL:       d.ImageURL,
		Notes:          d.Notes,
	}
}

// Draft returns the scene's content without its identity.
func (s Scene) Draft() Draft {
	return Draft{
		Title:          s.Title,
		Description:    s.Description,
		Duration:       s.Duration,
		ShotType:       s.ShotType,
		CameraMovement: s.CameraMovement,
		Lighting:       s.Lighting,
		ImageURL:       s.ImageURL,
		Notes:          s.Notes,
	}
}

// Apply returns a copy of s with the supplied patch fields replaced.
func (p Patch) Apply(s Scene) Scene {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.ShotType != nil {
		s.ShotType = *p.ShotType
	}
	if p.CameraMovement != nil {
		s.CameraMovement = *p.CameraMovement
	}
	if p.Lighting != nil {
		s.Lighting = *p.Lighting
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	return s
}

// IsEmpty reports whether the patch supplies no fields.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Duration == nil &&
		p.ShotType == nil && p.CameraMovement == nil && p.Lighting == nil &&
		p.ImageURL == nil && p.Notes == nil
}
