package scene

import (
	"fmt"
	"strings"
)

var (
	shotTypes = map[ShotType]struct{}{
		ShotWide: {}, ShotMedium: {}, ShotClose: {}, ShotExtremeClose: {}, ShotOverShoulder: {},
	}
	cameraMovements = map[CameraMovement]struct{}{
		CameraStatic: {}, CameraPan: {}, CameraTilt: {}, CameraZoom: {}, CameraDolly: {}, CameraTracking: {},
	}
	lightings = map[Lighting]struct{}{
		LightingNatural: {}, LightingDramatic: {}, LightingSoft: {}, LightingHarsh: {}, LightingSilhouette: {},
	}
)

// Valid reports whether t is empty or a known shot type.
func (t ShotType) Valid() bool {
	if t == "" {
		return true
	}
	_, ok := shotTypes[t]
	return ok
}

// Valid reports whether m is empty or a known camera movement.
func (m CameraMovement) Valid() bool {
	if m == "" {
		return true
	}
	_, ok := cameraMovements[m]
	return ok
}

// Valid reports whether l is empty or a known lighting setup.
func (l Lighting) Valid() bool {
	if l == "" {
		return true
	}
	_, ok := lightings[l]
	return ok
}

// ValidateDraft validates fields required to add a scene.
func ValidateDraft(d Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if d.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return validateTags(d.ShotType, d.CameraMovement, d.Lighting)
}

// ValidatePatch validates the supplied fields of a partial update.
func ValidatePatch(p Patch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title cannot be blank", ErrInvalidInput)
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	var (
		shot   ShotType
		camera CameraMovement
		light  Lighting
	)
	if p.ShotType != nil {
		shot = *p.ShotType
	}
	if p.CameraMovement != nil {
		camera = *p.CameraMovement
	}
	if p.Lighting != nil {
		light = *p.Lighting
	}
	return validateTags(shot, camera, light)
}

func validateTags(shot ShotType, camera CameraMovement, light Lighting) error {
	if !shot.Valid() {
		return fmt.Errorf("%w: shot type %q", ErrUnknownTag, shot)
	}
	if !camera.Valid() {
		return fmt.Errorf("%w: camera movement %q", ErrUnknownTag, camera)
	}
	if !light.Valid() {
		return fmt.Errorf("%w: lighting %q", ErrUnknownTag, light)
	}
	return nil
}
