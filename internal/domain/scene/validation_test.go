package scene_test

import (
	"testing"

	"github.com/rpggio/storyboard/internal/domain/scene"
	"github.com/stretchr/testify/require"
)

func TestValidateDraft(t *testing.T) {
	valid := scene.Draft{
		Title:          "Opening",
		Duration:       5,
		ShotType:       scene.ShotWide,
		CameraMovement: scene.CameraStatic,
		Lighting:       scene.LightingNatural,
	}
	require.NoError(t, scene.ValidateDraft(valid))

	untagged := scene.Draft{Title: "Plain", Duration: 1}
	require.NoError(t, scene.ValidateDraft(untagged))

	noTitle := valid
	noTitle.Title = "  "
	require.ErrorIs(t, scene.ValidateDraft(noTitle), scene.ErrInvalidInput)

	zero := valid
	zero.Duration = 0
	require.ErrorIs(t, scene.ValidateDraft(zero), scene.ErrInvalidInput)

	badShot := valid
	badShot.ShotType = "aerial"
	err := scene.ValidateDraft(badShot)
	require.ErrorIs(t, err, scene.ErrUnknownTag)
	require.ErrorIs(t, err, scene.ErrInvalidInput)
}

func TestValidatePatch(t *testing.T) {
	require.NoError(t, scene.ValidatePatch(scene.Patch{}))

	blank := ""
	require.ErrorIs(t, scene.ValidatePatch(scene.Patch{Title: &blank}), scene.ErrInvalidInput)

	negative := -3
	require.ErrorIs(t, scene.ValidatePatch(scene.Patch{Duration: &negative}), scene.ErrInvalidInput)

	light := scene.Lighting("neon")
	require.ErrorIs(t, scene.ValidatePatch(scene.Patch{Lighting: &light}), scene.ErrUnknownTag)

	unset := scene.CameraMovement("")
	require.NoError(t, scene.ValidatePatch(scene.Patch{CameraMovement: &unset}))
}

func TestPatchApply_OnlySuppliedFields(t *testing.T) {
	original := scene.Scene{
		ID:          "scene-1",
		Title:       "Before",
		Description: "desc",
		Duration:    4,
		Position:    2,
		ShotType:    scene.ShotClose,
		Notes:       "keep",
	}
	title := "After"
	updated := scene.Patch{Title: &title}.Apply(original)

	expected := original
	expected.Title = "After"
	require.Equal(t, expected, updated)
	require.Equal(t, "Before", original.Title)
}

func TestPatch_IsEmpty(t *testing.T) {
	require.True(t, scene.Patch{}.IsEmpty())
	url := "https://example.com/a.jpg"
	require.False(t, scene.Patch{ImageURL: &url}.IsEmpty())
}

func TestDraftRoundTrip(t *testing.T) {
	d := scene.Draft{Title: "T", Description: "D", Duration: 3, Lighting: scene.LightingSoft, Notes: "n"}
	s := scene.FromDraft("scene-x", 7, d)
	require.Equal(t, "scene-x", s.ID)
	require.Equal(t, 7, s.Position)
	require.Equal(t, d, s.Draft())
}
