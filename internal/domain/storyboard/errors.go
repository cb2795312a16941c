package storyboard

import "errors"

var (
	// ErrSceneNotFound indicates the scene doesn't exist in the project.
	ErrSceneNotFound = errors.New("scene not found")
	// ErrNoSelection indicates an operation needs a selected scene and none is selected.
	ErrNoSelection = errors.New("no scene selected")
	// ErrEmptyStoryboard indicates the project has no scenes to export.
	ErrEmptyStoryboard = errors.New("storyboard has no scenes")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid storyboard input")
)
