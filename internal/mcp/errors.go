package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/scene"
	"github.com/rpggio/storyboard/internal/domain/script"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, storyboard.ErrSceneNotFound):
		return &APIError{Code: "SCENE_NOT_FOUND", Message: "scene not found", RecoveryHint: "Call get_project for current scene ids"}
	case errors.Is(err, project.ErrInvalidRange):
		return &APIError{Code: "INVALID_RANGE", Message: err.Error(), RecoveryHint: "Positions are zero-based and below the scene count"}
	case errors.Is(err, storyboard.ErrNoSelection):
		return &APIError{Code: "NO_SELECTION", Message: "no scene selected", RecoveryHint: "Call select_scene first"}
	case errors.Is(err, storyboard.ErrEmptyStoryboard):
		return &APIError{Code: "EMPTY_STORYBOARD", Message: "storyboard has no scenes", RecoveryHint: "Add or generate scenes first"}
	case errors.Is(err, script.ErrTierRestricted):
		return &APIError{Code: "TIER_RESTRICTED", Message: "script generation requires a pro or enterprise tier"}
	case errors.Is(err, asset.ErrAssetNotFound):
		return &APIError{Code: "ASSET_NOT_FOUND", Message: "asset not found", RecoveryHint: "Call search_assets for asset ids"}
	case errors.Is(err, scene.ErrInvalidInput),
		errors.Is(err, storyboard.ErrInvalidInput),
		errors.Is(err, script.ErrInvalidInput),
		errors.Is(err, asset.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}

// toolError converts err into the error a tool handler returns.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
