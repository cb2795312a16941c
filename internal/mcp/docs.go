package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `storyboard edits one ordered sequence of scenes for a video project.

Core concepts:
- Project: title, description, ordered scenes and a total duration (sum of scene durations, seconds).
- Scene: id, title, description, duration, position (zero-based, always dense), optional shot tags
  (shot_type, camera_movement, lighting), image_url and notes.
- Selection: at most one selected scene; attach_asset applies to it.

Workflow:
1) Orient with get_project (or get_timeline for start offsets).
2) Build scenes with add_scene, add_blank_scene or generate_scenes.
3) Edit with update_scene (only supplied fields change), duplicate_scene, delete_scene.
4) Reorder with reorder_scenes (positions) or move_scene (scene ids).
5) Illustrate: search_assets, select_scene, attach_asset.
6) export_storyboard renders a YAML shot list.

Errors come back as tool errors prefixed with a stable code such as SCENE_NOT_FOUND or INVALID_RANGE.

Docs:
- storyboard://docs/index
- storyboard://docs/scene-fields
Live state:
- storyboard://project (JSON)
- storyboard://export (YAML)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "storyboard://docs/index",
		Name:        "docs_index",
		Title:       "storyboard docs index",
		Description: "Entry point: tools by task and the error codes they return.",
		Content: `# storyboard: Agent Docs Index

## Tools by task

| Task | Tools |
|---|---|
| Read | ` + "`get_project`, `get_timeline`, `get_selection`, `get_recent_activity`" + ` |
| Create | ` + "`add_scene`, `add_blank_scene`, `duplicate_scene`, `generate_scenes`" + ` |
| Edit | ` + "`update_scene`, `delete_scene`, `rename_project`" + ` |
| Order | ` + "`reorder_scenes`, `move_scene`" + ` |
| Images | ` + "`search_assets`, `select_scene`, `clear_selection`, `attach_asset`" + ` |
| Deliver | ` + "`export_storyboard`" + ` |

## Ordering rules

- New and duplicated scenes are appended at the end.
- ` + "`reorder_scenes(from, to)`" + ` removes the scene at ` + "`from`" + ` and inserts it so it ends at ` + "`to`" + `.
  Both must be valid positions; otherwise INVALID_RANGE and nothing changes.
- Deleting renumbers the remaining scenes so positions stay 0..n-1.

## Error codes

- SCENE_NOT_FOUND: unknown scene id, nothing changed.
- INVALID_RANGE: reorder position outside the sequence.
- INVALID_INPUT: empty title, non-positive duration, unknown shot tag, empty prompt.
- NO_SELECTION: attach_asset with nothing selected.
- ASSET_NOT_FOUND: unknown asset id.
- TIER_RESTRICTED: generate_scenes on the free tier.
- EMPTY_STORYBOARD: export with no scenes.
`,
	},
	{
		URI:         "storyboard://docs/scene-fields",
		Name:        "docs_scene_fields",
		Title:       "Scene fields",
		Description: "Allowed values for scene shot tags.",
		Content: `# Scene fields

- duration: whole seconds, greater than zero.
- shot_type: wide, medium, close, extreme-close, over-shoulder.
- camera_movement: static, pan, tilt, zoom, dolly, tracking.
- lighting: natural, dramatic, soft, harsh, silhouette.

Tags are optional. In update_scene an empty string clears a tag and an omitted field is left alone.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			return textResource(resourceURI(req, doc.URI), "text/markdown", doc.Content), nil
		})
	}
}

func registerProjectResources(server *sdkmcp.Server, sb StoryboardService) {
	server.AddResource(&sdkmcp.Resource{
		URI:         "storyboard://project",
		Name:        "project",
		Title:       "Current project",
		Description: "JSON snapshot of the project and its scenes.",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		data, err := json.MarshalIndent(projectResponse(ctx, sb), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal project: %w", err)
		}
		return textResource(resourceURI(req, "storyboard://project"), "application/json", string(data)), nil
	})

	server.AddResource(&sdkmcp.Resource{
		URI:         "storyboard://export",
		Name:        "export",
		Title:       "Shot list",
		Description: "YAML export of the storyboard.",
		MIMEType:    "application/yaml",
	}, func(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		data, err := sb.Export(ctx)
		if err != nil {
			return nil, toolError(err)
		}
		return textResource(resourceURI(req, "storyboard://export"), "application/yaml", string(data)), nil
	})
}

func resourceURI(req *sdkmcp.ReadResourceRequest, fallback string) string {
	if req != nil && req.Params != nil && req.Params.URI != "" {
		return req.Params.URI
	}
	return fallback
}

func textResource(uri, mimeType, text string) *sdkmcp.ReadResourceResult {
	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}
