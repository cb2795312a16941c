package mcp

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/script"
)

var errServiceUnavailable = errors.New("service not configured")

// registerTools adds every storyboard tool to server.
func registerTools(server *sdkmcp.Server, svc Services) {
	sb := svc.Storyboard

	// Project
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get the storyboard project with its ordered scenes, total duration and current selection",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		return nil, projectResponse(ctx, sb), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_timeline",
		Description: "Get scenes laid out end to end with start offsets and relative widths",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, TimelineResponse, error) {
		p := sb.Project(ctx)
		return nil, TimelineResponse{
			Slots:         sb.Timeline(ctx),
			TotalDuration: p.TotalDuration,
			Runtime:       project.FormatDuration(p.TotalDuration),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "rename_project",
		Description: "Change the project title and description",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in RenameProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		if _, err := sb.RenameProject(ctx, in.Title, in.Description); err != nil {
			return nil, ProjectResponse{}, toolError(err)
		}
		return nil, projectResponse(ctx, sb), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_storyboard",
		Description: "Export the storyboard as a YAML shot list",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ExportResponse, error) {
		data, err := sb.Export(ctx)
		if err != nil {
			return nil, ExportResponse{}, toolError(err)
		}
		return nil, ExportResponse{Format: "yaml", Document: string(data)}, nil
	})

	// Scenes
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_scene",
		Description: "Append a scene to the end of the storyboard",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddSceneParams) (*sdkmcp.CallToolResult, SceneResponse, error) {
		created, err := sb.AddScene(ctx, in.draft())
		if err != nil {
			return nil, SceneResponse{}, toolError(err)
		}
		return nil, SceneResponse{Scene: created, TotalDuration: sb.Project(ctx).TotalDuration}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_blank_scene",
		Description: "Append a placeholder scene with default settings and select it",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, SceneResponse, error) {
		created, err := sb.AddBlankScene(ctx)
		if err != nil {
			return nil, SceneResponse{}, toolError(err)
		}
		return nil, SceneResponse{Scene: created, TotalDuration: sb.Project(ctx).TotalDuration}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_scene",
		Description: "Change only the supplied fields of a scene",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateSceneParams) (*sdkmcp.CallToolResult, SceneResponse, error) {
		updated, err := sb.UpdateScene(ctx, in.SceneID, in.patch())
		if err != nil {
			return nil, SceneResponse{}, toolError(err)
		}
		return nil, SceneResponse{Scene: updated, TotalDuration: sb.Project(ctx).TotalDuration}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_scene",
		Description: "Remove a scene; later scenes move up one position",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SceneIDParams) (*sdkmcp.CallToolResult, DeleteSceneResponse, error) {
		if err := sb.DeleteScene(ctx, in.SceneID); err != nil {
			return nil, DeleteSceneResponse{}, toolError(err)
		}
		p := sb.Project(ctx)
		return nil, DeleteSceneResponse{Deleted: in.SceneID, SceneCount: len(p.Scenes), TotalDuration: p.TotalDuration}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "duplicate_scene",
		Description: "Append a copy of a scene and select the copy",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SceneIDParams) (*sdkmcp.CallToolResult, SceneResponse, error) {
		created, err := sb.DuplicateScene(ctx, in.SceneID)
		if err != nil {
			return nil, SceneResponse{}, toolError(err)
		}
		return nil, SceneResponse{Scene: created, TotalDuration: sb.Project(ctx).TotalDuration}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reorder_scenes",
		Description: "Move the scene at position from so that it ends up at position to",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ReorderScenesParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		if err := sb.ReorderScenes(ctx, in.From, in.To); err != nil {
			return nil, ProjectResponse{}, toolError(err)
		}
		return nil, projectResponse(ctx, sb), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_scene",
		Description: "Move a scene into the slot held by another scene, as a drag and drop would",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MoveSceneParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		if err := sb.MoveScene(ctx, in.SceneID, in.OverSceneID); err != nil {
			return nil, ProjectResponse{}, toolError(err)
		}
		return nil, projectResponse(ctx, sb), nil
	})

	// Selection
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_scene",
		Description: "Select a scene; attach_asset applies to the selected scene",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SceneIDParams) (*sdkmcp.CallToolResult, SelectionResponse, error) {
		if err := sb.SelectScene(ctx, in.SceneID); err != nil {
			return nil, SelectionResponse{}, toolError(err)
		}
		return nil, selectionResponse(ctx, sb), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_selection",
		Description: "Get the selected scene, if any",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, SelectionResponse, error) {
		return nil, selectionResponse(ctx, sb), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_selection",
		Description: "Clear the scene selection",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, SelectionResponse, error) {
		sb.ClearSelection(ctx)
		return nil, SelectionResponse{}, nil
	})

	// Assets
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_assets",
		Description: "Search the stock asset catalog by title or tag",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchAssetsParams) (*sdkmcp.CallToolResult, AssetsResponse, error) {
		if svc.Assets == nil {
			return nil, AssetsResponse{}, errServiceUnavailable
		}
		var assets []asset.Asset
		var err error
		if in.Tag != "" {
			assets, err = svc.Assets.ListByTag(ctx, in.Tag)
		} else {
			opts := asset.SearchOptions{Limit: in.Limit, Offset: in.Offset}
			for _, typ := range in.Types {
				opts.Types = append(opts.Types, asset.AssetType(typ))
			}
			assets, err = svc.Assets.Search(ctx, in.Query, opts)
		}
		if err != nil {
			return nil, AssetsResponse{}, toolError(err)
		}
		if assets == nil {
			assets = []asset.Asset{}
		}
		return nil, AssetsResponse{Assets: assets}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "attach_asset",
		Description: "Use an asset as the image of the selected scene",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in AttachAssetParams) (*sdkmcp.CallToolResult, AttachAssetResponse, error) {
		updated, a, err := sb.AttachAsset(ctx, in.AssetID)
		if err != nil {
			return nil, AttachAssetResponse{}, toolError(err)
		}
		return nil, AttachAssetResponse{Scene: updated, Asset: *a}, nil
	})

	// Generation
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_scenes",
		Description: "Generate a script from a premise and append its scene breakdown",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GenerateScenesParams) (*sdkmcp.CallToolResult, GenerateScenesResponse, error) {
		result, err := sb.GenerateScenes(ctx, script.GenerateRequest{
			Prompt:   in.Prompt,
			Genre:    in.Genre,
			Tone:     in.Tone,
			Duration: in.Duration,
			Tier:     script.UserTier(in.Tier),
		})
		if err != nil {
			return nil, GenerateScenesResponse{}, toolError(err)
		}
		return nil, GenerateScenesResponse{
			Script:            result.Script,
			Scenes:            result.Scenes,
			EstimatedDuration: result.EstimatedDuration,
			TotalDuration:     sb.Project(ctx).TotalDuration,
		}, nil
	})

	// Activity
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "List recent storyboard changes, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetRecentActivityParams) (*sdkmcp.CallToolResult, ActivityResponse, error) {
		if svc.Activity == nil {
			return nil, ActivityResponse{}, errServiceUnavailable
		}
		opts := activity.ListActivityOptions{
			ProjectID: sb.Project(ctx).ID,
			Limit:     in.Limit,
			Offset:    in.Offset,
		}
		if in.SceneID != "" {
			opts.SceneID = &in.SceneID
		}
		if in.Type != "" {
			typ := activity.ActivityType(in.Type)
			opts.ActivityType = &typ
		}
		entries, err := svc.Activity.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, ActivityResponse{}, toolError(err)
		}
		return nil, toActivityResponse(entries), nil
	})
}

func projectResponse(ctx context.Context, sb StoryboardService) ProjectResponse {
	selected := ""
	if sc, ok := sb.Selection(ctx); ok {
		selected = sc.ID
	}
	return toProjectResponse(sb.Project(ctx), selected)
}

func selectionResponse(ctx context.Context, sb StoryboardService) SelectionResponse {
	sc, ok := sb.Selection(ctx)
	if !ok {
		return SelectionResponse{}
	}
	return SelectionResponse{Selected: &sc}
}
