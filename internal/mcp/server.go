package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/scene"
	"github.com/rpggio/storyboard/internal/domain/script"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
)

// StoryboardService defines the editing session operations needed by MCP.
type StoryboardService interface {
	Project(ctx context.Context) project.Project
	Timeline(ctx context.Context) []project.TimelineSlot
	AddScene(ctx context.Context, d scene.Draft) (scene.Scene, error)
	AddBlankScene(ctx context.Context) (scene.Scene, error)
	UpdateScene(ctx context.Context, id string, p scene.Patch) (scene.Scene, error)
	DeleteScene(ctx context.Context, id string) error
	DuplicateScene(ctx context.Context, id string) (scene.Scene, error)
	ReorderScenes(ctx context.Context, from, to int) error
	MoveScene(ctx context.Context, activeID, overID string) error
	SelectScene(ctx context.Context, id string) error
	ClearSelection(ctx context.Context)
	Selection(ctx context.Context) (scene.Scene, bool)
	AttachAsset(ctx context.Context, assetID string) (scene.Scene, *asset.Asset, error)
	GenerateScenes(ctx context.Context, req script.GenerateRequest) (*storyboard.GenerateResult, error)
	RenameProject(ctx context.Context, title, description string) (project.Project, error)
	Export(ctx context.Context) ([]byte, error)
}

// AssetService defines asset catalog operations needed by MCP.
type AssetService interface {
	Search(ctx context.Context, query string, opts asset.SearchOptions) ([]asset.Asset, error)
	Get(ctx context.Context, id string) (*asset.Asset, error)
	ListByTag(ctx context.Context, tag string) ([]asset.Asset, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Storyboard StoryboardService
	Assets     AssetService
	Activity   ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "storyboard",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)
	registerProjectResources(server, cfg.Services.Storyboard)

	server.AddReceivingMiddleware(toolLoggingMiddleware(logger))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
