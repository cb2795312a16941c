package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/storyboard/internal/config"
	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/script"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/rpggio/storyboard/internal/mcp"
	"github.com/rpggio/storyboard/internal/sqlite"
	"github.com/rpggio/storyboard/internal/transport"
)

const version = "0.1.0"

// app holds the wired services for one process.
type app struct {
	storyboard *storyboard.Service
	assets     *asset.Service
	activity   *activity.Service
	mcp        *sdkmcp.Server
	logger     *slog.Logger
}

func newApp(ctx context.Context, cfg config.Config, db *sqlite.DB, logger *slog.Logger) (*app, error) {
	assetSvc := asset.NewService(sqlite.NewAssetRepository(db), logger)
	if err := assetSvc.Seed(ctx, asset.StockCatalog()); err != nil {
		return nil, fmt.Errorf("seed asset catalog: %w", err)
	}
	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)

	manager := project.NewManager(project.NewProject(cfg.Project.Title, cfg.Project.Description))
	sb := storyboard.NewService(
		manager,
		assetSvc,
		script.NewTemplateGenerator(),
		activitySvc,
		script.UserTier(cfg.User.Tier),
		logger,
	)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Storyboard: sb,
			Assets:     assetSvc,
			Activity:   activitySvc,
		},
		Version: version,
		Logger:  logger,
	})

	logger.Info("storyboard ready", "project_id", manager.ProjectID(), "tier", cfg.User.Tier, "db", cfg.DB.Path)
	return &app{
		storyboard: sb,
		assets:     assetSvc,
		activity:   activitySvc,
		mcp:        server,
		logger:     logger,
	}, nil
}

func (a *app) httpHandler(authToken string) http.Handler {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return a.mcp },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
	return transport.NewServer(transport.Options{
		MCP:        mcpHandler,
		Storyboard: a.storyboard,
		Assets:     a.assets,
		AuthToken:  authToken,
		Logger:     a.logger,
	})
}
