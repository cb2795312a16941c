package testserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/script"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/rpggio/storyboard/internal/mcp"
	"github.com/rpggio/storyboard/internal/sqlite"
	"github.com/rpggio/storyboard/internal/transport"
	"github.com/stretchr/testify/require"
)

// TestServer runs the full storyboard stack behind an httptest server.
type TestServer struct {
	Server     *httptest.Server
	DB         *sqlite.DB
	Storyboard *storyboard.Service
	Token      string
}

// New starts a server whose HTTP routes require token. Tier applies to
// generation requests that do not name one.
func New(t *testing.T, token string, tier script.UserTier) *TestServer {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	assetSvc := asset.NewService(sqlite.NewAssetRepository(db), nil)
	require.NoError(t, assetSvc.Seed(ctx, asset.StockCatalog()))
	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)

	manager := project.NewManager(project.NewProject("My Storyboard", "A new creative project"))
	sb := storyboard.NewService(manager, assetSvc, script.NewTemplateGenerator(), activitySvc, tier, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Storyboard: sb, Assets: assetSvc, Activity: activitySvc},
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server { return mcpServer }, nil)

	server := httptest.NewServer(transport.NewServer(transport.Options{
		MCP:        mcpHandler,
		Storyboard: sb,
		Assets:     assetSvc,
		AuthToken:  token,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:     server,
		DB:         db,
		Storyboard: sb,
		Token:      token,
	}
}

// Connect opens an MCP client session over streamable HTTP.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: ts.Client(),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

// Client returns an HTTP client that sends the bearer token.
func (ts *TestServer) Client() *http.Client {
	return &http.Client{Transport: bearerTransport{token: ts.Token, next: http.DefaultTransport}}
}

type bearerTransport struct {
	token string
	next  http.RoundTripper
}

func (b bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if b.token == "" {
		return b.next.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.next.RoundTrip(req)
}
