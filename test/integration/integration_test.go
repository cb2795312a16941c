package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/scene"
	"github.com/rpggio/storyboard/internal/domain/script"
	"github.com/rpggio/storyboard/internal/testserver"
	"github.com/stretchr/testify/require"
)

const token = "integration-token"

type sceneResult struct {
	Scene         scene.Scene `json:"scene"`
	TotalDuration int         `json:"total_duration"`
}

func callTool(t *testing.T, cs *sdkmcp.ClientSession, name string, args map[string]any, out any) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	require.False(t, res.IsError, "%s failed: %s", name, text.Text)
	if out != nil {
		require.NoError(t, json.Unmarshal([]byte(text.Text), out))
	}
}

func TestStoryboardWorkflowOverHTTP(t *testing.T) {
	ts := testserver.New(t, token, script.TierPro)
	cs := ts.Connect(t)

	var opening, chase sceneResult
	callTool(t, cs, "add_scene", map[string]any{"title": "Opening", "duration": 8, "shot_type": "wide"}, &opening)
	callTool(t, cs, "add_scene", map[string]any{"title": "Chase", "duration": 12, "camera_movement": "tracking"}, &chase)
	require.Equal(t, 20, chase.TotalDuration)

	var generated struct {
		Scenes        []scene.Scene `json:"scenes"`
		TotalDuration int           `json:"total_duration"`
	}
	callTool(t, cs, "generate_scenes", map[string]any{"prompt": "a lighthouse keeper finds a map"}, &generated)
	require.Len(t, generated.Scenes, 3)
	require.Equal(t, 32, generated.TotalDuration)

	callTool(t, cs, "reorder_scenes", map[string]any{"from": 1, "to": 0}, nil)
	callTool(t, cs, "select_scene", map[string]any{"scene_id": opening.Scene.ID}, nil)
	var attached sceneResult
	callTool(t, cs, "attach_asset", map[string]any{"asset_id": "1"}, &attached)
	require.NotEmpty(t, attached.Scene.ImageURL)

	// The HTTP API reads the same session the MCP tools mutate.
	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+"/api/project", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p project.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	require.Len(t, p.Scenes, 5)
	require.Equal(t, "Chase", p.Scenes[0].Title)
	require.Equal(t, "Opening", p.Scenes[1].Title)
	require.Equal(t, 32, p.TotalDuration)
	for i, s := range p.Scenes {
		require.Equal(t, i, s.Position)
	}
}

func TestHTTPRequiresToken(t *testing.T) {
	ts := testserver.New(t, token, script.TierPro)

	resp, err := http.Get(ts.Server.URL + "/api/project")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExportAfterDelete(t *testing.T) {
	ts := testserver.New(t, "", script.TierPro)
	cs := ts.Connect(t)

	var only sceneResult
	callTool(t, cs, "add_scene", map[string]any{"title": "Only", "duration": 4}, &only)
	callTool(t, cs, "delete_scene", map[string]any{"scene_id": only.Scene.ID}, nil)

	resp, err := http.Get(ts.Server.URL + "/api/export")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}
