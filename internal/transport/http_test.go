package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/scene"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/stretchr/testify/require"
)

type storyboardStub struct {
	project project.Project
	export  []byte
	err     error
}

func (s storyboardStub) Project(context.Context) project.Project { return s.project }
func (s storyboardStub) Timeline(context.Context) []project.TimelineSlot {
	return project.Timeline(s.project)
}
func (s storyboardStub) Export(context.Context) ([]byte, error) { return s.export, s.err }

type assetStub struct {
	query string
	tag   string
	opts  asset.SearchOptions
}

func (a *assetStub) ListByTag(_ context.Context, tag string) ([]asset.Asset, error) {
	a.tag = tag
	return []asset.Asset{{ID: "3", Title: "Forest Path"}}, nil
}

func (a *assetStub) Search(_ context.Context, query string, opts asset.SearchOptions) ([]asset.Asset, error) {
	a.query = query
	a.opts = opts
	return []asset.Asset{{ID: "1", Title: "Mountain Landscape"}}, nil
}

func newStubProject() project.Project {
	return project.Project{
		ID:    "p1",
		Title: "Pilot",
		Scenes: []scene.Scene{
			{ID: "s1", Title: "A", Duration: 60, Position: 0},
			{ID: "s2", Title: "B", Duration: 15, Position: 1},
		},
		TotalDuration: 75,
	}
}

func TestHTTPServer_Health(t *testing.T) {
	server := httptest.NewServer(NewServer(Options{AuthToken: "secret"}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPServer_MCPRoute(t *testing.T) {
	var sessionID string
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusAccepted)
	})
	server := httptest.NewServer(NewServer(Options{MCP: mcpHandler, AuthToken: "secret"}))
	t.Cleanup(server.Close)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/mcp", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Mcp-Session-Id", "sess1")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "sess1", sessionID)
}

func TestHTTPServer_ProjectAndTimeline(t *testing.T) {
	server := httptest.NewServer(NewServer(Options{Storyboard: storyboardStub{project: newStubProject()}}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/project")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p project.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	require.Equal(t, "Pilot", p.Title)
	require.Len(t, p.Scenes, 2)

	resp2, err := http.Get(server.URL + "/api/timeline")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var tl struct {
		Slots   []project.TimelineSlot `json:"slots"`
		Runtime string                 `json:"runtime"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&tl))
	require.Len(t, tl.Slots, 2)
	require.Equal(t, 60, tl.Slots[1].Start)
	require.Equal(t, "1:15", tl.Runtime)
}

func TestHTTPServer_Export(t *testing.T) {
	server := httptest.NewServer(NewServer(Options{Storyboard: storyboardStub{export: []byte("title: Pilot\n")}}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "title: Pilot\n", string(body))

	empty := httptest.NewServer(NewServer(Options{Storyboard: storyboardStub{err: storyboard.ErrEmptyStoryboard}}))
	t.Cleanup(empty.Close)
	resp3, err := http.Get(empty.URL + "/api/export")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusConflict, resp3.StatusCode)
}

func TestHTTPServer_Assets(t *testing.T) {
	assets := &assetStub{}
	server := httptest.NewServer(NewServer(Options{Assets: assets}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/assets?q=mountain&type=image&limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "mountain", assets.query)
	require.Equal(t, []asset.AssetType{asset.TypeImage}, assets.opts.Types)
	require.Equal(t, 5, assets.opts.Limit)

	tagged, err := http.Get(server.URL + "/api/assets?tag=forest")
	require.NoError(t, err)
	defer tagged.Body.Close()
	require.Equal(t, http.StatusOK, tagged.StatusCode)
	require.Equal(t, "forest", assets.tag)
	var body struct {
		Assets []asset.Asset `json:"assets"`
	}
	require.NoError(t, json.NewDecoder(tagged.Body).Decode(&body))
	require.Len(t, body.Assets, 1)
	require.Equal(t, "Forest Path", body.Assets[0].Title)

	bad, err := http.Get(server.URL + "/api/assets?limit=-1")
	require.NoError(t, err)
	defer bad.Body.Close()
	require.Equal(t, http.StatusBadRequest, bad.StatusCode)
}
