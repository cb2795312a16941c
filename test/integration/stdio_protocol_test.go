package integration_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// serverBinary is built once per test run from ./cmd/server.
var serverBinary string

func TestMain(m *testing.M) {
	os.Exit(runWithBinary(m))
}

func runWithBinary(m *testing.M) int {
	dir, err := os.MkdirTemp("", "storyboard-integration")
	if err != nil {
		fmt.Fprintf(os.Stderr, "temp dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(dir)

	serverBinary = filepath.Join(dir, "storyboard")
	build := exec.Command("go", "build", "-o", serverBinary, "./cmd/server")
	build.Dir = filepath.Join("..", "..")
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "build server: %v\n%s", err, out)
		return 1
	}
	return m.Run()
}

func serverCommand(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, serverBinary)
	cmd.Env = append(os.Environ(),
		"STORYBOARD_TRANSPORT=stdio",
		"STORYBOARD_DB_PATH=:memory:",
		"STORYBOARD_LOG_LEVEL=info",
		"STORYBOARD_CONFIG_PATH=",
		"STORYBOARD_LOG_PATH=",
	)
	return cmd
}

func TestStdio_SDKClient(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: serverCommand(ctx)}, nil)
	require.NoError(t, err)
	defer session.Close()

	info := session.InitializeResult()
	require.NotNil(t, info)
	require.Equal(t, "storyboard", info.ServerInfo.Name)
	require.Equal(t, "0.1.0", info.ServerInfo.Version)

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 18)

	added, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "add_scene",
		Arguments: map[string]any{"title": "Opening", "duration": 5},
	})
	require.NoError(t, err)
	require.False(t, added.IsError)

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "get_project"})
	require.NoError(t, err)
	require.False(t, res.IsError)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)

	var p struct {
		Scenes        []struct{ Title string } `json:"scenes"`
		TotalDuration int                      `json:"total_duration"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &p))
	require.Len(t, p.Scenes, 1)
	require.Equal(t, "Opening", p.Scenes[0].Title)
	require.Equal(t, 5, p.TotalDuration)

	missing, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "delete_scene",
		Arguments: map[string]any{"scene_id": "scene-missing"},
	})
	require.NoError(t, err)
	require.True(t, missing.IsError)
}

// Stdout must carry nothing but JSON-RPC frames; logs belong on stderr.
func TestStdio_OutputStreams(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := serverCommand(ctx)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	frames := make(chan map[string]any)
	bad := make(chan string, 1)
	go readFrames(stdout, frames, bad)

	send := func(msg string) {
		_, err := io.WriteString(stdin, msg+"\n")
		require.NoError(t, err)
	}
	await := func(id float64) map[string]any {
		for {
			select {
			case f, ok := <-frames:
				require.True(t, ok, "stdout closed before response %v", id)
				if got, _ := f["id"].(float64); got == id {
					return f
				}
			case line := <-bad:
				t.Fatalf("non JSON-RPC output on stdout: %q", line)
			case <-ctx.Done():
				t.Fatalf("timed out waiting for response %v", id)
			}
		}
	}

	send(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","capabilities":{},"clientInfo":{"name":"raw","version":"1.0"}}}`)
	initResp := await(1)
	require.Contains(t, initResp, "result")

	send(`{"jsonrpc":"2.0","method":"notifications/initialized","params":{}}`)
	send(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"add_scene","arguments":{"title":"Opening","duration":5}}}`)
	callResp := await(2)
	result, ok := callResp["result"].(map[string]any)
	require.True(t, ok, "tools/call response: %v", callResp)
	require.NotEqual(t, true, result["isError"])

	require.NoError(t, stdin.Close())
	for range frames {
	}
	select {
	case line := <-bad:
		t.Fatalf("non JSON-RPC output on stdout: %q", line)
	default:
	}
	_ = cmd.Wait()

	require.Contains(t, stderr.String(), "storyboard ready")
	require.Contains(t, stderr.String(), "add_scene")
}

func readFrames(r io.Reader, frames chan<- map[string]any, bad chan<- string) {
	defer close(frames)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		var frame map[string]any
		if err := json.Unmarshal(line, &frame); err != nil || frame["jsonrpc"] != "2.0" {
			select {
			case bad <- string(line):
			default:
			}
			continue
		}
		frames <- frame
	}
}
