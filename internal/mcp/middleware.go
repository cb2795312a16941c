package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolLoggingMiddleware logs one line per tool call with its outcome.
func toolLoggingMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			call, ok := req.(*sdkmcp.CallToolRequest)
			if !ok || call.Params == nil {
				return next(ctx, method, req)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			attrs := []any{"tool", call.Params.Name, "duration", time.Since(start), "session_id", safeSessionID(req)}

			switch res, _ := result.(*sdkmcp.CallToolResult); {
			case err != nil:
				logger.Warn("tool call failed", append(attrs, "error", err)...)
			case res != nil && res.IsError:
				logger.Info("tool call rejected", append(attrs, "reason", toolErrorText(res))...)
			default:
				logger.Info("tool call", attrs...)
			}
			return result, err
		}
	}
}

func toolErrorText(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if text, ok := c.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
