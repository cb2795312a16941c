package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/storyboard/internal/domain/asset"
	"github.com/rpggio/storyboard/internal/domain/project"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
)

// Storyboard is the read side of the editing session served over HTTP.
type Storyboard interface {
	Project(ctx context.Context) project.Project
	Timeline(ctx context.Context) []project.TimelineSlot
	Export(ctx context.Context) ([]byte, error)
}

// AssetSearcher searches the asset catalog.
type AssetSearcher interface {
	Search(ctx context.Context, query string, opts asset.SearchOptions) ([]asset.Asset, error)
	ListByTag(ctx context.Context, tag string) ([]asset.Asset, error)
}

// Options configures the HTTP router.
type Options struct {
	MCP        http.Handler
	Storyboard Storyboard
	Assets     AssetSearcher
	// AuthToken, when set, is required as a bearer token on every route but /health.
	AuthToken string
	Logger    *slog.Logger
}

// NewServer creates the HTTP router: /health, the MCP endpoint at /mcp and a
// small read-only JSON API under /api.
func NewServer(opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(SessionMiddleware)
	r.Use(requestLogger(logger))

	r.Get("/health", handleHealth)

	r.Group(func(r chi.Router) {
		if opts.AuthToken != "" {
			r.Use(AuthMiddleware(opts.AuthToken))
		}

		if opts.MCP != nil {
			r.Handle("/mcp", opts.MCP)
			r.Handle("/mcp/*", opts.MCP)
		}

		r.Route("/api", func(r chi.Router) {
			if opts.Storyboard != nil {
				r.Get("/project", handleProject(opts.Storyboard))
				r.Get("/timeline", handleTimeline(opts.Storyboard))
				r.Get("/export", handleExport(opts.Storyboard))
			}
			if opts.Assets != nil {
				r.Get("/assets", handleAssets(opts.Assets))
			}
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleProject(sb Storyboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sb.Project(r.Context()))
	}
}

func handleTimeline(sb Storyboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := sb.Project(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{
			"slots":          project.Timeline(p),
			"total_duration": p.TotalDuration,
			"runtime":        project.FormatDuration(p.TotalDuration),
		})
	}
}

func handleExport(sb Storyboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := sb.Export(r.Context())
		if errors.Is(err, storyboard.ErrEmptyStoryboard) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Header().Set("Content-Disposition", `attachment; filename="storyboard.yaml"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func handleAssets(assets AssetSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if tag := q.Get("tag"); tag != "" {
			results, err := assets.ListByTag(r.Context(), tag)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "search failed")
				return
			}
			writeAssets(w, results)
			return
		}

		opts := asset.SearchOptions{}
		for _, typ := range q["type"] {
			opts.Types = append(opts.Types, asset.AssetType(typ))
		}
		var err error
		if opts.Limit, err = intParam(q.Get("limit")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		if opts.Offset, err = intParam(q.Get("offset")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}

		results, err := assets.Search(r.Context(), q.Get("q"), opts)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "search failed")
			return
		}
		writeAssets(w, results)
	}
}

func writeAssets(w http.ResponseWriter, results []asset.Asset) {
	if results == nil {
		results = []asset.Asset{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": results})
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("invalid integer")
	}
	return n, nil
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			sessionID, _ := SessionIDFromContext(r.Context())
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"session_id", sessionID,
			)
		})
	}
}
