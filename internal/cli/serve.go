package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/diagramlab/stencil/pkg/diagram"
	"github.com/diagramlab/stencil/pkg/document"
	stencilerrors "github.com/diagramlab/stencil/pkg/errors"
	"github.com/diagramlab/stencil/pkg/store"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve diagram documents over an HTTP API",
		Long: `Serve diagram documents over an HTTP API.

Documents are stored in the backend selected by the config file
(~/.config/stencil/config.toml): memory, file, redis, or mongo. Every stored
document passes integrity validation - edges referencing missing nodes or
ports are dropped and reported in the response.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg Config) error {
	docs, err := newStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer docs.Close()

	api := &apiServer{store: docs}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return withLogger(context.Background(), c.Logger)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s (store: %s)", cfg.Server.Addr, cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c.Logger.Info("Shutting down")
	return srv.Shutdown(shutdownCtx)
}

// =============================================================================
// Handlers
// =============================================================================

// apiServer holds handler dependencies.
type apiServer struct {
	store store.Store
}

// routes assembles the API router.
func (s *apiServer) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1/documents", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/analysis", s.handleAnalysis)
		})
	})
	return r
}

// analysisResponse is the JSON shape of the analysis endpoint.
type analysisResponse struct {
	NodeCount int           `json:"node_count"`
	EdgeCount int           `json:"edge_count"`
	Roots     []string      `json:"roots"`
	HasCycle  bool          `json:"has_cycle"`
	Bounds    *diagram.Rect `json:"bounds"` // null for an empty graph
}

// createResponse is the JSON shape of the create endpoint.
type createResponse struct {
	ID           string `json:"id"`
	DroppedEdges int    `json:"dropped_edges"`
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *apiServer) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *apiServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode document: %w", err))
		return
	}

	// Round the document through the graph so invalid edges never reach
	// storage.
	g, dropped := document.ToGraph(doc)
	clean := document.FromGraph(g)

	id := uuid.NewString()
	if err := s.store.Set(r.Context(), id, clean); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	logger := loggerFromContext(r.Context())
	logger.Infof("Stored document %s (%d nodes, %d edges, %d dropped)", id, g.NodeCount(), g.EdgeCount(), dropped)

	writeJSON(w, http.StatusCreated, createResponse{ID: id, DroppedEdges: dropped})
}

func (s *apiServer) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := stencilerrors.ValidateDocumentID(id); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	doc, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *apiServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := stencilerrors.ValidateDocumentID(id); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *apiServer) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := stencilerrors.ValidateDocumentID(id); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	doc, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	g, _ := document.ToGraph(doc)

	roots := g.Roots()
	rootIDs := make([]string, len(roots))
	for i, n := range roots {
		rootIDs[i] = n.ID
	}

	resp := analysisResponse{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Roots:     rootIDs,
		HasCycle:  g.HasCycle(),
	}
	if bounds, ok := g.Bounds(); ok {
		resp.Bounds = &bounds
	}

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
