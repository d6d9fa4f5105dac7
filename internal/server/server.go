package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	automaton "github.com/geange/automaton-tree"
	"github.com/geange/automaton-tree/internal/logging"
	"github.com/geange/automaton-tree/internal/metrics"
	"github.com/geange/automaton-tree/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed static/index.html
var indexHTML []byte

// Simulator runs one simulation per call.
type Simulator interface {
	Simulate(raw string) (*automaton.Result, error)
}

// Options wires the handler's collaborators.
type Options struct {
	Simulator Simulator
	Renderer  *render.Renderer
	// Registry, when set, receives the simulation metrics and is exposed on /metrics.
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// Server serves simulations over HTTP.
type Server struct {
	sim      Simulator
	renderer *render.Renderer
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Input string `json:"input"`
}

// SimulateResponse is the answer of POST /simulate.
type SimulateResponse struct {
	Input    string       `json:"input"`
	Accepted bool         `json:"accepted"`
	Message  string       `json:"message"`
	Nodes    int          `json:"nodes"`
	Tree     *render.Node `json:"tree"`
}

// ErrorResponse carries a user facing message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler.
func NewHandler(opts Options) http.Handler {
	s := &Server{
		sim:      opts.Simulator,
		renderer: opts.Renderer,
		logger:   opts.Logger,
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	r.Get("/health", s.Health)
	r.Post("/simulate", s.Simulate)
	r.Get("/graph", s.Graph)

	if opts.Registry != nil {
		s.metrics = metrics.New(opts.Registry)
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Simulate handles POST /simulate.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	res, ok := s.run(w, body.Input)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, SimulateResponse{
		Input:    res.Input,
		Accepted: res.Accepted,
		Message:  res.Message(),
		Nodes:    res.Nodes,
		Tree:     s.renderer.Hierarchy(res.Root),
	})
}

// Graph handles GET /graph?input=...&format=mermaid|dot|json.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "mermaid"
	}
	if format != "mermaid" && format != "dot" && format != "json" {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "unknown format " + format})
		return
	}

	res, ok := s.run(w, r.URL.Query().Get("input"))
	if !ok {
		return
	}

	switch format {
	case "json":
		s.writeJSON(w, http.StatusOK, s.renderer.Hierarchy(res.Root))
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.Write([]byte(s.renderer.DOT(res.Root)))
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(s.renderer.Mermaid(res.Root)))
	}
}

// run simulates input and answers the error itself when it fails.
func (s *Server) run(w http.ResponseWriter, input string) (*automaton.Result, bool) {
	res, err := s.sim.Simulate(input)
	if s.metrics != nil {
		s.metrics.Observe(res, err)
	}
	if err == nil {
		return res, true
	}

	switch {
	case errors.Is(err, automaton.ErrInvalidInput):
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: automaton.InvalidInputMessage})
	case errors.Is(err, automaton.ErrInputTooLong), errors.Is(err, automaton.ErrTreeTooLarge):
		s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		s.logger.Error("simulate", "input", input, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "simulation failed"})
	}
	return nil, false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "error", err)
	}
}
