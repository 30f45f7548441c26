// Package http exposes the decision engine as a JSON introspection and
// decision API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sharetribe/txprocess/internal/dto"
	"github.com/sharetribe/txprocess/internal/logging"
	"github.com/sharetribe/txprocess/internal/metrics"
	"github.com/sharetribe/txprocess/internal/presentation/graph"
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/ports"
)

// Server handles the decision API requests.
type Server struct {
	engine  ports.DecisionEngine
	cache   ports.DecisionCache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithCache attaches a decision cache. Cache failures are logged and treated
// as misses.
func WithCache(cache ports.DecisionCache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the HTTP handler. Metrics are registered on reg and
// served at /metrics.
func NewHandler(engine ports.DecisionEngine, reg *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{
		engine:  engine,
		metrics: metrics.New(reg),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/processes", s.listProcesses)
		r.Get("/processes/{name}", s.getProcess)
		r.Get("/processes/{name}/graph", s.getProcessGraph)
		r.Post("/state", s.resolveState)
		r.Post("/statedata", s.resolveStateData)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listProcesses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.SupportedProcesses())
}

// processView is the detail response for one process. Graph data is included
// here (unlike the list endpoint, which stays introspection-only).
type processView struct {
	Name            string      `json:"name"`
	Alias           string      `json:"alias"`
	UnitTypes       []string    `json:"unit_types"`
	InitialState    string      `json:"initial_state"`
	States          []stateView `json:"states"`
	Transitions     []string    `json:"transitions"`
	AttentionStates []string    `json:"attention_states,omitempty"`
}

type stateView struct {
	Name        string            `json:"name"`
	Final       bool              `json:"final,omitempty"`
	Transitions map[string]string `json:"transitions,omitempty"`
}

func (s *Server) getProcess(w http.ResponseWriter, r *http.Request) {
	proc, err := s.engine.Process(chi.URLParam(r, "name"))
	if err != nil {
		s.processError(w, r, err)
		return
	}

	view := processView{
		Name:            proc.Name,
		Alias:           proc.Alias,
		UnitTypes:       proc.UnitTypes,
		InitialState:    proc.InitialState,
		Transitions:     proc.Transitions,
		AttentionStates: proc.AttentionStates,
	}
	for _, st := range proc.States {
		view.States = append(view.States, stateView{
			Name:        st.Name,
			Final:       st.Final,
			Transitions: st.Transitions,
		})
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) getProcessGraph(w http.ResponseWriter, r *http.Request) {
	proc, err := s.engine.Process(chi.URLParam(r, "name"))
	if err != nil {
		s.processError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(proc.Definition, nil)))
}

// stateResponse is the POST /v1/state reply. An empty state means the state
// cannot be determined from the recorded last transition.
type stateResponse struct {
	ProcessName string `json:"process_name"`
	State       string `json:"state"`
}

func (s *Server) resolveState(w http.ResponseWriter, r *http.Request) {
	var doc dto.TransactionDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tx := doc.ToDomain()
	state, err := s.engine.State(tx)
	if err != nil {
		s.metrics.StateLookups.WithLabelValues(tx.Attributes.ProcessName, "unknown_process").Inc()
		s.processError(w, r, err)
		return
	}

	outcome := "resolved"
	if state == "" {
		outcome = "undetermined"
	}
	s.metrics.StateLookups.WithLabelValues(tx.Attributes.ProcessName, outcome).Inc()

	writeJSON(w, http.StatusOK, stateResponse{
		ProcessName: tx.Attributes.ProcessName,
		State:       state,
	})
}

// stateDataRequest is the POST /v1/statedata body.
type stateDataRequest struct {
	Transaction dto.TransactionDoc `json:"transaction"`
	Role        string             `json:"role"`
}

func (s *Server) resolveStateData(w http.ResponseWriter, r *http.Request) {
	var req stateDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	role := domain.Role(req.Role)
	if !role.Valid() {
		http.Error(w, "unknown role: "+req.Role, http.StatusBadRequest)
		return
	}

	tx := req.Transaction.ToDomain()
	key := ports.CacheKey(tx.Attributes.ProcessName, tx.Attributes.LastTransition, req.Role)

	if s.cache != nil {
		cached, err := s.cache.Get(r.Context(), key)
		switch {
		case err == nil:
			s.metrics.CacheRequests.WithLabelValues("hit").Inc()
			writeJSON(w, http.StatusOK, cached)
			return
		case errors.Is(err, domain.ErrCacheMiss):
			s.metrics.CacheRequests.WithLabelValues("miss").Inc()
		default:
			s.metrics.CacheRequests.WithLabelValues("error").Inc()
			s.logger.Warn("decision cache get failed", "error", err)
		}
	}

	data, err := s.engine.StateData(tx, role)
	if err != nil {
		s.processError(w, r, err)
		return
	}
	s.metrics.Decisions.WithLabelValues(data.ProcessName, req.Role).Inc()

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), key, data); err != nil {
			s.logger.Warn("decision cache set failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, data)
}

// processError maps engine errors to status codes. An unknown process is a
// client problem (unprocessable transaction), everything else is internal.
func (s *Server) processError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrProcessNotFound) {
		s.logger.Info("unknown process requested", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
