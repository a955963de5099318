package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/ppda"
	"github.com/aretw0/ppda/internal/presentation/graph"
	"github.com/aretw0/ppda/pkg/catalog"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxGenerateCount bounds the number of samples one request may ask for.
const MaxGenerateCount = 10000

// Service exposes the models and stored samples served over HTTP.
type Service interface {
	Models() []catalog.Model
	Engine(name string) (*ppda.Engine, error)
	Samples(ctx context.Context) ([]*domain.Sample, error)
	Sample(ctx context.Context, id string) (*domain.Sample, error)
}

// Server holds the HTTP handlers.
type Server struct {
	Service Service
}

// NewHandler creates a new HTTP handler for svc. When gatherer is not nil
// its metrics are served on /metrics.
func NewHandler(svc Service, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{Service: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/models", func(r chi.Router) {
		r.Get("/", s.ListModels)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.GetModel)
			r.Get("/graph", s.GetGraph)
			r.Post("/accept", s.Accept)
			r.Post("/generate", s.Generate)
		})
	})
	r.Get("/samples", s.ListSamples)
	r.Get("/samples/{id}", s.GetSample)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ModelSummary is one entry of GET /models.
type ModelSummary struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Alphabet      []domain.Symbol `json:"alphabet"`
	StackAlphabet []domain.Symbol `json:"stack_alphabet"`
	Normalized    bool            `json:"normalized"`
}

// ModelDetail is the body of GET /models/{name}.
type ModelDetail struct {
	ModelSummary
	States      []domain.State      `json:"states"`
	Transitions []domain.Transition `json:"transitions"`
	MaxSteps    int                 `json:"max_steps"`
}

// AcceptRequest is the body of POST /models/{name}/accept.
// Symbols takes precedence; otherwise Text is tokenized with Sep.
type AcceptRequest struct {
	Symbols []string `json:"symbols,omitempty"`
	Text    string   `json:"text,omitempty"`
	Sep     string   `json:"sep,omitempty"`
}

// AcceptResponse carries the exact weight in "n/d" form.
type AcceptResponse struct {
	Model   string          `json:"model"`
	Symbols []domain.Symbol `json:"symbols"`
	Weight  string          `json:"weight"`
	Float   float64         `json:"float"`
}

// GenerateRequest is the body of POST /models/{name}/generate.
type GenerateRequest struct {
	Count int   `json:"count"`
	Seed  int64 `json:"seed"`
}

// GenerateResponse lists the generated samples.
type GenerateResponse struct {
	Samples []domain.Sample `json:"samples"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListModels handles GET /models.
func (s *Server) ListModels(w http.ResponseWriter, r *http.Request) {
	models := s.Service.Models()
	out := make([]ModelSummary, 0, len(models))
	for _, m := range models {
		eng, err := s.Service.Engine(m.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		out = append(out, summarize(m, eng))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetModel handles GET /models/{name}.
func (s *Server) GetModel(w http.ResponseWriter, r *http.Request) {
	m, eng, ok := s.lookup(w, r)
	if !ok {
		return
	}
	model := eng.Model()
	writeJSON(w, http.StatusOK, ModelDetail{
		ModelSummary: summarize(m, eng),
		States:       model.States(),
		Transitions:  model.Transitions(),
		MaxSteps:     model.MaxSteps(),
	})
}

// GetGraph handles GET /models/{name}/graph.
// The optional trace and sep query parameters highlight the path of a string.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	_, eng, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var overlay *graph.GraphOverlay
	q := r.URL.Query()
	if q.Has("trace") {
		tr, err := eng.Trace(r.Context(), domain.Tokenize(q.Get("trace"), q.Get("sep")))
		if err != nil {
			writeError(w, err)
			return
		}
		overlay = graph.NewOverlay(tr.States, tr.Current)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(eng.Model(), overlay))
}

// Accept handles POST /models/{name}/accept.
func (s *Server) Accept(w http.ResponseWriter, r *http.Request) {
	_, eng, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var body AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		slog.Warn("Accept: Invalid request body", "error", err)
		return
	}

	y := domain.Tokenize(body.Text, body.Sep)
	if body.Symbols != nil {
		y = domain.NewString(domain.Symbols(body.Symbols...)...)
	}

	weight, err := eng.Accept(r.Context(), y)
	if err != nil {
		writeError(w, err)
		return
	}
	f, _ := weight.Float64()
	writeJSON(w, http.StatusOK, AcceptResponse{
		Model:   eng.Name(),
		Symbols: []domain.Symbol(y),
		Weight:  weight.RatString(),
		Float:   f,
	})
}

// Generate handles POST /models/{name}/generate. An empty body generates
// one sample with the default seed.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	_, eng, ok := s.lookup(w, r)
	if !ok {
		return
	}

	body := GenerateRequest{Count: 1}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		slog.Warn("Generate: Invalid request body", "error", err)
		return
	}
	if body.Count == 0 {
		body.Count = 1
	}
	if body.Count < 0 || body.Count > MaxGenerateCount {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("count must be between 1 and %d", MaxGenerateCount),
		})
		return
	}

	var samples []domain.Sample
	if body.Count == 1 {
		sample, err := eng.Generate(r.Context(), body.Seed)
		if err != nil {
			writeError(w, err)
			return
		}
		samples = []domain.Sample{*sample}
	} else {
		var err error
		samples, err = eng.Batch(r.Context(), body.Count, body.Seed)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, GenerateResponse{Samples: samples})
}

// ListSamples handles GET /samples.
func (s *Server) ListSamples(w http.ResponseWriter, r *http.Request) {
	samples, err := s.Service.Samples(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if samples == nil {
		samples = []*domain.Sample{}
	}
	writeJSON(w, http.StatusOK, samples)
}

// GetSample handles GET /samples/{id}.
func (s *Server) GetSample(w http.ResponseWriter, r *http.Request) {
	sample, err := s.Service.Sample(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sample)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "ppda-http",
		"version": ppda.Version,
	})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (catalog.Model, *ppda.Engine, bool) {
	name := chi.URLParam(r, "name")
	for _, m := range s.Service.Models() {
		if m.Name != name {
			continue
		}
		eng, err := s.Service.Engine(name)
		if err != nil {
			writeError(w, err)
			return catalog.Model{}, nil, false
		}
		return m, eng, true
	}
	writeError(w, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name))
	return catalog.Model{}, nil, false
}

func summarize(m catalog.Model, eng *ppda.Engine) ModelSummary {
	return ModelSummary{
		Name:          m.Name,
		Description:   m.Description,
		Alphabet:      eng.Model().Alphabet(),
		StackAlphabet: eng.Model().StackAlphabet(),
		Normalized:    eng.Check() == nil,
	}
}

// statusFor maps domain and automaton errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrModelNotFound), errors.Is(err, domain.ErrSampleNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSymbol), errors.Is(err, domain.ErrInvalidWeight):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPopBottom),
		errors.Is(err, domain.ErrNotNormalized),
		errors.Is(err, domain.ErrStepLimit),
		errors.Is(err, domain.ErrDeadConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
