package agent

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/cloud-report/pkg/agentio"
	agentmodels "github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/de-tools/cloud-report/pkg/services/provider"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler exposes the registered providers over HTTP for local testing. The
// response body is the same chunked envelope stream the agent runtime sees.
type Handler struct {
	registry provider.Registry
}

func NewHandler(registry provider.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) ListFunctions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.registry.Functions()); err != nil {
		logger.Error().Err(err).Msg("failed to encode function list")
	}
}

func (h *Handler) Invoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	function := chi.URLParam(r, "function")

	p, err := h.registry.Get(function)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var event agentmodels.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}
	if event.Function == "" {
		event.Function = function
	}

	w.Header().Set("Content-Type", "application/json")
	if err := p.Handle(ctx, event, newResponseSink(w)); err != nil {
		logger.Error().
			Err(err).
			Str("function", function).
			Msg("failed to stream response")
	}
}

// responseSink adapts an http.ResponseWriter to the chunked stream sink,
// flushing after every chunk.
type responseSink struct {
	w http.ResponseWriter
}

func newResponseSink(w http.ResponseWriter) agentio.Sink {
	return &responseSink{w: w}
}

func (s *responseSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return n, err
}

func (s *responseSink) Close() error {
	return nil
}
