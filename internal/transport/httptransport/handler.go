package httptransport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/transport/tracedto"
)

type Handler struct {
	svc    app.SortService
	logger *zap.Logger
}

func NewHandler(svc app.SortService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/trace", h.Trace)
	mux.HandleFunc("/trace/dot", h.DOT)
	mux.HandleFunc("/benchmark", h.Benchmark)
	mux.HandleFunc("/healthz", h.Healthz)
}

func (h *Handler) Trace(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTraceRequest(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Trace(in.ToApp())
	if err != nil {
		h.fail(w, "trace failed", err)
		return
	}
	writeJSON(w, http.StatusOK, tracedto.NewTraceResponse(res))
}

func (h *Handler) DOT(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTraceRequest(w, r)
	if !ok {
		return
	}

	dot, err := h.svc.DOT(in.ToApp())
	if err != nil {
		h.fail(w, "dot export failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dot))
}

func (h *Handler) Benchmark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in tracedto.BenchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, tracedto.ErrorResponse{Error: "invalid json", Details: err.Error()})
		return
	}

	results, err := h.svc.Benchmark(r.Context(), in.SizeOrDefault(), in.Repetitions)
	if err != nil {
		h.fail(w, "benchmark failed", err)
		return
	}
	writeJSON(w, http.StatusOK, tracedto.BenchmarkResponse{Results: results})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeTraceRequest(w http.ResponseWriter, r *http.Request) (tracedto.TraceRequest, bool) {
	var in tracedto.TraceRequest
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return in, false
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, tracedto.ErrorResponse{Error: "invalid json", Details: err.Error()})
		return in, false
	}
	return in, true
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	status := tracedto.Status(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	}
	writeJSON(w, status, tracedto.ErrorResponse{Error: msg, Details: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
