package api

import (
	"encoding/json"
	"net/http"

	"github.com/hazyhaar/phonekey/pkg/kit"
	"github.com/hazyhaar/phonekey/pkg/langpack"
)

// NewRouter returns an http.Handler with all Phonekey API routes.
func NewRouter(reg *langpack.Registry) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		encode:        encodeEndpoint(reg),
		match:         matchEndpoint(reg),
		matchBatch:    matchBatchEndpoint(reg),
		listLanguages: listLanguagesEndpoint(reg),
		reg:           reg,
	}

	mux.HandleFunc("GET /v1/match/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/match/batch", h.handleMatchBatch)
	mux.HandleFunc("GET /v1/match", h.handleMatch)
	mux.HandleFunc("GET /v1/encode/{name}", h.handleEncode)
	mux.HandleFunc("GET /v1/languages", h.handleListLanguages)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	encode        kit.Endpoint
	match         kit.Endpoint
	matchBatch    kit.Endpoint
	listLanguages kit.Endpoint
	reg           *langpack.Registry
}

// --- encode single name ---

func (h *handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}

	resp, err := h.encode(r.Context(), &encodeReq{
		Name: name,
		Opts: parseOpts(r),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- match a pair ---

func (h *handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, "missing a or b query parameter")
		return
	}

	resp, err := h.match(r.Context(), &matchReq{A: a, B: b, Opts: parseOpts(r)})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- match batch ---

type httpBatchRequest struct {
	Pairs    []NamePair `json:"pairs"`
	Mode     string     `json:"mode,omitempty"`
	NameType string     `json:"name_type,omitempty"`
}

func (h *handler) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.matchBatch(r.Context(), &matchBatchReq{
		Pairs: req.Pairs,
		Opts:  &EncodeOptions{Mode: req.Mode, NameType: req.NameType},
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list languages ---

func (h *handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listLanguages(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status    string `json:"status"`
	Languages int    `json:"languages"`
	RulePacks int    `json:"rule_packs"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Languages: len(h.reg.Languages()),
		RulePacks: h.reg.PackCount(),
	})
}

// --- helpers ---

func parseOpts(r *http.Request) *EncodeOptions {
	return &EncodeOptions{
		Mode:     r.URL.Query().Get("mode"),
		NameType: r.URL.Query().Get("name_type"),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
