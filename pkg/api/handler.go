package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/metaconomy/phone-number/pkg/kit"
	"github.com/metaconomy/phone-number/pkg/scan"
	"github.com/metaconomy/phone-number/pkg/vanity"
)

// NewRouter returns an http.Handler with all Phonescan API routes.
// scanner may be nil when no scan store is configured; /v1/scan then
// answers 503.
func NewRouter(reg *vanity.Registry, scanner *scan.Scanner) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		preprocess:      preprocessEndpoint(),
		preprocessBatch: preprocessBatchEndpoint(),
		vanityLookup:    vanityLookupEndpoint(reg),
		listDicts:       listDictsEndpoint(reg),
		reg:             reg,
	}
	if scanner != nil {
		h.scan = scanEndpoint(scanner)
	}

	mux.HandleFunc("GET /v1/number/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/number/batch", h.handleBatch)
	mux.HandleFunc("GET /v1/number/{text}", h.handleNumber)
	mux.HandleFunc("GET /v1/vanity/{digits}", h.handleVanity)
	mux.HandleFunc("GET /v1/dicts", h.handleListDicts)
	mux.HandleFunc("GET /v1/scan", methodNotAllowed)
	mux.HandleFunc("POST /v1/scan", h.handleScan)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	preprocess      kit.Endpoint
	preprocessBatch kit.Endpoint
	vanityLookup    kit.Endpoint
	listDicts       kit.Endpoint
	scan            kit.Endpoint
	reg             *vanity.Registry
}

// --- preprocess single text ---

func (h *handler) handleNumber(w http.ResponseWriter, r *http.Request) {
	text := r.PathValue("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing text")
		return
	}

	resp, err := h.preprocess(r.Context(), &preprocessReq{Text: text})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- preprocess batch ---

type httpBatchRequest struct {
	Texts []string `json:"texts"`
}

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.preprocessBatch(r.Context(), &preprocessBatchReq{Texts: req.Texts})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- vanity lookup ---

func (h *handler) handleVanity(w http.ResponseWriter, r *http.Request) {
	digits := r.PathValue("digits")

	resp, err := h.vanityLookup(r.Context(), &vanityLookupReq{
		Digits: digits,
		Opts:   parseLookupOpts(r),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list wordlists ---

func (h *handler) handleListDicts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listDicts(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- scan ---

type httpScanRequest struct {
	Source string `json:"source,omitempty"`
	Text   string `json:"text"`
}

func (h *handler) handleScan(w http.ResponseWriter, r *http.Request) {
	if h.scan == nil {
		writeError(w, http.StatusServiceUnavailable, "scan store not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	var req httpScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.scan(r.Context(), &scanReq{Source: req.Source, Text: req.Text})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status     string `json:"status"`
	Wordlists  int    `json:"wordlists"`
	TotalWords int    `json:"total_words"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Wordlists:  h.reg.DictCount(),
		TotalWords: h.reg.TotalWords(),
	})
}

// --- helpers ---

func parseLookupOpts(r *http.Request) *vanity.LookupOptions {
	opts := &vanity.LookupOptions{}
	if v := r.URL.Query().Get("languages"); v != "" {
		opts.Languages = strings.Split(v, ",")
	}
	if v := r.URL.Query().Get("dicts"); v != "" {
		opts.Dicts = strings.Split(v, ",")
	}
	return opts
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
