package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cognilaw/lexon/pkg/lexon"
	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
)

const version = "1.0.0"

// Server exposes the analyzer over HTTP.
type Server struct {
	engine    *lexon.Lexon
	maxUpload int64
}

// New builds the API handler.
func New(engine *lexon.Lexon, maxUploadMB int) http.Handler {
	s := &Server{
		engine:    engine,
		maxUpload: int64(maxUploadMB) * 1024 * 1024,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/methods", s.handleMethods)
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/analyses", s.handleList)
		r.Get("/analyses/{id}", s.handleGet)
	})
	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Legal Document Analyzer API",
		"version": version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"llm_available": s.engine.HasLLM(),
		"services": map[string]bool{
			"text_extraction":  true,
			"clause_extractor": true,
			"llm":              s.engine.HasLLM(),
		},
	})
}

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	methods := []map[string]any{
		{
			"id":          lexon.MethodLocal,
			"name":        "Deterministic Analysis",
			"description": "Pattern-based clause extraction, fast and fully local",
			"available":   true,
		},
		{
			"id":          lexon.MethodLLM,
			"name":        "AI-Powered Analysis",
			"description": "Model-backed clause extraction",
			"available":   s.engine.HasLLM(),
		},
	}
	writeJSON(w, http.StatusOK, map[string]any{"methods": methods})
}

// clauseJSON renders absent metadata as JSON null rather than empty
// strings.
type clauseJSON struct {
	ClauseName    string  `json:"clause_name"`
	Content       string  `json:"content"`
	ClauseType    *string `json:"clause_type"`
	SectionNumber *string `json:"section_number"`
	PageReference *string `json:"page_reference"`
}

type analysisJSON struct {
	Success          bool                `json:"success"`
	ID               string              `json:"id"`
	ProcessingMethod string              `json:"processing_method"`
	DocumentInfo     documentInfoJSON    `json:"document_info"`
	ExtractedClauses map[string][]string `json:"extracted_clauses"`
	DetailedClauses  []clauseJSON        `json:"detailed_clauses"`
	RemoteKey        string              `json:"remote_key,omitempty"`
	CreatedAt        string              `json:"created_at"`
}

// documentInfoJSON describes the analyzed document. FileSize is only
// known at upload time; stored views omit it rather than report zero.
type documentInfoJSON struct {
	Filename          string `json:"filename"`
	FileSize          int    `json:"file_size,omitempty"`
	TextLength        int    `json:"text_length"`
	Pages             int    `json:"pages,omitempty"`
	TotalClausesFound int    `json:"total_clauses_found"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+1024*1024)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
		return
	}

	req := lexon.AnalyzeRequest{
		Filename: header.Filename,
		Data:     data,
		Method:   r.FormValue("processing_method"),
		Upload:   r.FormValue("upload") == "true",
	}
	if types := r.Form["types"]; len(types) > 0 {
		req.Types = types
	}

	result, err := s.engine.Analyze(r.Context(), req)
	if err != nil {
		writeAnalyzeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisJSON(result, len(data)))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	analyses, err := s.engine.List(r.Context(), limit)
	if err != nil {
		writeAnalyzeError(w, err)
		return
	}

	out := make([]analysisJSON, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, toAnalysisJSON(a, 0))
	}
	writeJSON(w, http.StatusOK, map[string]any{"analyses": out})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, found, err := s.engine.Get(r.Context(), id)
	if err != nil {
		writeAnalyzeError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisJSON(a, 0))
}

func toAnalysisJSON(a lexon.Analysis, fileSize int) analysisJSON {
	detailed := make([]clauseJSON, 0, len(a.Clauses))
	for _, c := range a.Clauses {
		detailed = append(detailed, clauseJSON{
			ClauseName:    c.Name,
			Content:       c.Content,
			ClauseType:    nullable(c.Type),
			SectionNumber: nullable(c.SectionNumber),
			PageReference: nullable(c.PageReference),
		})
	}
	return analysisJSON{
		Success:          true,
		ID:               a.ID,
		ProcessingMethod: a.Method,
		DocumentInfo: documentInfoJSON{
			Filename:          a.Filename,
			FileSize:          fileSize,
			TextLength:        a.TextLen,
			Pages:             a.Pages,
			TotalClausesFound: len(a.Clauses),
		},
		ExtractedClauses: a.ByType,
		DetailedClauses:  detailed,
		RemoteKey:        a.RemoteKey,
		CreatedAt:        a.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, internalerr.ErrInvalidInput),
		errors.Is(err, internalerr.ErrTooLarge),
		errors.Is(err, internalerr.ErrNoText):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, internalerr.ErrLLMUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, internalerr.ErrStoreUnavailable):
		writeError(w, http.StatusNotImplemented, err.Error())
	case errors.Is(err, internalerr.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"success": false, "error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
