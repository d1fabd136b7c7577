package httpadapter

import (
	"embed"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lucasferrer/persona-agent/internal/app/interview"
	"github.com/lucasferrer/persona-agent/internal/domain"
)

//go:embed static/index.html
var staticFS embed.FS

type Server struct {
	svc *interview.Service
}

// AuthConfig carries the basic-auth credentials for the API routes. Empty
// credentials disable the gate (local development).
type AuthConfig struct {
	User string
	Pass string
}

func NewServer(svc *interview.Service, auth AuthConfig) http.Handler {
	s := &Server{svc: svc}

	// API routes sit behind the auth gate; the page shell and the health
	// check do not.
	api := http.NewServeMux()
	api.HandleFunc("/api/start", s.handleStart)
	api.HandleFunc("/api/message", s.handleMessage)
	api.HandleFunc("/api/history/", s.handleHistory)

	mux := http.NewServeMux()
	mux.Handle("/api/", withBasicAuth(api, auth))
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/", s.handleShell)

	return chainMiddlewares(mux, withLogging, withCORS, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type startResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	Done      bool   `json:"done"`
}

type messageRequest struct {
	SessionID string `json:"sessionId"`
	UserInput string `json:"userInput"`
}

type messageResponse struct {
	Reply   string         `json:"reply"`
	Done    bool           `json:"done"`
	Profile domain.Profile `json:"profile"`
}

type turnResponse struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type historyResponse struct {
	History []turnResponse `json:"history"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	out, err := s.svc.Start(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, startResponse{
		SessionID: string(out.SessionID),
		Reply:     out.Reply,
		Done:      out.Done,
	})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.SessionID == "" {
		badRequest(w, "sessionId is required")
		return
	}

	out, err := s.svc.Advance(r.Context(), interview.AdvanceInput{
		SessionID: domain.SessionID(req.SessionID),
		UserText:  req.UserInput,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Reply:   out.Reply,
		Done:    out.Done,
		Profile: out.Profile,
	})
}

// /api/history/{sessionId}
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/history/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	turns, err := s.svc.History(r.Context(), domain.SessionID(id))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := historyResponse{History: make([]turnResponse, 0, len(turns))}
	for _, t := range turns {
		resp.History = append(resp.History, turnResponse{
			Role: string(t.Role),
			Text: t.Text,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleShell serves the embedded single-page client.
func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine failures onto status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "invalid session",
		})
	case errors.Is(err, domain.ErrBackendUnavailable):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "backend unavailable",
		})
	default:
		internalError(w, err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
