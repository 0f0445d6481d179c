package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theroyaltyguy/royalty-health/internal/chat"
	"github.com/theroyaltyguy/royalty-health/internal/intake"
	"github.com/theroyaltyguy/royalty-health/internal/pipeline"
	"github.com/theroyaltyguy/royalty-health/internal/report"
)

// PDFRenderer is the report-to-PDF export seam.
type PDFRenderer interface {
	Render(ctx context.Context, markdown, artistName string) ([]byte, error)
}

type Server struct {
	pipeline *pipeline.Pipeline
	chat     *chat.Service
	pdf      PDFRenderer
}

// NewServer wires the JSON API. chatSvc and pdf may be nil; their endpoints
// then report the feature as unavailable.
func NewServer(p *pipeline.Pipeline, chatSvc *chat.Service, pdf PDFRenderer) http.Handler {
	s := &Server{pipeline: p, chat: chatSvc, pdf: pdf}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/intake/questions", s.handleQuestions)
	mux.HandleFunc("/v1/followups", s.handleFollowUps)
	mux.HandleFunc("/v1/report", s.handleReport)
	mux.HandleFunc("/v1/report/html", s.handleReportHTML)
	mux.HandleFunc("/v1/report/pdf", s.handleReportPDF)
	mux.HandleFunc("/v1/chat", s.handleChat)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": map[string]any{"message": message},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs []intake.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"ok":     false,
		"errors": errs,
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// submission is the request shape shared by the follow-up and report
// endpoints.
type submission struct {
	Intake    intake.IntakeForm      `json:"intake"`
	FollowUps intake.FollowUpAnswers `json:"followUps"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"pages":     intake.IntakePages,
		"followUps": intake.FollowUpQuestions,
	})
}

func (s *Server) handleFollowUps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req submission
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if errs := intake.ValidateIntake(req.Intake); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	if errs := intake.ValidateFollowUps(req.FollowUps); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	stage2 := s.pipeline.Run(req.Intake, req.FollowUps).Stage2
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "followUps": stage2})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req submission
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if errs := intake.ValidateIntake(req.Intake); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	if errs := intake.ValidateFollowUps(req.FollowUps); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	result := s.pipeline.Run(req.Intake, req.FollowUps)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "result": result})
}

// exportRequest carries a previously generated report back in for HTML or
// PDF export.
type exportRequest struct {
	Markdown   string `json:"markdown"`
	ArtistName string `json:"artistName"`
}

func (s *Server) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Markdown == "" {
		writeError(w, http.StatusBadRequest, "markdown is required")
		return
	}
	htmlDoc, err := report.BuildHTML(req.Markdown, req.ArtistName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(htmlDoc))
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.pdf == nil {
		writeError(w, http.StatusServiceUnavailable, "PDF export is not available")
		return
	}
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Markdown == "" {
		writeError(w, http.StatusBadRequest, "markdown is required")
		return
	}
	pdf, err := s.pdf.Render(r.Context(), req.Markdown, req.ArtistName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "pdf render: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="royalty-health-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// chatRequest carries one user message plus the report context the
// assistant answers from.
type chatRequest struct {
	SessionID  string                 `json:"sessionId"`
	Message    string                 `json:"message"`
	Intake     intake.IntakeForm      `json:"intake"`
	ReportData pipeline.ReportData    `json:"reportData"`
	FollowUps  intake.FollowUpAnswers `json:"followUps"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.chat == nil {
		writeError(w, http.StatusServiceUnavailable, "chat is not configured")
		return
	}
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	reply, session, err := s.chat.Send(r.Context(), req.SessionID, req.Intake, req.ReportData, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrUnknownSession) {
			writeError(w, http.StatusNotFound, "unknown session")
			return
		}
		writeError(w, http.StatusBadGateway, "chat failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"sessionId": session,
		"response":  reply,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "status": "healthy"})
}
