package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theroyaltyguy/royalty-health/internal/chat"
	"github.com/theroyaltyguy/royalty-health/internal/intake"
	"github.com/theroyaltyguy/royalty-health/internal/pipeline"
)

type scriptedCaller struct {
	reply string
	err   error
}

func (c *scriptedCaller) Reply(ctx context.Context, system string, history []chat.Message, message string) (string, error) {
	return c.reply, c.err
}

type fakePDF struct {
	out []byte
	err error
}

func (f *fakePDF) Render(ctx context.Context, markdown, artistName string) ([]byte, error) {
	return f.out, f.err
}

func newTestServer(t *testing.T, caller chat.LLMCaller, pdf PDFRenderer) http.Handler {
	t.Helper()
	frozen := func() time.Time { return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) }
	p := pipeline.NewWithClock(pipeline.DefaultConfig(), frozen)

	var chatSvc *chat.Service
	if caller != nil {
		store, err := chat.NewTranscriptStore(filepath.Join(t.TempDir(), "chat.db"))
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		chatSvc = chat.NewService(caller, store)
	}
	return NewServer(p, chatSvc, pdf)
}

func validIntake() intake.IntakeForm {
	return intake.IntakeForm{
		ArtistName:      "Test Artist",
		LegalName:       "Test Person",
		TimeReleasing:   intake.Time2To5Years,
		CatalogSize:     intake.Catalog11To25,
		Distributor:     intake.DistributorTuneCore,
		MonthlyIncome:   intake.Income100To500,
		PRO:             intake.PROBMI,
		SoundExchange:   intake.AnswerYes,
		MLC:             intake.AnswerYes,
		PublishingAdmin: intake.AdminNone,
		PreviousAdmin:   intake.AnswerNo,
		HasCowriters:    intake.No,
		ChangedNames:    intake.No,
		SongsByOthers:   intake.AnswerNo,
		ManagingFor:     intake.ManagingOwnMusic,
		Disputes:        intake.DisputeNo,
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestQuestionsEndpoint(t *testing.T) {
	handler := newTestServer(t, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/intake/questions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		OK    bool              `json:"ok"`
		Pages []json.RawMessage `json:"pages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK || len(resp.Pages) != 4 {
		t.Fatalf("expected 4 intake pages, got %d", len(resp.Pages))
	}

	if rec := postJSON(t, handler, "/v1/intake/questions", map[string]any{}); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST should be rejected, got %d", rec.Code)
	}
}

func TestReportEndpointValidates(t *testing.T) {
	handler := newTestServer(t, nil, nil)
	rec := postJSON(t, handler, "/v1/report", map[string]any{
		"intake": intake.IntakeForm{},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK     bool                `json:"ok"`
		Errors []intake.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || len(resp.Errors) == 0 {
		t.Fatalf("expected validation errors, got %+v", resp)
	}
	if resp.Errors[0].Field == "" || resp.Errors[0].Message == "" {
		t.Fatalf("error entries need field and message: %+v", resp.Errors[0])
	}
}

func TestReportEndpointRunsPipeline(t *testing.T) {
	handler := newTestServer(t, nil, nil)
	rec := postJSON(t, handler, "/v1/report", map[string]any{
		"intake": validIntake(),
		"followUps": intake.FollowUpAnswers{
			ProPublishingEntity: intake.EntityHave,
			SERegistrationType:  intake.SEBothSides,
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK     bool            `json:"ok"`
		Result pipeline.Result `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK {
		t.Fatal("expected ok response")
	}
	if !strings.HasPrefix(resp.Result.ReportMarkdown, "# Royalty Health Report") {
		t.Fatalf("unexpected markdown head: %q", resp.Result.ReportMarkdown[:40])
	}
	if resp.Result.Timestamp != "2025-06-15T12:00:00Z" {
		t.Fatalf("timestamp = %q", resp.Result.Timestamp)
	}
	if resp.Result.Stage1.Calculations.Score != 10 {
		t.Fatalf("score = %d", resp.Result.Stage1.Calculations.Score)
	}
}

func TestFollowUpsEndpoint(t *testing.T) {
	handler := newTestServer(t, nil, nil)
	rec := postJSON(t, handler, "/v1/followups", map[string]any{"intake": validIntake()})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK        bool                  `json:"ok"`
		FollowUps pipeline.Stage2Output `json:"followUps"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.FollowUps.MustAsk) != 2 {
		t.Fatalf("expected 2 must-ask questions, got %+v", resp.FollowUps.MustAsk)
	}
}

func TestReportHTMLEndpoint(t *testing.T) {
	handler := newTestServer(t, nil, nil)
	rec := postJSON(t, handler, "/v1/report/html", exportRequest{
		Markdown:   "# Royalty Health Report\n\n## Quick Summary\n",
		ArtistName: "Test Artist",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Royalty Health Report</h1>") {
		t.Fatal("markdown not converted")
	}

	rec = postJSON(t, handler, "/v1/report/html", exportRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty markdown should be 400, got %d", rec.Code)
	}
}

func TestReportPDFEndpoint(t *testing.T) {
	handler := newTestServer(t, nil, &fakePDF{out: []byte("%PDF-1.4 fake")})
	rec := postJSON(t, handler, "/v1/report/pdf", exportRequest{Markdown: "# Report"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}

	handler = newTestServer(t, nil, nil)
	rec = postJSON(t, handler, "/v1/report/pdf", exportRequest{Markdown: "# Report"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("missing renderer should be 503, got %d", rec.Code)
	}

	handler = newTestServer(t, nil, &fakePDF{err: errors.New("chromium not found")})
	rec = postJSON(t, handler, "/v1/report/pdf", exportRequest{Markdown: "# Report"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("render failure should be 500, got %d", rec.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	handler := newTestServer(t, &scriptedCaller{reply: "Start with Priority 1."}, nil)
	rec := postJSON(t, handler, "/v1/chat", chatRequest{
		Message:    "What should I do first?",
		Intake:     validIntake(),
		ReportData: pipeline.ReportData{ArtistName: "Test Artist"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK        bool   `json:"ok"`
		SessionID string `json:"sessionId"`
		Response  string `json:"response"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response != "Start with Priority 1." || resp.SessionID == "" {
		t.Fatalf("unexpected chat response: %+v", resp)
	}

	rec = postJSON(t, handler, "/v1/chat", chatRequest{Message: "hi", SessionID: "missing"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown session should be 404, got %d", rec.Code)
	}

	rec = postJSON(t, handler, "/v1/chat", chatRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty message should be 400, got %d", rec.Code)
	}
}

func TestChatEndpointUnconfigured(t *testing.T) {
	handler := newTestServer(t, nil, nil)
	rec := postJSON(t, handler, "/v1/chat", chatRequest{Message: "hi"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("chat without a caller should be 503, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer(t, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"healthy"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
