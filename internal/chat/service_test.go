package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

type fakeCaller struct {
	replies []string
	errs    []error
	calls   int

	lastSystem  string
	lastHistory []Message
	lastMessage string
}

func (f *fakeCaller) Reply(ctx context.Context, system string, history []Message, message string) (string, error) {
	f.lastSystem = system
	f.lastHistory = history
	f.lastMessage = message
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	reply := ""
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return reply, err
}

func TestServiceSendCreatesSessionAndPersistsTurns(t *testing.T) {
	caller := &fakeCaller{replies: []string{"Start with Priority 1."}}
	svc := NewService(caller, newTestStore(t))

	reply, session, err := svc.Send(context.Background(), "",
		intake.IntakeForm{ArtistName: "Test Artist"}, sampleReport(), "What first?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "Start with Priority 1." || session == "" {
		t.Fatalf("reply=%q session=%q", reply, session)
	}
	if !strings.Contains(caller.lastSystem, "Royalty Health Score") {
		t.Fatal("system prompt should embed the report")
	}
	if len(caller.lastHistory) != 0 || caller.lastMessage != "What first?" {
		t.Fatalf("first turn should have no history: %+v", caller.lastHistory)
	}

	history, err := svc.store.History(session)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].Role != RoleUser || history[1].Role != RoleAssistant {
		t.Fatalf("transcript = %+v", history)
	}

	// Second message threads through the same session with history.
	caller.replies = append(caller.replies, "About an hour.")
	if _, _, err := svc.Send(context.Background(), session,
		intake.IntakeForm{}, sampleReport(), "How long?"); err != nil {
		t.Fatalf("second send: %v", err)
	}
	if len(caller.lastHistory) != 2 {
		t.Fatalf("expected prior turns in history, got %d", len(caller.lastHistory))
	}
}

func TestServiceSendRejectsUnknownSession(t *testing.T) {
	svc := NewService(&fakeCaller{}, newTestStore(t))
	_, _, err := svc.Send(context.Background(), "missing", intake.IntakeForm{}, sampleReport(), "hi")
	if !errors.Is(err, ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
}

func TestServiceSendRejectsEmptyMessage(t *testing.T) {
	svc := NewService(&fakeCaller{}, newTestStore(t))
	if _, _, err := svc.Send(context.Background(), "", intake.IntakeForm{}, sampleReport(), "   "); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestServiceSendFallbackOnEmptyReply(t *testing.T) {
	svc := NewService(&fakeCaller{replies: []string{"  "}}, newTestStore(t))
	reply, _, err := svc.Send(context.Background(), "", intake.IntakeForm{}, sampleReport(), "hi")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != fallbackReply {
		t.Fatalf("reply = %q", reply)
	}
}

func TestServiceSendDoesNotRetryClientErrors(t *testing.T) {
	caller := &fakeCaller{errs: []error{errors.New("status code: 400 bad request")}}
	svc := NewService(caller, newTestStore(t))

	_, session, err := svc.Send(context.Background(), "", intake.IntakeForm{}, sampleReport(), "hi")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if caller.calls != 1 {
		t.Fatalf("client errors must not retry, got %d calls", caller.calls)
	}
	// Nothing persisted on failure.
	history, _ := svc.store.History(session)
	if len(history) != 0 {
		t.Fatalf("failed call should not persist turns, got %+v", history)
	}
}

func TestServiceSendRetriesServerErrors(t *testing.T) {
	caller := &fakeCaller{
		errs:    []error{errors.New("status code: 500 upstream"), nil},
		replies: []string{"", "Recovered."},
	}
	svc := NewService(caller, newTestStore(t))

	reply, _, err := svc.Send(context.Background(), "", intake.IntakeForm{}, sampleReport(), "hi")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "Recovered." || caller.calls != 2 {
		t.Fatalf("reply=%q calls=%d", reply, caller.calls)
	}
}

func TestClassifyTransportError(t *testing.T) {
	if got := classifyTransportError(errors.New("429 too many requests")); got != failureRateLimit {
		t.Fatalf("rate limit classified as %v", got)
	}
	if got := classifyTransportError(errors.New("status code: 400 bad request")); got != failureClient {
		t.Fatalf("client error classified as %v", got)
	}
	if got := classifyTransportError(context.DeadlineExceeded); got != failureTimeout {
		t.Fatalf("deadline classified as %v", got)
	}
	if got := classifyTransportError(errors.New("connection reset")); got != failureServer {
		t.Fatalf("default should be server, got %v", got)
	}
}

func TestBackoffDelay(t *testing.T) {
	if backoffDelay(1).Seconds() != 1 {
		t.Fatal("attempt 1 should be 1s")
	}
	if backoffDelay(2).Seconds() != 2 {
		t.Fatal("attempt 2 should be 2s")
	}
}
