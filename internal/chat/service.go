package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
	"github.com/theroyaltyguy/royalty-health/internal/pipeline"
)

// ErrUnknownSession is returned when a request names a session id that was
// never created.
var ErrUnknownSession = errors.New("unknown chat session")

// fallbackReply mirrors what the assistant says when the model returns no
// text content at all.
const fallbackReply = "I apologize, but I couldn't generate a response. Please try again."

// Service answers report questions over a persisted per-session transcript.
type Service struct {
	caller LLMCaller
	store  *TranscriptStore
}

func NewService(caller LLMCaller, store *TranscriptStore) *Service {
	return &Service{caller: caller, store: store}
}

// Send processes one user message. An empty sessionID starts a new session;
// the (possibly new) session id is always returned so the caller can thread
// the conversation.
func (s *Service) Send(ctx context.Context, sessionID string, form intake.IntakeForm, report pipeline.ReportData, message string) (reply, session string, err error) {
	if strings.TrimSpace(message) == "" {
		return "", sessionID, errors.New("empty message")
	}

	if sessionID == "" {
		sessionID, err = s.store.CreateSession(report.ArtistName)
		if err != nil {
			return "", "", err
		}
	} else {
		ok, err := s.store.SessionExists(sessionID)
		if err != nil {
			return "", sessionID, err
		}
		if !ok {
			return "", sessionID, ErrUnknownSession
		}
	}

	history, err := s.store.History(sessionID)
	if err != nil {
		return "", sessionID, err
	}

	system := BuildSystemPrompt(form, report)
	reply, err = s.replyWithRetry(ctx, system, history, message)
	if err != nil {
		return "", sessionID, err
	}
	if strings.TrimSpace(reply) == "" {
		reply = fallbackReply
	}

	if err := s.store.AppendTurn(sessionID, RoleUser, message); err != nil {
		return "", sessionID, err
	}
	if err := s.store.AppendTurn(sessionID, RoleAssistant, reply); err != nil {
		return "", sessionID, err
	}
	return reply, sessionID, nil
}

// replyWithRetry retries transient transport failures; client errors and
// cancellation fail immediately.
func (s *Service) replyWithRetry(ctx context.Context, system string, history []Message, message string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		reply, err := s.caller.Reply(ctx, system, history, message)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		class := classifyTransportError(err)
		if class != failureTimeout && class != failureRateLimit && class != failureServer {
			break
		}
		if attempt < 3 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoffDelay(attempt)):
			}
		}
	}
	return "", fmt.Errorf("chat transport failure: %w", lastErr)
}

func backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 1 * time.Second
	}
	return 2 * time.Second
}
