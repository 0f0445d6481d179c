package pipeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

func TestPipelineRunIsDeterministic(t *testing.T) {
	p := NewWithClock(DefaultConfig(), func() time.Time { return frozenNow })
	form := allMissingForm()
	followUps := intake.FollowUpAnswers{}

	first := p.Run(form, followUps)
	second := p.Run(form, followUps)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input with a frozen clock must produce identical output")
	}
}

func TestPipelineRunTimestamp(t *testing.T) {
	p := NewWithClock(DefaultConfig(), func() time.Time { return frozenNow })
	got := p.Run(allMissingForm(), intake.FollowUpAnswers{})

	if got.Timestamp != "2025-06-15T12:00:00Z" {
		t.Fatalf("timestamp = %q", got.Timestamp)
	}
	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
}

func TestPipelineRunWiring(t *testing.T) {
	p := NewWithClock(DefaultConfig(), func() time.Time { return frozenNow })
	got := p.Run(cleanForm(), intake.FollowUpAnswers{})

	if got.CanGeneratePlan {
		t.Fatal("unanswered must-ask follow-ups should block the plan")
	}
	if got.MissingInfoWarning == "" {
		t.Fatal("expected a missing-info warning")
	}
	if got.ReportMarkdown != RenderReport(got.ReportData) {
		t.Fatal("markdown should be rendered from the report data")
	}

	complete := intake.FollowUpAnswers{
		ProPublishingEntity: intake.EntityHave,
		SERegistrationType:  intake.SEBothSides,
		AudienceLocation:    intake.AudienceMostlyUS,
	}
	got = p.Run(cleanForm(), complete)
	if !got.CanGeneratePlan || got.MissingInfoWarning != "" {
		t.Fatalf("complete answers should clear warnings: %+v", got.MissingInfoWarning)
	}
	if !got.Stage1.FollowUpsAnswered || !got.Stage2.AllAnswered {
		t.Fatal("stage outputs should agree that everything is answered")
	}
}

func TestFollowUpQuestionsShortPath(t *testing.T) {
	p := NewWithClock(DefaultConfig(), func() time.Time { return frozenNow })
	got := p.FollowUpQuestions(cleanForm())
	if len(got.MustAsk) != 2 {
		t.Fatalf("expected the two must-ask questions, got %+v", got.MustAsk)
	}
}
