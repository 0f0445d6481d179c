package pipeline

import (
	"testing"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

func stage1For(form intake.IntakeForm, followUps intake.FollowUpAnswers) Stage1Output {
	return ProcessIntake(form, followUps, frozenNow)
}

func TestGenerateFollowUpsCleanForm(t *testing.T) {
	// BMI member with no admin and SoundExchange registered: f16 always
	// applies, f17 and f18 are triggered and must be asked.
	got := GenerateFollowUps(stage1For(cleanForm(), intake.FollowUpAnswers{}))

	if len(got.MustAsk) != 2 {
		t.Fatalf("expected 2 must-ask questions, got %d", len(got.MustAsk))
	}
	if got.MustAsk[0].ID != "f17_pro_publishing_entity" || got.MustAsk[1].ID != "f18_soundexchange_registration_type" {
		t.Fatalf("unexpected must-ask ids: %s, %s", got.MustAsk[0].ID, got.MustAsk[1].ID)
	}
	if len(got.NiceToHave) != 1 || got.NiceToHave[0].ID != "f16_audience_location" {
		t.Fatalf("unexpected nice-to-have set: %+v", got.NiceToHave)
	}
	if got.AllAnswered {
		t.Fatal("questions outstanding, AllAnswered must be false")
	}
	// Must-ask questions come first in the combined list.
	if got.Questions[0].Priority != PriorityMustAsk {
		t.Fatalf("combined list not priority ordered: %+v", got.Questions[0])
	}
	for _, q := range got.Questions {
		if q.Reason == "" {
			t.Fatalf("question %s has no reason", q.ID)
		}
	}
}

func TestGenerateFollowUpsSkipsAnswered(t *testing.T) {
	followUps := intake.FollowUpAnswers{
		ProPublishingEntity: intake.EntityHave,
		SERegistrationType:  intake.SEBothSides,
	}
	got := GenerateFollowUps(stage1For(cleanForm(), followUps))

	if len(got.MustAsk) != 0 {
		t.Fatalf("answered must-ask questions should drop out, got %+v", got.MustAsk)
	}
	if len(got.Questions) != 1 || got.Questions[0].ID != "f16_audience_location" {
		t.Fatalf("expected only the audience question, got %+v", got.Questions)
	}
	if got.AllAnswered {
		t.Fatal("the audience question is still outstanding")
	}

	followUps.AudienceLocation = intake.AudienceMostlyUS
	got = GenerateFollowUps(stage1For(cleanForm(), followUps))
	if !got.AllAnswered || got.TotalQuestions != 0 {
		t.Fatalf("everything answered, got %+v", got)
	}
}

func complicatedForm() intake.IntakeForm {
	form := cleanForm()
	form.PreviousAdmin = intake.AnswerYes
	form.HasCowriters = intake.Yes
	form.ChangedNames = intake.Yes
	form.SongsByOthers = intake.AnswerYes
	form.ManagingFor = intake.InheritedCatalog
	form.Disputes = intake.DisputePossibly
	return form
}

func TestGenerateFollowUpsCapsCombinedListOnly(t *testing.T) {
	got := GenerateFollowUps(stage1For(complicatedForm(), intake.FollowUpAnswers{}))

	if len(got.Questions) != 8 || got.TotalQuestions != 8 {
		t.Fatalf("combined list should cap at 8, got %d", len(got.Questions))
	}
	// f1, f2, f5, f14, f17, f18 triggered and unanswered.
	if len(got.MustAsk) != 6 {
		t.Fatalf("per-priority lists are uncapped, got %d must-ask", len(got.MustAsk))
	}
	// f6, f10, f11, f12, f13 (f3 needs a publishing admin).
	if len(got.ShouldAsk) != 5 {
		t.Fatalf("expected 5 should-ask, got %d: %+v", len(got.ShouldAsk), got.ShouldAsk)
	}
	for i, q := range got.Questions[:6] {
		if q.Priority != PriorityMustAsk {
			t.Fatalf("question %d should be must-ask, got %s (%s)", i, q.Priority, q.ID)
		}
	}
	for _, q := range got.Questions[6:] {
		if q.Priority != PriorityShouldAsk {
			t.Fatalf("tail of capped list should be should-ask, got %s (%s)", q.Priority, q.ID)
		}
	}
}

func TestCanGeneratePlanGatesOnMustAsk(t *testing.T) {
	if CanGeneratePlan(stage1For(cleanForm(), intake.FollowUpAnswers{})) {
		t.Fatal("unanswered must-ask questions should block the plan")
	}
	followUps := intake.FollowUpAnswers{
		ProPublishingEntity: intake.EntityHave,
		SERegistrationType:  intake.SEBothSides,
	}
	if !CanGeneratePlan(stage1For(cleanForm(), followUps)) {
		t.Fatal("only nice-to-have questions remain, plan should be allowed")
	}
}

func TestMissingInfoWarningText(t *testing.T) {
	got := MissingInfoWarning(stage1For(cleanForm(), intake.FollowUpAnswers{}))
	want := "We're missing important information that could significantly affect your report. Please answer the follow-up questions to get accurate recommendations."
	if got != want {
		t.Fatalf("must-ask warning = %q", got)
	}

	// Must-ask answered, should-ask outstanding.
	form := cleanForm()
	form.PreviousAdmin = intake.AnswerYes
	followUps := intake.FollowUpAnswers{
		PreviousAdmins:      []string{"songtrust"},
		AdminCancelled:      intake.CancelledYes,
		ProPublishingEntity: intake.EntityHave,
		SERegistrationType:  intake.SEBothSides,
	}
	got = MissingInfoWarning(stage1For(form, followUps))
	want = "Some additional information would help us give you more accurate recommendations. Your report will include caveats where information is incomplete."
	if got != want {
		t.Fatalf("should-ask warning = %q", got)
	}

	// Only nice-to-have left: no warning.
	followUps.PreviousAdminStatus = intake.PrevAdminActive
	if got := MissingInfoWarning(stage1For(form, followUps)); got != "" {
		t.Fatalf("expected no warning, got %q", got)
	}
}
