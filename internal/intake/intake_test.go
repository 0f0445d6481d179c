package intake

import "testing"

func validForm() IntakeForm {
	return IntakeForm{
		ArtistName:      "Test Artist",
		LegalName:       "Test Person",
		TimeReleasing:   Time2To5Years,
		CatalogSize:     Catalog11To25,
		Distributor:     DistributorDistroKid,
		MonthlyIncome:   Income100To500,
		PRO:             PRONone,
		SoundExchange:   AnswerNo,
		MLC:             AnswerNo,
		PublishingAdmin: AdminNone,
		PreviousAdmin:   AnswerNo,
		HasCowriters:    No,
		ChangedNames:    No,
		SongsByOthers:   AnswerNo,
		ManagingFor:     ManagingOwnMusic,
		Disputes:        DisputeNo,
	}
}

func TestValidateIntakeAccepts(t *testing.T) {
	if errs := ValidateIntake(validForm()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateIntakeRequiredFields(t *testing.T) {
	form := validForm()
	form.ArtistName = ""
	form.TimeReleasing = ""
	errs := ValidateIntake(form)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Field != "q1_artist_name" || errs[0].Message != "required" {
		t.Fatalf("unexpected first error: %+v", errs[0])
	}
	if errs[1].Field != "q3_time_releasing" {
		t.Fatalf("unexpected second error: %+v", errs[1])
	}
}

func TestValidateIntakeEnumMembership(t *testing.T) {
	form := validForm()
	form.Distributor = "spotify"
	errs := ValidateIntake(form)
	if len(errs) != 1 || errs[0].Field != "q5_distributor" {
		t.Fatalf("expected one q5 error, got %v", errs)
	}
}

func TestValidateFollowUpsIgnoresUnanswered(t *testing.T) {
	if errs := ValidateFollowUps(FollowUpAnswers{}); len(errs) != 0 {
		t.Fatalf("expected no errors for empty answers, got %v", errs)
	}
}

func TestValidateFollowUpsRejectsBadEnum(t *testing.T) {
	answers := FollowUpAnswers{
		AdminCancelled: "maybe",
		PreviousAdmins: []string{"songtrust", "bandcamp"},
	}
	errs := ValidateFollowUps(answers)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Field != "f1_previous_admins" {
		t.Fatalf("unexpected field: %+v", errs[0])
	}
	if errs[1].Field != "f2_admin_cancelled" {
		t.Fatalf("unexpected field: %+v", errs[1])
	}
}

func TestTriggeredFollowUpsBaseline(t *testing.T) {
	got := TriggeredFollowUps(validForm())
	if len(got) != 1 || got[0].ID != "f16_audience_location" {
		t.Fatalf("expected only f16 for a clean intake, got %d questions", len(got))
	}
}

func TestTriggeredFollowUpsPreviousAdmin(t *testing.T) {
	form := validForm()
	form.PreviousAdmin = AnswerYes
	ids := map[string]bool{}
	for _, q := range TriggeredFollowUps(form) {
		ids[q.ID] = true
	}
	for _, want := range []string{"f1_previous_admins", "f2_admin_cancelled", "f11_previous_admin_status"} {
		if !ids[want] {
			t.Fatalf("expected %s to trigger, got %v", want, ids)
		}
	}
}

func TestF3AndF17AreMutuallyExclusive(t *testing.T) {
	form := validForm()
	form.PRO = PROASCAP

	// No real admin: entity question, not registration-order question.
	if FollowUpNeeded("f3_pro_registration_order", form) {
		t.Fatal("f3 should not trigger without a publishing admin")
	}
	if !FollowUpNeeded("f17_pro_publishing_entity", form) {
		t.Fatal("f17 should trigger with a PRO and no admin")
	}

	// DistroKid does not count as a publishing admin.
	form.PublishingAdmin = AdminDistroKid
	if FollowUpNeeded("f3_pro_registration_order", form) {
		t.Fatal("f3 should not trigger with DistroKid as admin")
	}
	if !FollowUpNeeded("f17_pro_publishing_entity", form) {
		t.Fatal("f17 should still trigger with DistroKid as admin")
	}

	// Real admin flips the pair.
	form.PublishingAdmin = AdminSongtrust
	if !FollowUpNeeded("f3_pro_registration_order", form) {
		t.Fatal("f3 should trigger with PRO and real admin")
	}
	if FollowUpNeeded("f17_pro_publishing_entity", form) {
		t.Fatal("f17 should not trigger with a real admin")
	}
}

func TestF18RequiresSoundExchangeYes(t *testing.T) {
	form := validForm()
	if FollowUpNeeded("f18_soundexchange_registration_type", form) {
		t.Fatal("f18 should not trigger when not registered")
	}
	form.SoundExchange = AnswerYes
	if !FollowUpNeeded("f18_soundexchange_registration_type", form) {
		t.Fatal("f18 should trigger when registered")
	}
}

func TestQuestionCatalogShape(t *testing.T) {
	if len(IntakePages) != 4 {
		t.Fatalf("expected 4 pages, got %d", len(IntakePages))
	}
	all := AllQuestions()
	if len(all) != 17 {
		t.Fatalf("expected 17 questions, got %d", len(all))
	}
	seen := map[string]bool{}
	for _, q := range all {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
	if len(FollowUpQuestions) != 18 {
		t.Fatalf("expected 18 follow-ups, got %d", len(FollowUpQuestions))
	}
}

func TestAnsweredCoversEveryFollowUp(t *testing.T) {
	full := FollowUpAnswers{
		PreviousAdmins:       []string{"songtrust"},
		AdminCancelled:       CancelledYes,
		ProRegistrationOrder: RegisteredMyselfFirst,
		CowriterCount:        Cowriters1To5,
		SplitSheetsStatus:    SplitsAll,
		CowriterRegistered:   CowritersRegistered,
		PreviousNames:        "Old Name",
		SongsPerName:         "Old Name: 3",
		SongsByOthersCount:   Others1To3,
		RegisteredOnOthers:   OnOthersAll,
		PreviousAdminStatus:  PrevAdminActive,
		Relationship:         "family",
		Deceased:             "no",
		LegalAuthority:       "yes_have_docs",
		DisputeDescription:   "contested sample",
		AudienceLocation:     AudienceMostlyUS,
		ProPublishingEntity:  EntityHave,
		SERegistrationType:   SEBothSides,
	}
	var empty FollowUpAnswers
	for _, q := range FollowUpQuestions {
		if !full.Answered(q.ID) {
			t.Fatalf("%s not reported answered on a full record", q.ID)
		}
		if empty.Answered(q.ID) {
			t.Fatalf("%s reported answered on an empty record", q.ID)
		}
	}
}
