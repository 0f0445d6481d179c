package intake

import "fmt"

// FieldError describes one rejected field in a submitted form. Validation
// failures are data, not errors: the HTTP layer serializes the whole list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func enumError(field, got string, allowed []string) FieldError {
	return FieldError{
		Field:   field,
		Message: fmt.Sprintf("invalid value %q, expected one of %v", got, allowed),
	}
}

func oneOf(got string, allowed []string) bool {
	for _, a := range allowed {
		if got == a {
			return true
		}
	}
	return false
}

// optionValues pulls the allowed values for a select question out of the
// catalog so validation cannot drift from what the form offers.
func optionValues(q Question) []string {
	vals := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		vals = append(vals, o.Value)
	}
	return vals
}

// ValidateIntake checks required fields and enum membership for Q1-Q17.
// A nil return means the form is acceptable as pipeline input.
func ValidateIntake(form IntakeForm) []FieldError {
	var errs []FieldError

	if form.ArtistName == "" {
		errs = append(errs, FieldError{Field: "q1_artist_name", Message: "required"})
	}
	if form.LegalName == "" {
		errs = append(errs, FieldError{Field: "q2_legal_name", Message: "required"})
	}

	selects := []struct {
		field string
		value string
	}{
		{"q3_time_releasing", string(form.TimeReleasing)},
		{"q4_catalog_size", string(form.CatalogSize)},
		{"q5_distributor", string(form.Distributor)},
		{"q6_monthly_income", string(form.MonthlyIncome)},
		{"q7_pro", string(form.PRO)},
		{"q8_soundexchange", string(form.SoundExchange)},
		{"q9_mlc", string(form.MLC)},
		{"q10_publishing_admin", string(form.PublishingAdmin)},
		{"q11_previous_admin", string(form.PreviousAdmin)},
		{"q12_has_cowriters", string(form.HasCowriters)},
		{"q13_changed_names", string(form.ChangedNames)},
		{"q14_songs_by_others", string(form.SongsByOthers)},
		{"q15_managing_for", string(form.ManagingFor)},
		{"q16_disputes", string(form.Disputes)},
	}
	for _, s := range selects {
		q, ok := QuestionByID(s.field)
		if !ok {
			continue
		}
		allowed := optionValues(q)
		if s.value == "" {
			errs = append(errs, FieldError{Field: s.field, Message: "required"})
			continue
		}
		if !oneOf(s.value, allowed) {
			errs = append(errs, enumError(s.field, s.value, allowed))
		}
	}

	return errs
}

// ValidateFollowUps checks enum membership for every answered follow-up.
// Unanswered questions are never an error here: whether an answer is
// missing is the pipeline's concern, not the schema's.
func ValidateFollowUps(answers FollowUpAnswers) []FieldError {
	var errs []FieldError

	if len(answers.PreviousAdmins) > 0 {
		q, _ := FollowUpByID("f1_previous_admins")
		allowed := optionValues(q.Question)
		for _, a := range answers.PreviousAdmins {
			if !oneOf(a, allowed) {
				errs = append(errs, enumError("f1_previous_admins", a, allowed))
			}
		}
	}

	selects := []struct {
		field string
		value string
	}{
		{"f2_admin_cancelled", string(answers.AdminCancelled)},
		{"f3_pro_registration_order", string(answers.ProRegistrationOrder)},
		{"f4_cowriter_count", string(answers.CowriterCount)},
		{"f5_split_sheets_status", string(answers.SplitSheetsStatus)},
		{"f6_cowriter_registered", string(answers.CowriterRegistered)},
		{"f9_songs_by_others_count", string(answers.SongsByOthersCount)},
		{"f10_registered_on_others", string(answers.RegisteredOnOthers)},
		{"f11_previous_admin_status", string(answers.PreviousAdminStatus)},
		{"f12_relationship", answers.Relationship},
		{"f13_deceased", answers.Deceased},
		{"f14_legal_authority", answers.LegalAuthority},
		{"f16_audience_location", string(answers.AudienceLocation)},
		{"f17_pro_publishing_entity", string(answers.ProPublishingEntity)},
		{"f18_soundexchange_registration_type", string(answers.SERegistrationType)},
	}
	for _, s := range selects {
		if s.value == "" {
			continue
		}
		q, ok := FollowUpByID(s.field)
		if !ok {
			continue
		}
		allowed := optionValues(q.Question)
		if !oneOf(s.value, allowed) {
			errs = append(errs, enumError(s.field, s.value, allowed))
		}
	}

	return errs
}
