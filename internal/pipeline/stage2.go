package pipeline

// Follow-up priority assignments. Must-ask questions gate plan generation;
// everything else only sharpens the report.

var mustAskIDs = map[string]bool{
	"f1_previous_admins":                  true,
	"f2_admin_cancelled":                  true,
	"f5_split_sheets_status":              true,
	"f14_legal_authority":                 true,
	"f17_pro_publishing_entity":           true,
	"f18_soundexchange_registration_type": true,
}

var shouldAskIDs = map[string]bool{
	"f3_pro_registration_order": true,
	"f6_cowriter_registered":    true,
	"f10_registered_on_others":  true,
	"f11_previous_admin_status": true,
	"f12_relationship":          true,
	"f13_deceased":              true,
}

var questionReasons = map[string]string{
	"f1_previous_admins":                  "Need to check for potential conflicts with your current publishing setup",
	"f2_admin_cancelled":                  "Important to know if there might be overlapping registrations",
	"f3_pro_registration_order":           "Helps us check for duplicate registrations in your PRO",
	"f4_cowriter_count":                   "Helps us estimate the complexity of your catalog",
	"f5_split_sheets_status":              "Critical for avoiding frozen royalties from conflicting claims",
	"f6_cowriter_registered":              "Need to verify no conflicting registrations exist",
	"f7_previous_names":                   "So we can check all databases for your music",
	"f8_songs_per_name":                   "Helps understand your catalog distribution",
	"f9_songs_by_others_count":            "To estimate potential uncollected songwriter royalties",
	"f10_registered_on_others":            "Important for ensuring you're collecting what you're owed",
	"f11_previous_admin_status":           "Need to know if your previous admin might still have active registrations",
	"f12_relationship":                    "Required for estate/inherited catalog situations",
	"f13_deceased":                        "Affects the legal requirements for managing the catalog",
	"f14_legal_authority":                 "Critical for determining if registrations can proceed",
	"f15_dispute_description":             "Helps us understand if DIY is appropriate",
	"f16_audience_location":               "Helps us advise on international royalty collection",
	"f17_pro_publishing_entity":           "You might be missing 50% of your performance royalties",
	"f18_soundexchange_registration_type": "You might be missing half of your SoundExchange royalties",
}

func questionPriority(id string) QuestionPriority {
	if mustAskIDs[id] {
		return PriorityMustAsk
	}
	if shouldAskIDs[id] {
		return PriorityShouldAsk
	}
	return PriorityNiceToHave
}

// GenerateFollowUps selects the triggered-but-unanswered follow-ups,
// partitioned by priority. The combined list is capped at 8 questions to
// keep the form short; the per-priority lists are not.
func GenerateFollowUps(stage1 Stage1Output) Stage2Output {
	var mustAsk, shouldAsk, niceToHave []FormattedQuestion

	for _, q := range stage1.FollowUpsNeeded {
		if stage1.FollowUps.Answered(q.ID) {
			continue
		}
		reason, ok := questionReasons[q.ID]
		if !ok {
			reason = "Additional context for your report"
		}
		fq := FormattedQuestion{
			ID:          q.ID,
			Question:    q.Question.Question,
			Type:        q.Type,
			Options:     q.Options,
			Required:    q.Required,
			HelpText:    q.HelpText,
			Placeholder: q.Placeholder,
			Priority:    questionPriority(q.ID),
			Reason:      reason,
		}
		switch fq.Priority {
		case PriorityMustAsk:
			mustAsk = append(mustAsk, fq)
		case PriorityShouldAsk:
			shouldAsk = append(shouldAsk, fq)
		default:
			niceToHave = append(niceToHave, fq)
		}
	}

	var all []FormattedQuestion
	all = append(all, mustAsk...)
	all = append(all, shouldAsk...)
	all = append(all, niceToHave...)
	if len(all) > 8 {
		all = all[:8]
	}

	return Stage2Output{
		Questions:      all,
		MustAsk:        mustAsk,
		ShouldAsk:      shouldAsk,
		NiceToHave:     niceToHave,
		TotalQuestions: len(all),
		AllAnswered:    len(all) == 0,
	}
}

// CanGeneratePlan reports whether the action plan can be produced without
// caveats that would make it unsafe: every triggered must-ask question has
// an answer.
func CanGeneratePlan(stage1 Stage1Output) bool {
	return len(GenerateFollowUps(stage1).MustAsk) == 0
}

// MissingInfoWarning returns user-facing text when the report is being
// generated with incomplete follow-up answers, or "" when nothing is
// outstanding.
func MissingInfoWarning(stage1 Stage1Output) string {
	stage2 := GenerateFollowUps(stage1)
	if len(stage2.MustAsk) > 0 {
		return "We're missing important information that could significantly affect your report. Please answer the follow-up questions to get accurate recommendations."
	}
	if len(stage2.ShouldAsk) > 0 {
		return "Some additional information would help us give you more accurate recommendations. Your report will include caveats where information is incomplete."
	}
	return ""
}
