package intake

// FollowUpQuestion is an intake question that only appears when its
// trigger predicate matches the submitted form.
type FollowUpQuestion struct {
	Question
	Trigger func(IntakeForm) bool `json:"-"`
}

// FollowUpQuestions is the F1-F18 catalog in presentation order.
var FollowUpQuestions = []FollowUpQuestion{
	{
		Question: Question{
			ID:       "f1_previous_admins",
			Question: "Which publishing administrator(s) did you use before?",
			Type:     QuestionMultiSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "songtrust", Label: "Songtrust"},
				{Value: "cd_baby_pro", Label: "CD Baby Pro"},
				{Value: "tunecore_publishing", Label: "TuneCore Publishing"},
				{Value: "sentric", Label: "Sentric"},
				{Value: "other", Label: "Other"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.PreviousAdmin == "yes" },
	},
	{
		Question: Question{
			ID:       "f2_admin_cancelled",
			Question: "Did you formally cancel or close that account?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "yes_cancelled", Label: "Yes, I cancelled it"},
				{Value: "no_might_be_active", Label: "No, it might still be active"},
				{Value: "not_sure", Label: "Not sure"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.PreviousAdmin == "yes" },
	},
	{
		Question: Question{
			ID:       "f3_pro_registration_order",
			Question: "Did you register your songs with your PRO yourself, or did your publishing admin do it?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "i_registered_first", Label: "I registered them myself first"},
				{Value: "admin_registered", Label: "My publishing admin registered them"},
				{Value: "both_or_not_sure", Label: "Both / Not sure"},
			},
		},
		Trigger: func(f IntakeForm) bool {
			return f.HasRealPRO() && f.HasRealPublishingAdmin()
		},
	},
	{
		Question: Question{
			ID:       "f4_cowriter_count",
			Question: "Approximately how many of your songs have co-writers?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "1_to_5", Label: "1-5 songs"},
				{Value: "6_to_15", Label: "6-15 songs"},
				{Value: "16_to_30", Label: "16-30 songs"},
				{Value: "most_or_all", Label: "Most or all of my songs"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.HasCowriters == "yes" },
	},
	{
		Question: Question{
			ID:       "f5_split_sheets_status",
			Question: "Do you have signed split sheets documenting ownership percentages for co-written songs?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "yes_all", Label: "Yes, for all of them"},
				{Value: "yes_some", Label: "Yes, for some of them"},
				{Value: "no", Label: "No"},
				{Value: "whats_a_split_sheet", Label: "What's a split sheet?"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.HasCowriters == "yes" },
	},
	{
		Question: Question{
			ID:       "f6_cowriter_registered",
			Question: "Do you know if your co-writers have registered these songs with their PRO?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "yes_they_registered", Label: "Yes, they have registered"},
				{Value: "no_they_havent", Label: "No, they haven't"},
				{Value: "not_sure", Label: "Not sure"},
				{Value: "some_have_some_havent", Label: "Some have, some haven't"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.HasCowriters == "yes" },
	},
	{
		Question: Question{
			ID:          "f7_previous_names",
			Question:    "What were your previous artist names?",
			Type:        QuestionText,
			Required:    true,
			Placeholder: "List all previous names, separated by commas",
		},
		Trigger: func(f IntakeForm) bool { return f.ChangedNames == "yes" },
	},
	{
		Question: Question{
			ID:          "f8_songs_per_name",
			Question:    "Approximately how many songs were released under each previous name?",
			Type:        QuestionText,
			Required:    false,
			Placeholder: "e.g., 'Old Name 1: 15 songs, Old Name 2: 8 songs'",
		},
		Trigger: func(f IntakeForm) bool { return f.ChangedNames == "yes" },
	},
	{
		Question: Question{
			ID:       "f9_songs_by_others_count",
			Question: "Approximately how many of your songs have been recorded by other artists?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "1_to_3", Label: "1-3 songs"},
				{Value: "4_to_10", Label: "4-10 songs"},
				{Value: "10_plus", Label: "10+ songs"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.SongsByOthers == "yes" },
	},
	{
		Question: Question{
			ID:       "f10_registered_on_others",
			Question: "Are you registered as the songwriter on those releases?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "yes_all", Label: "Yes, I'm registered on all of them"},
				{Value: "yes_some", Label: "Yes, on some of them"},
				{Value: "no", Label: "No"},
				{Value: "not_sure", Label: "Not sure"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.SongsByOthers == "yes" },
	},
	{
		Question: Question{
			ID:       "f11_previous_admin_status",
			Question: "Is the publishing company you previously used still in business?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "still_active", Label: "Yes, they're still active"},
				{Value: "closed", Label: "No, they closed/went out of business"},
				{Value: "not_sure", Label: "Not sure"},
				{Value: "acquired", Label: "They were acquired by another company"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.PreviousAdmin == "yes" },
	},
	{
		Question: Question{
			ID:       "f12_relationship",
			Question: "What is your relationship to the original artist/songwriter?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "family", Label: "Family member (child, spouse, sibling)"},
				{Value: "designated_rep", Label: "Designated representative"},
				{Value: "business_partner", Label: "Business partner"},
				{Value: "other", Label: "Other"},
			},
		},
		Trigger: func(f IntakeForm) bool {
			return f.ManagingFor == ManagingForOther || f.ManagingFor == InheritedCatalog
		},
	},
	{
		Question: Question{
			ID:       "f13_deceased",
			Question: "Is the original artist/songwriter deceased?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
				{Value: "prefer_not_to_say", Label: "Prefer not to say"},
			},
		},
		Trigger: func(f IntakeForm) bool {
			return f.ManagingFor == ManagingForOther || f.ManagingFor == InheritedCatalog
		},
	},
	{
		Question: Question{
			ID:       "f14_legal_authority",
			Question: "Do you have legal authority (estate documents, power of attorney) to manage this catalog?",
			Type:     QuestionSingleSelect,
			Required: true,
			Options: []QuestionOption{
				{Value: "yes_have_docs", Label: "Yes, I have documentation"},
				{Value: "in_progress", Label: "In progress"},
				{Value: "no", Label: "No"},
				{Value: "not_sure_whats_needed", Label: "Not sure what's needed"},
			},
		},
		Trigger: func(f IntakeForm) bool {
			return f.ManagingFor == ManagingForOther || f.ManagingFor == InheritedCatalog
		},
	},
	{
		Question: Question{
			ID:          "f15_dispute_description",
			Question:    "Can you briefly describe the dispute or ownership question?",
			Type:        QuestionText,
			Required:    false,
			Placeholder: "Brief description - this helps us understand if DIY is appropriate",
		},
		Trigger: func(f IntakeForm) bool {
			return f.Disputes == "yes" || f.Disputes == "possibly"
		},
	},
	{
		Question: Question{
			ID:       "f16_audience_location",
			Question: "Where is most of your audience located?",
			Type:     QuestionSingleSelect,
			Required: false,
			Options: []QuestionOption{
				{Value: "mostly_us", Label: "Mostly US"},
				{Value: "mostly_outside_us", Label: "Mostly outside US"},
				{Value: "mix", Label: "Mix of US and international"},
				{Value: "not_sure", Label: "Not sure"},
			},
		},
		// Always asked, for international collection guidance.
		Trigger: func(IntakeForm) bool { return true },
	},
	{
		Question: Question{
			ID:       "f17_pro_publishing_entity",
			Question: "Have you set up a publishing entity with your PRO?",
			Type:     QuestionSingleSelect,
			Required: true,
			HelpText: "This is different from being a member. A publishing entity lets you collect both the writer AND publisher share of your royalties.",
			Options: []QuestionOption{
				{Value: "yes_have_publishing_entity", Label: "Yes, I have a publishing entity"},
				{Value: "no_only_writer", Label: "No, I'm only registered as a writer"},
				{Value: "whats_a_publishing_entity", Label: "What's a publishing entity?"},
				{Value: "not_sure", Label: "Not sure"},
			},
		},
		Trigger: func(f IntakeForm) bool {
			return f.HasRealPRO() && !f.HasRealPublishingAdmin()
		},
	},
	{
		Question: Question{
			ID:       "f18_soundexchange_registration_type",
			Question: "When you registered with SoundExchange, did you register as:",
			Type:     QuestionSingleSelect,
			Required: true,
			HelpText: "SoundExchange has two sides: Rights Owner (who owns the master) and Featured Artist (who performed). Most indie artists need both.",
			Options: []QuestionOption{
				{Value: "both_rights_owner_and_featured_artist", Label: "Both Rights Owner AND Featured Artist"},
				{Value: "rights_owner_only", Label: "Rights Owner only"},
				{Value: "featured_artist_only", Label: "Featured Artist only"},
				{Value: "not_sure", Label: "Not sure"},
			},
		},
		Trigger: func(f IntakeForm) bool { return f.SoundExchange == "yes" },
	},
}

// TriggeredFollowUps returns the follow-ups whose trigger matches the
// intake, in catalog order.
func TriggeredFollowUps(form IntakeForm) []FollowUpQuestion {
	var out []FollowUpQuestion
	for _, q := range FollowUpQuestions {
		if q.Trigger(form) {
			out = append(out, q)
		}
	}
	return out
}

// FollowUpByID returns the follow-up question with the given id, if present.
func FollowUpByID(id string) (FollowUpQuestion, bool) {
	for _, q := range FollowUpQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return FollowUpQuestion{}, false
}

// FollowUpNeeded reports whether the follow-up with the given id is
// triggered by the intake.
func FollowUpNeeded(id string, form IntakeForm) bool {
	q, ok := FollowUpByID(id)
	return ok && q.Trigger(form)
}
