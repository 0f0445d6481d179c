package intake

// QuestionOption is one selectable answer for a select-type question.
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

type QuestionType string

const (
	QuestionText         QuestionType = "text"
	QuestionSingleSelect QuestionType = "single-select"
	QuestionMultiSelect  QuestionType = "multi-select"
	QuestionFile         QuestionType = "file"
)

// Question is one entry in the static intake catalog.
type Question struct {
	ID          string           `json:"id"`
	Question    string           `json:"question"`
	Type        QuestionType     `json:"type"`
	Options     []QuestionOption `json:"options,omitempty"`
	Required    bool             `json:"required"`
	Placeholder string           `json:"placeholder,omitempty"`
	HelpText    string           `json:"helpText,omitempty"`
}

// QuestionPage groups intake questions the way the form presents them.
type QuestionPage struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// IntakePages is the hand-authored four-page intake questionnaire (Q1-Q17).
var IntakePages = []QuestionPage{
	{
		Title:       "Basic Info",
		Description: "Let's start with some basic information about you and your music.",
		Questions: []Question{
			{
				ID:          "q1_artist_name",
				Question:    "What is your artist/stage name?",
				Type:        QuestionText,
				Required:    true,
				Placeholder: "e.g., DJ Shadow, The Weeknd, Taylor Swift",
			},
			{
				ID:          "q2_legal_name",
				Question:    "What is your legal name?",
				Type:        QuestionText,
				Required:    true,
				Placeholder: "e.g., John Smith",
				HelpText:    "This is needed for royalty registrations and will be kept confidential.",
			},
			{
				ID:       "q3_time_releasing",
				Question: "How long have you been releasing music?",
				Type:     QuestionSingleSelect,
				Required: true,
				Options: []QuestionOption{
					{Value: "less_than_6_months", Label: "Less than 6 months"},
					{Value: "6_months_to_2_years", Label: "6 months to 2 years"},
					{Value: "2_to_5_years", Label: "2-5 years"},
					{Value: "5_to_10_years", Label: "5-10 years"},
					{Value: "10_plus_years", Label: "10+ years"},
				},
			},
			{
				ID:       "q4_catalog_size",
				Question: "Approximately how many songs have you released?",
				Type:     QuestionSingleSelect,
				Required: true,
				Options: []QuestionOption{
					{Value: "1_to_10", Label: "1-10"},
					{Value: "11_to_25", Label: "11-25"},
					{Value: "26_to_50", Label: "26-50"},
					{Value: "51_to_100", Label: "51-100"},
					{Value: "100_plus", Label: "100+"},
				},
			},
			{
				ID:       "q5_distributor",
				Question: "What is your primary music distributor?",
				Type:     QuestionSingleSelect,
				Required: true,
				Options: []QuestionOption{
					{Value: "distrokid", Label: "DistroKid"},
					{Value: "tunecore", Label: "TuneCore"},
					{Value: "cd_baby", Label: "CD Baby"},
					{Value: "awal", Label: "AWAL"},
					{Value: "ditto", Label: "Ditto"},
					{Value: "unitedmasters", Label: "UnitedMasters"},
					{Value: "other", Label: "Other"},
					{Value: "none", Label: "I don't have a distributor"},
				},
			},
			{
				ID:       "q6_monthly_income",
				Question: "What is your estimated monthly income from streaming/downloads?",
				Type:     QuestionSingleSelect,
				Required: true,
				HelpText: "This helps us estimate how much you might be missing.",
				Options: []QuestionOption{
					{Value: "0_to_100", Label: "$0-100"},
					{Value: "100_to_500", Label: "$100-500"},
					{Value: "500_to_1000", Label: "$500-1,000"},
					{Value: "1000_to_3000", Label: "$1,000-3,000"},
					{Value: "3000_to_10000", Label: "$3,000-10,000"},
					{Value: "10000_plus", Label: "$10,000+"},
				},
			},
		},
	},
	{
		Title:       "Current Registrations",
		Description: "Now let's see what royalty registrations you already have.",
		Questions: []Question{
			{
				ID:       "q7_pro",
				Question: "Are you a member of a PRO (Performing Rights Organization)?",
				Type:     QuestionSingleSelect,
				Required: true,
				HelpText: "PROs collect performance royalties when your songs are played publicly.",
				Options: []QuestionOption{
					{Value: "ascap", Label: "ASCAP"},
					{Value: "bmi", Label: "BMI"},
					{Value: "sesac", Label: "SESAC", Note: "Invite only"},
					{Value: "gmr", Label: "GMR", Note: "Invite only"},
					{Value: "none", Label: "None"},
					{Value: "not_sure", Label: "Not sure"},
				},
			},
			{
				ID:       "q8_soundexchange",
				Question: "Are you registered with SoundExchange?",
				Type:     QuestionSingleSelect,
				Required: true,
				HelpText: "SoundExchange collects royalties when your recordings are played on digital radio (Pandora, SiriusXM, etc.).",
				Options: []QuestionOption{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
					{Value: "not_sure", Label: "Not sure / What's that?"},
				},
			},
			{
				ID:       "q9_mlc",
				Question: "Are you registered with The MLC (Mechanical Licensing Collective)?",
				Type:     QuestionSingleSelect,
				Required: true,
				HelpText: "The MLC collects mechanical royalties from streaming services like Spotify and Apple Music.",
				Options: []QuestionOption{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
					{Value: "not_sure", Label: "Not sure / What's that?"},
				},
			},
			{
				ID:       "q10_publishing_admin",
				Question: "Do you currently use a publishing administrator?",
				Type:     QuestionSingleSelect,
				Required: true,
				HelpText: "Publishing admins collect royalties on your behalf and typically take 10-20% commission.",
				Options: []QuestionOption{
					{Value: "songtrust", Label: "Songtrust"},
					{Value: "cd_baby_pro", Label: "CD Baby Pro"},
					{Value: "tunecore_publishing", Label: "TuneCore Publishing"},
					{Value: "sentric", Label: "Sentric"},
					{Value: "distrokid", Label: "DistroKid", Note: "Note: DistroKid is NOT a publishing admin"},
					{Value: "other", Label: "Other"},
					{Value: "none", Label: "None"},
					{Value: "not_sure", Label: "Not sure"},
				},
			},
			{
				ID:       "q11_previous_admin",
				Question: "Have you EVER used a publishing administrator in the past?",
				Type:     QuestionSingleSelect,
				Required: true,
				HelpText: "This is important to check for potential conflicts.",
				Options: []QuestionOption{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
					{Value: "not_sure", Label: "Not sure"},
				},
			},
		},
	},
	{
		Title:       "Your Situation",
		Description: "A few more questions to understand your specific situation.",
		Questions: []Question{
			{
				ID:       "q12_has_cowriters",
				Question: "Do any of your songs have co-writers (other people who helped write them)?",
				Type:     QuestionSingleSelect,
				Required: true,
				Options: []QuestionOption{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
				},
			},
			{
				ID:       "q13_changed_names",
				Question: "Have you ever released music under a different artist name?",
				Type:     QuestionSingleSelect,
				Required: true,
				Options: []QuestionOption{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
				},
			},
			{
				ID:       "q14_songs_by_others",
				Question: "Have any of your songs been recorded/released by other artists?",
				Type:     QuestionSingleSelect,
				Required: true,
				HelpText: "This means other artists performing/recording songs you wrote.",
				Options: []QuestionOption{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
					{Value: "not_sure", Label: "Not sure"},
				},
			},
			{
				ID:       "q15_managing_for",
				Question: "Are you managing music for someone else or an inherited catalog?",
				Type:     QuestionSingleSelect,
				Required: true,
				Options: []QuestionOption{
					{Value: "own_music", Label: "No, this is my own music"},
					{Value: "managing_for_other", Label: "Yes, I'm managing for someone else"},
					{Value: "inherited_catalog", Label: "Yes, I inherited this catalog"},
				},
			},
			{
				ID:       "q16_disputes",
				Question: "Are there any legal disputes or contested ownership of your songs?",
				Type:     QuestionSingleSelect,
				Required: true,
				Options: []QuestionOption{
					{Value: "no", Label: "No"},
					{Value: "yes", Label: "Yes"},
					{Value: "possibly", Label: "Possibly / Not sure"},
				},
			},
		},
	},
	{
		Title:       "Catalog Upload (Optional)",
		Description: "If you have a catalog spreadsheet, uploading it helps us give more accurate recommendations.",
		Questions: []Question{
			{
				ID:       "q17_catalog_uploaded",
				Question: "Do you have a catalog spreadsheet or list you can upload?",
				Type:     QuestionFile,
				Required: false,
				HelpText: "Accepted formats: .csv, .xlsx, .xls. This helps us understand your catalog better.",
			},
		},
	},
}

// AllQuestions flattens IntakePages into a single ordered list.
func AllQuestions() []Question {
	var out []Question
	for _, page := range IntakePages {
		out = append(out, page.Questions...)
	}
	return out
}

// QuestionByID returns the intake question with the given id, if present.
func QuestionByID(id string) (Question, bool) {
	for _, q := range AllQuestions() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
