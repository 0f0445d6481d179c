package pipeline

import (
	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

// ScoreLabel buckets the 0-10 health score for display.
type ScoreLabel string

const (
	ScoreExcellent ScoreLabel = "Excellent"
	ScoreGood      ScoreLabel = "Good"
	ScoreFair      ScoreLabel = "Fair"
	ScorePoor      ScoreLabel = "Poor"
	ScoreCritical  ScoreLabel = "Critical"
)

// ComplexityLevel tiers the catalog cleanup effort.
type ComplexityLevel string

const (
	ComplexitySimple   ComplexityLevel = "Simple"
	ComplexityModerate ComplexityLevel = "Moderate"
	ComplexityComplex  ComplexityLevel = "Complex"
)

// Recommendation is the service tier the report steers the user toward.
type Recommendation string

const (
	RecommendDIY          Recommendation = "DIY"
	RecommendDIYOrDFY     Recommendation = "DIY or Done-For-You"
	RecommendDFY          Recommendation = "Done-For-You Recommended"
	RecommendConsultation Recommendation = "Consultation Required"
)

// Estimate is one missed-royalty category. Monthly and totals are rounded
// whole dollars; everything is zero when the category does not apply.
type Estimate struct {
	Monthly      int    `json:"monthly"`
	TotalLow     int    `json:"totalLow"`
	TotalHigh    int    `json:"totalHigh"`
	MonthsMissed int    `json:"monthsMissed"`
	Applicable   bool   `json:"applicable"`
	Note         string `json:"note,omitempty"`
}

// TotalEstimate sums the category estimates. Categories can overlap, so
// this is an upper-bound style figure, not an audit.
type TotalEstimate struct {
	MonthlyGap int `json:"monthlyGap"`
	TotalLow   int `json:"totalLow"`
	TotalHigh  int `json:"totalHigh"`
}

// AllEstimates carries the six category estimates plus their sum.
type AllEstimates struct {
	MLC                      Estimate      `json:"mlc"`
	SoundExchange            Estimate      `json:"soundexchange"`
	SoundExchangeMissingSide Estimate      `json:"soundexchangeMissingSide"`
	PRO                      Estimate      `json:"pro"`
	PROPublisherShare        Estimate      `json:"proPublisherShare"`
	SongsByOthers            Estimate      `json:"songsByOthers"`
	Total                    TotalEstimate `json:"total"`
}

// Calculations is the full numeric output of the estimation engine.
type Calculations struct {
	Estimates        AllEstimates    `json:"estimates"`
	Score            int             `json:"score"`
	ScoreLabel       ScoreLabel      `json:"scoreLabel"`
	Complexity       ComplexityLevel `json:"complexity"`
	ComplexityPoints int             `json:"complexityPoints"`
	Recommendation   Recommendation  `json:"recommendation"`
	DIYTimeHoursLow  int             `json:"diyTimeHoursLow"`
	DIYTimeHoursHigh int             `json:"diyTimeHoursHigh"`
	BlockDIY         bool            `json:"blockDiy"`
}

// Registrations is the stage 1 snapshot of what the user already has.
// Pointer fields are nil when the underlying question did not apply.
type Registrations struct {
	HasDistributor bool   `json:"hasDistributor"`
	Distributor    string `json:"distributor,omitempty"`

	HasPRO  bool   `json:"hasPro"`
	PROName string `json:"proName,omitempty"`

	HasMLC            bool `json:"hasMlc"`
	MLCCoveredByAdmin bool `json:"mlcCoveredByAdmin"`

	HasSoundExchange          bool   `json:"hasSoundexchange"`
	SoundExchangeBothSides    *bool  `json:"soundexchangeBothSides"`
	SoundExchangeOneSide      *bool  `json:"soundexchangeOneSide"`
	SoundExchangeRegisteredAs string `json:"soundexchangeRegisteredAs,omitempty"`

	HasPublishingAdmin bool   `json:"hasPublishingAdmin"`
	PublishingAdmin    string `json:"publishingAdmin,omitempty"`

	HasPreviousAdmin       bool  `json:"hasPreviousAdmin"`
	PreviousAdminCancelled *bool `json:"previousAdminCancelled"`

	HasPROPublishingEntity *bool `json:"hasProPublishingEntity"`
}

// ComplexityFactors is the stage 1 snapshot of what makes the cleanup hard.
type ComplexityFactors struct {
	HasCowriters       bool   `json:"hasCowriters"`
	CowriterCount      string `json:"cowriterCount,omitempty"`
	SplitSheetsStatus  string `json:"splitSheetsStatus,omitempty"`
	NameChanges        bool   `json:"nameChanges"`
	PreviousNames      string `json:"previousNames,omitempty"`
	SongsByOthers      bool   `json:"songsByOthers"`
	ManagingForOther   bool   `json:"managingForOther"`
	InheritedCatalog   bool   `json:"inheritedCatalog"`
	Disputes           bool   `json:"disputes"`
	DisputeDescription string `json:"disputeDescription,omitempty"`
}

// Stage1Output is the processed submission every later stage works from.
type Stage1Output struct {
	Intake    intake.IntakeForm      `json:"intake"`
	FollowUps intake.FollowUpAnswers `json:"followUps"`

	Registrations     Registrations     `json:"registrations"`
	ComplexityFactors ComplexityFactors `json:"complexityFactors"`

	GotchasDetected   []TriggeredGotcha `json:"gotchasDetected"`
	HasCriticalGotcha bool              `json:"hasCriticalGotcha"`

	FollowUpsNeeded   []intake.FollowUpQuestion `json:"followUpsNeeded"`
	FollowUpsAnswered bool                      `json:"followUpsAnswered"`

	Calculations Calculations `json:"calculations"`
}

// QuestionPriority ranks how badly a follow-up answer is needed.
type QuestionPriority string

const (
	PriorityMustAsk    QuestionPriority = "must_ask"
	PriorityShouldAsk  QuestionPriority = "should_ask"
	PriorityNiceToHave QuestionPriority = "nice_to_have"
)

// FormattedQuestion is a follow-up prepared for UI display, with its
// priority and the reason it is being asked.
type FormattedQuestion struct {
	ID          string                  `json:"id"`
	Question    string                  `json:"question"`
	Type        intake.QuestionType     `json:"type"`
	Options     []intake.QuestionOption `json:"options,omitempty"`
	Required    bool                    `json:"required"`
	HelpText    string                  `json:"helpText,omitempty"`
	Placeholder string                  `json:"placeholder,omitempty"`
	Priority    QuestionPriority        `json:"priority"`
	Reason      string                  `json:"reason"`
}

// Stage2Output lists the follow-ups still worth asking.
type Stage2Output struct {
	Questions      []FormattedQuestion `json:"questions"`
	MustAsk        []FormattedQuestion `json:"mustAsk"`
	ShouldAsk      []FormattedQuestion `json:"shouldAsk"`
	NiceToHave     []FormattedQuestion `json:"niceToHave"`
	TotalQuestions int                 `json:"totalQuestions"`
	AllAnswered    bool                `json:"allAnswered"`
}

// RegistrationItem is a registration the user already has, for display.
type RegistrationItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MissingRegistration is a registration the user lacks, for display.
type MissingRegistration struct {
	Name           string `json:"name"`
	WhatItCollects string `json:"whatItCollects"`
}

// Warning is a report-facing rendering of a triggered gotcha.
type Warning struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Consequence string `json:"consequence"`
	Action      string `json:"action"`
}

// ActionItem is one numbered step in the action plan.
type ActionItem struct {
	Number       int      `json:"number"`
	Title        string   `json:"title"`
	Why          string   `json:"why"`
	Instructions string   `json:"instructions"`
	LinkText     string   `json:"linkText,omitempty"`
	LinkURL      string   `json:"linkUrl,omitempty"`
	TimeEstimate string   `json:"timeEstimate"`
	Requirements []string `json:"requirements,omitempty"`
}

// DIYTimeEstimate is one row in the time-budget table.
type DIYTimeEstimate struct {
	Task string `json:"task"`
	Time string `json:"time"`
}

// MissingEstimateLine is one row in the missing-royalties table, already
// formatted for display.
type MissingEstimateLine struct {
	Name    string `json:"name"`
	Monthly string `json:"monthly"`
	Total   string `json:"total"`
}

// ReportData is everything the Markdown renderer needs, fully formatted.
type ReportData struct {
	ArtistName    string `json:"artistName"`
	LegalName     string `json:"legalName"`
	CurrentDate   string `json:"currentDate"`
	Distributor   string `json:"distributor"`
	MonthlyIncome string `json:"monthlyIncome"`
	CatalogSize   string `json:"catalogSize"`
	TimeReleasing string `json:"timeReleasing"`

	Score          int             `json:"score"`
	ScoreLabel     ScoreLabel      `json:"scoreLabel"`
	EstimateLow    string          `json:"estimateLow"`
	EstimateHigh   string          `json:"estimateHigh"`
	MonthlyGap     string          `json:"monthlyGap"`
	Complexity     ComplexityLevel `json:"complexity"`
	Recommendation Recommendation  `json:"recommendation"`

	RegistrationsHave    []RegistrationItem    `json:"registrationsHave"`
	RegistrationsMissing []MissingRegistration `json:"registrationsMissing"`

	HasDistributor            bool   `json:"hasDistributor"`
	HasPRO                    bool   `json:"hasPro"`
	PROName                   string `json:"proName,omitempty"`
	HasPROPublishingEntity    *bool  `json:"hasProPublishingEntity"`
	HasMLC                    bool   `json:"hasMlc"`
	HasPublishingAdmin        bool   `json:"hasPublishingAdmin"`
	PublishingAdmin           string `json:"publishingAdmin,omitempty"`
	HasSoundExchange          bool   `json:"hasSoundexchange"`
	SoundExchangeBothSides    *bool  `json:"soundexchangeBothSides"`
	SoundExchangeOneSide      *bool  `json:"soundexchangeOneSide"`
	SoundExchangeRegisteredAs string `json:"soundexchangeRegisteredAs,omitempty"`

	MissingEstimates      []MissingEstimateLine `json:"missingEstimates"`
	TotalMonthlyLoss      string                `json:"totalMonthlyLoss"`
	TotalLossEstimate     string                `json:"totalLossEstimate"`
	EstimationExplanation string                `json:"estimationExplanation"`

	HasWarnings     bool      `json:"hasWarnings"`
	Warnings        []Warning `json:"warnings"`
	IsCritical      bool      `json:"isCritical"`
	CriticalMessage string    `json:"criticalMessage,omitempty"`

	ActionsPriority1 []ActionItem `json:"actionsPriority1"`
	ActionsPriority2 []ActionItem `json:"actionsPriority2"`
	ActionsPriority3 []ActionItem `json:"actionsPriority3"`

	DIYTimeEstimates []DIYTimeEstimate `json:"diyTimeEstimates"`
	TotalDIYTime     string            `json:"totalDiyTime"`

	DFYPrice     string `json:"dfyPrice"`
	OngoingPrice string `json:"ongoingPrice"`
	DFYBestFor   string `json:"dfyBestFor"`

	ConsultationLink string `json:"consultationLink"`
	DFYLink          string `json:"dfyLink"`
	FullServiceLink  string `json:"fullServiceLink"`
	CallLink         string `json:"callLink"`
	SplitSheetLink   string `json:"splitSheetLink"`
}

// Result is the complete pipeline output for one submission.
type Result struct {
	Stage1 Stage1Output `json:"stage1"`
	Stage2 Stage2Output `json:"stage2"`

	ReportData     ReportData `json:"reportData"`
	ReportMarkdown string     `json:"reportMarkdown"`

	CanGeneratePlan    bool   `json:"canGeneratePlan"`
	MissingInfoWarning string `json:"missingInfoWarning,omitempty"`
	Timestamp          string `json:"timestamp"`
}
