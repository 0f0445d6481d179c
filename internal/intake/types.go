package intake

// Enumerated answer values for the intake form (Q1-Q17). Field names and
// values are the wire contract with the form frontend and must stay stable.

type TimeReleasing string

const (
	TimeLessThan6Months TimeReleasing = "less_than_6_months"
	Time6MonthsTo2Years TimeReleasing = "6_months_to_2_years"
	Time2To5Years       TimeReleasing = "2_to_5_years"
	Time5To10Years      TimeReleasing = "5_to_10_years"
	Time10PlusYears     TimeReleasing = "10_plus_years"
)

type CatalogSize string

const (
	Catalog1To10   CatalogSize = "1_to_10"
	Catalog11To25  CatalogSize = "11_to_25"
	Catalog26To50  CatalogSize = "26_to_50"
	Catalog51To100 CatalogSize = "51_to_100"
	Catalog100Plus CatalogSize = "100_plus"
)

type Distributor string

const (
	DistributorDistroKid     Distributor = "distrokid"
	DistributorTuneCore      Distributor = "tunecore"
	DistributorCDBaby        Distributor = "cd_baby"
	DistributorAWAL          Distributor = "awal"
	DistributorDitto         Distributor = "ditto"
	DistributorUnitedMasters Distributor = "unitedmasters"
	DistributorOther         Distributor = "other"
	DistributorNone          Distributor = "none"
)

type MonthlyIncome string

const (
	Income0To100      MonthlyIncome = "0_to_100"
	Income100To500    MonthlyIncome = "100_to_500"
	Income500To1000   MonthlyIncome = "500_to_1000"
	Income1000To3000  MonthlyIncome = "1000_to_3000"
	Income3000To10000 MonthlyIncome = "3000_to_10000"
	Income10000Plus   MonthlyIncome = "10000_plus"
)

type PRO string

const (
	PROASCAP   PRO = "ascap"
	PROBMI     PRO = "bmi"
	PROSESAC   PRO = "sesac"
	PROGMR     PRO = "gmr"
	PRONone    PRO = "none"
	PRONotSure PRO = "not_sure"
)

type YesNoNotSure string

const (
	AnswerYes     YesNoNotSure = "yes"
	AnswerNo      YesNoNotSure = "no"
	AnswerNotSure YesNoNotSure = "not_sure"
)

type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

type PublishingAdmin string

const (
	AdminSongtrust          PublishingAdmin = "songtrust"
	AdminCDBabyPro          PublishingAdmin = "cd_baby_pro"
	AdminTuneCorePublishing PublishingAdmin = "tunecore_publishing"
	AdminSentric            PublishingAdmin = "sentric"
	AdminDistroKid          PublishingAdmin = "distrokid" // not actually a publishing admin
	AdminOther              PublishingAdmin = "other"
	AdminNone               PublishingAdmin = "none"
	AdminNotSure            PublishingAdmin = "not_sure"
)

type ManagingFor string

const (
	ManagingOwnMusic ManagingFor = "own_music"
	ManagingForOther ManagingFor = "managing_for_other"
	InheritedCatalog ManagingFor = "inherited_catalog"
)

type DisputeStatus string

const (
	DisputeNo       DisputeStatus = "no"
	DisputeYes      DisputeStatus = "yes"
	DisputePossibly DisputeStatus = "possibly"
)

// IntakeForm is the fixed-shape intake record (Q1-Q17). Created by the form
// frontend, immutable once submitted; every pipeline stage reads it as-is.
type IntakeForm struct {
	// Page 1: basic info
	ArtistName    string        `json:"q1_artist_name"`
	LegalName     string        `json:"q2_legal_name"`
	TimeReleasing TimeReleasing `json:"q3_time_releasing"`
	CatalogSize   CatalogSize   `json:"q4_catalog_size"`
	Distributor   Distributor   `json:"q5_distributor"`
	MonthlyIncome MonthlyIncome `json:"q6_monthly_income"`

	// Page 2: current registrations
	PRO             PRO             `json:"q7_pro"`
	SoundExchange   YesNoNotSure    `json:"q8_soundexchange"`
	MLC             YesNoNotSure    `json:"q9_mlc"`
	PublishingAdmin PublishingAdmin `json:"q10_publishing_admin"`
	PreviousAdmin   YesNoNotSure    `json:"q11_previous_admin"`

	// Page 3: complexity factors
	HasCowriters  YesNo         `json:"q12_has_cowriters"`
	ChangedNames  YesNo         `json:"q13_changed_names"`
	SongsByOthers YesNoNotSure  `json:"q14_songs_by_others"`
	ManagingFor   ManagingFor   `json:"q15_managing_for"`
	Disputes      DisputeStatus `json:"q16_disputes"`

	// Page 4: optional catalog upload
	CatalogUploaded bool `json:"q17_catalog_uploaded,omitempty"`
}

// HasRealPRO reports whether the user belongs to an actual PRO
// ("none" and "not_sure" do not count).
func (f IntakeForm) HasRealPRO() bool {
	return f.PRO != PRONone && f.PRO != PRONotSure
}

// HasRealPublishingAdmin reports whether the user has an actual publishing
// administrator. DistroKid is excluded: it distributes but does not
// administer publishing, however the user answered.
func (f IntakeForm) HasRealPublishingAdmin() bool {
	return f.PublishingAdmin != AdminNone &&
		f.PublishingAdmin != AdminNotSure &&
		f.PublishingAdmin != AdminDistroKid
}

// Follow-up enumerations (F1-F18).

type AdminCancelled string

const (
	CancelledYes         AdminCancelled = "yes_cancelled"
	CancelledMightBeLive AdminCancelled = "no_might_be_active"
	CancelledNotSure     AdminCancelled = "not_sure"
)

type ProRegistrationOrder string

const (
	RegisteredMyselfFirst ProRegistrationOrder = "i_registered_first"
	RegisteredByAdmin     ProRegistrationOrder = "admin_registered"
	RegisteredBothUnsure  ProRegistrationOrder = "both_or_not_sure"
)

type CowriterCount string

const (
	Cowriters1To5      CowriterCount = "1_to_5"
	Cowriters6To15     CowriterCount = "6_to_15"
	Cowriters16To30    CowriterCount = "16_to_30"
	CowritersMostOrAll CowriterCount = "most_or_all"
)

type SplitSheetsStatus string

const (
	SplitsAll    SplitSheetsStatus = "yes_all"
	SplitsSome   SplitSheetsStatus = "yes_some"
	SplitsNone   SplitSheetsStatus = "no"
	SplitsWhatIs SplitSheetsStatus = "whats_a_split_sheet"
)

type CowriterRegistered string

const (
	CowritersRegistered    CowriterRegistered = "yes_they_registered"
	CowritersNotRegistered CowriterRegistered = "no_they_havent"
	CowritersUnknown       CowriterRegistered = "not_sure"
	CowritersPartial       CowriterRegistered = "some_have_some_havent"
)

type SongsByOthersCount string

const (
	Others1To3   SongsByOthersCount = "1_to_3"
	Others4To10  SongsByOthersCount = "4_to_10"
	Others10Plus SongsByOthersCount = "10_plus"
)

type RegisteredOnOthers string

const (
	OnOthersAll     RegisteredOnOthers = "yes_all"
	OnOthersSome    RegisteredOnOthers = "yes_some"
	OnOthersNone    RegisteredOnOthers = "no"
	OnOthersNotSure RegisteredOnOthers = "not_sure"
)

type PreviousAdminStatus string

const (
	PrevAdminActive   PreviousAdminStatus = "still_active"
	PrevAdminClosed   PreviousAdminStatus = "closed"
	PrevAdminNotSure  PreviousAdminStatus = "not_sure"
	PrevAdminAcquired PreviousAdminStatus = "acquired"
)

type AudienceLocation string

const (
	AudienceMostlyUS      AudienceLocation = "mostly_us"
	AudienceMostlyOutside AudienceLocation = "mostly_outside_us"
	AudienceMix           AudienceLocation = "mix"
	AudienceNotSure       AudienceLocation = "not_sure"
)

type ProPublishingEntity string

const (
	EntityHave       ProPublishingEntity = "yes_have_publishing_entity"
	EntityWriterOnly ProPublishingEntity = "no_only_writer"
	EntityWhatIs     ProPublishingEntity = "whats_a_publishing_entity"
	EntityNotSure    ProPublishingEntity = "not_sure"
)

type SoundExchangeRegistrationType string

const (
	SEBothSides          SoundExchangeRegistrationType = "both_rights_owner_and_featured_artist"
	SERightsOwnerOnly    SoundExchangeRegistrationType = "rights_owner_only"
	SEFeaturedArtistOnly SoundExchangeRegistrationType = "featured_artist_only"
	SENotSure            SoundExchangeRegistrationType = "not_sure"
)

// FollowUpAnswers is the sparse follow-up record. A zero value means the
// question has not been answered yet, never "answered as empty" -- all
// enum values are non-empty strings and PreviousAdmins is nil until set.
type FollowUpAnswers struct {
	PreviousAdmins       []string                      `json:"f1_previous_admins,omitempty"`
	AdminCancelled       AdminCancelled                `json:"f2_admin_cancelled,omitempty"`
	ProRegistrationOrder ProRegistrationOrder          `json:"f3_pro_registration_order,omitempty"`
	CowriterCount        CowriterCount                 `json:"f4_cowriter_count,omitempty"`
	SplitSheetsStatus    SplitSheetsStatus             `json:"f5_split_sheets_status,omitempty"`
	CowriterRegistered   CowriterRegistered            `json:"f6_cowriter_registered,omitempty"`
	PreviousNames        string                        `json:"f7_previous_names,omitempty"`
	SongsPerName         string                        `json:"f8_songs_per_name,omitempty"`
	SongsByOthersCount   SongsByOthersCount            `json:"f9_songs_by_others_count,omitempty"`
	RegisteredOnOthers   RegisteredOnOthers            `json:"f10_registered_on_others,omitempty"`
	PreviousAdminStatus  PreviousAdminStatus           `json:"f11_previous_admin_status,omitempty"`
	Relationship         string                        `json:"f12_relationship,omitempty"`
	Deceased             string                        `json:"f13_deceased,omitempty"`
	LegalAuthority       string                        `json:"f14_legal_authority,omitempty"`
	DisputeDescription   string                        `json:"f15_dispute_description,omitempty"`
	AudienceLocation     AudienceLocation              `json:"f16_audience_location,omitempty"`
	ProPublishingEntity  ProPublishingEntity           `json:"f17_pro_publishing_entity,omitempty"`
	SERegistrationType   SoundExchangeRegistrationType `json:"f18_soundexchange_registration_type,omitempty"`
}

// Answered reports whether the follow-up with the given id carries an answer.
func (f FollowUpAnswers) Answered(id string) bool {
	switch id {
	case "f1_previous_admins":
		return len(f.PreviousAdmins) > 0
	case "f2_admin_cancelled":
		return f.AdminCancelled != ""
	case "f3_pro_registration_order":
		return f.ProRegistrationOrder != ""
	case "f4_cowriter_count":
		return f.CowriterCount != ""
	case "f5_split_sheets_status":
		return f.SplitSheetsStatus != ""
	case "f6_cowriter_registered":
		return f.CowriterRegistered != ""
	case "f7_previous_names":
		return f.PreviousNames != ""
	case "f8_songs_per_name":
		return f.SongsPerName != ""
	case "f9_songs_by_others_count":
		return f.SongsByOthersCount != ""
	case "f10_registered_on_others":
		return f.RegisteredOnOthers != ""
	case "f11_previous_admin_status":
		return f.PreviousAdminStatus != ""
	case "f12_relationship":
		return f.Relationship != ""
	case "f13_deceased":
		return f.Deceased != ""
	case "f14_legal_authority":
		return f.LegalAuthority != ""
	case "f15_dispute_description":
		return f.DisputeDescription != ""
	case "f16_audience_location":
		return f.AudienceLocation != ""
	case "f17_pro_publishing_entity":
		return f.ProPublishingEntity != ""
	case "f18_soundexchange_registration_type":
		return f.SERegistrationType != ""
	}
	return false
}

// UsedPreviousAdmin reports whether the F1 multi-select includes the given
// admin value.
func (f FollowUpAnswers) UsedPreviousAdmin(admin string) bool {
	for _, a := range f.PreviousAdmins {
		if a == admin {
			return true
		}
	}
	return false
}
