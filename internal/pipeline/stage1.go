package pipeline

import (
	"time"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

func boolPtr(b bool) *bool { return &b }

// ProcessIntake turns a validated submission into the structured facts the
// plan generator works from: registration status, complexity factors,
// detected gotchas, outstanding follow-ups, and the full calculations.
func ProcessIntake(form intake.IntakeForm, followUps intake.FollowUpAnswers, now time.Time) Stage1Output {
	hasPRO := form.HasRealPRO()
	hasAdmin := form.HasRealPublishingAdmin()

	regs := Registrations{
		HasDistributor: form.Distributor != intake.DistributorNone,

		HasPRO: hasPRO,

		HasMLC: form.MLC == "yes",
		// Most publishing admins register members with the MLC.
		MLCCoveredByAdmin: hasAdmin,

		HasSoundExchange: form.SoundExchange == "yes",

		HasPublishingAdmin: hasAdmin,

		HasPreviousAdmin: form.PreviousAdmin == "yes",
	}
	if regs.HasDistributor {
		regs.Distributor = string(form.Distributor)
	}
	if hasPRO {
		regs.PROName = string(form.PRO)
	}
	if regs.HasSoundExchange {
		regs.SoundExchangeBothSides = boolPtr(followUps.SERegistrationType == intake.SEBothSides)
		regs.SoundExchangeOneSide = boolPtr(
			followUps.SERegistrationType == intake.SERightsOwnerOnly ||
				followUps.SERegistrationType == intake.SEFeaturedArtistOnly)
		regs.SoundExchangeRegisteredAs = string(followUps.SERegistrationType)
	}
	if hasAdmin {
		regs.PublishingAdmin = string(form.PublishingAdmin)
	}
	if regs.HasPreviousAdmin {
		regs.PreviousAdminCancelled = boolPtr(followUps.AdminCancelled == intake.CancelledYes)
	}
	if hasPRO && !hasAdmin {
		regs.HasPROPublishingEntity = boolPtr(followUps.ProPublishingEntity == intake.EntityHave)
	}

	factors := ComplexityFactors{
		HasCowriters:     form.HasCowriters == "yes",
		NameChanges:      form.ChangedNames == "yes",
		SongsByOthers:    form.SongsByOthers == "yes",
		ManagingForOther: form.ManagingFor == intake.ManagingForOther,
		InheritedCatalog: form.ManagingFor == intake.InheritedCatalog,
		Disputes:         form.Disputes == "yes" || form.Disputes == "possibly",
	}
	if factors.HasCowriters {
		factors.CowriterCount = string(followUps.CowriterCount)
		factors.SplitSheetsStatus = string(followUps.SplitSheetsStatus)
	}
	if factors.NameChanges {
		factors.PreviousNames = followUps.PreviousNames
	}
	if factors.Disputes {
		factors.DisputeDescription = followUps.DisputeDescription
	}

	gotchas := DetectGotchas(form, followUps)

	needed := intake.TriggeredFollowUps(form)
	answered := true
	for _, q := range needed {
		if !followUps.Answered(q.ID) {
			answered = false
			break
		}
	}

	return Stage1Output{
		Intake:            form,
		FollowUps:         followUps,
		Registrations:     regs,
		ComplexityFactors: factors,
		GotchasDetected:   gotchas,
		HasCriticalGotcha: HasCriticalGotcha(gotchas),
		FollowUpsNeeded:   needed,
		FollowUpsAnswered: answered,
		Calculations:      CalculateEstimates(form, followUps, gotchas, now),
	}
}

// Display-name tables for raw enum values.

var distributorNames = map[string]string{
	"distrokid":     "DistroKid",
	"tunecore":      "TuneCore",
	"cd_baby":       "CD Baby",
	"awal":          "AWAL",
	"ditto":         "Ditto",
	"unitedmasters": "UnitedMasters",
	"other":         "Other",
	"none":          "None",
}

// FormatDistributorName renders a distributor enum value for display.
func FormatDistributorName(distributor string) string {
	if distributor == "" {
		return "None"
	}
	if name, ok := distributorNames[distributor]; ok {
		return name
	}
	return distributor
}

var proNames = map[string]string{
	"ascap":    "ASCAP",
	"bmi":      "BMI",
	"sesac":    "SESAC",
	"gmr":      "GMR",
	"none":     "None",
	"not_sure": "Not sure",
}

// FormatPROName renders a PRO enum value for display.
func FormatPROName(pro string) string {
	if pro == "" {
		return "None"
	}
	if name, ok := proNames[pro]; ok {
		return name
	}
	return pro
}

var adminNames = map[string]string{
	"songtrust":           "Songtrust",
	"cd_baby_pro":         "CD Baby Pro",
	"tunecore_publishing": "TuneCore Publishing",
	"sentric":             "Sentric",
	"distrokid":           "DistroKid (not actually publishing admin)",
	"other":               "Other",
	"none":                "None",
	"not_sure":            "Not sure",
}

// FormatPublishingAdminName renders a publishing-admin enum value for display.
func FormatPublishingAdminName(admin string) string {
	if admin == "" {
		return "None"
	}
	if name, ok := adminNames[admin]; ok {
		return name
	}
	return admin
}

var incomeRanges = map[intake.MonthlyIncome]string{
	intake.Income0To100:      "$0-100",
	intake.Income100To500:    "$100-500",
	intake.Income500To1000:   "$500-1,000",
	intake.Income1000To3000:  "$1,000-3,000",
	intake.Income3000To10000: "$3,000-10,000",
	intake.Income10000Plus:   "$10,000+",
}

// FormatIncomeRange renders a monthly-income enum value for display.
func FormatIncomeRange(income intake.MonthlyIncome) string {
	if r, ok := incomeRanges[income]; ok {
		return r
	}
	return string(income)
}

var timeReleasingNames = map[intake.TimeReleasing]string{
	intake.TimeLessThan6Months: "Less than 6 months",
	intake.Time6MonthsTo2Years: "6 months to 2 years",
	intake.Time2To5Years:       "2-5 years",
	intake.Time5To10Years:      "5-10 years",
	intake.Time10PlusYears:     "10+ years",
}

// FormatTimeReleasing renders a time-releasing enum value for display.
func FormatTimeReleasing(t intake.TimeReleasing) string {
	if name, ok := timeReleasingNames[t]; ok {
		return name
	}
	return string(t)
}

var catalogSizeNames = map[intake.CatalogSize]string{
	intake.Catalog1To10:   "1-10 songs",
	intake.Catalog11To25:  "11-25 songs",
	intake.Catalog26To50:  "26-50 songs",
	intake.Catalog51To100: "51-100 songs",
	intake.Catalog100Plus: "100+ songs",
}

// FormatCatalogSize renders a catalog-size enum value for display.
func FormatCatalogSize(size intake.CatalogSize) string {
	if name, ok := catalogSizeNames[size]; ok {
		return name
	}
	return string(size)
}
