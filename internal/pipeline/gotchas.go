package pipeline

import (
	"fmt"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

// Severity classifies how badly a detected problem affects the user.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Gotcha is a known royalty-collection problem pattern.
type Gotcha struct {
	ID          string   `json:"id"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Consequence string   `json:"consequence"`
	Action      string   `json:"action"`
	BlocksDIY   bool     `json:"blocksDiy"`
}

// TriggeredGotcha is a Gotcha that matched a submission, annotated with
// what tripped it.
type TriggeredGotcha struct {
	Gotcha
	TriggeredBy string `json:"triggeredBy"`
}

// GotchaDefinitions is the full problem catalog. Not every entry has a
// detection rule yet; some (content ID, cover licensing, producer points)
// only surface through consultations.
var GotchaDefinitions = map[string]Gotcha{
	"double_publishing_admin": {
		ID:          "double_publishing_admin",
		Severity:    SeverityCritical,
		Title:       "Multiple Publishing Administrators Detected",
		Description: "You have both a current publishing administrator and a previous one that may still be active.",
		Consequence: "Both admins may be registering your songs with PROs, creating conflicting ownership claims. This can freeze your royalties until resolved.",
		Action:      "Do NOT register any new songs until this is resolved. Confirm whether your previous admin account is active, and if so, formally close it before proceeding.",
		BlocksDIY:   true,
	},
	"pro_admin_overlap": {
		ID:          "pro_admin_overlap",
		Severity:    SeverityWarning,
		Title:       "PRO + Publishing Admin Registration Overlap",
		Description: "You registered songs with your PRO yourself, and also have a publishing administrator.",
		Consequence: "Your admin may have re-registered the same works, creating duplicate registrations in the PRO database.",
		Action:      "Check your PRO portal for duplicate registrations. If found, work with your admin to consolidate.",
	},
	"unconfirmed_splits": {
		ID:          "unconfirmed_splits",
		Severity:    SeverityWarning,
		Title:       "Co-Writer Splits Not Fully Documented",
		Description: "Some or all of your co-written songs don't have signed split sheets.",
		Consequence: "If you and your co-writers register different split percentages, total ownership could exceed 100%, which freezes royalty payments.",
		Action:      "Before registering any co-written songs, get signed split sheets from all co-writers. This should be Priority 1.",
	},
	"cowriter_already_registered": {
		ID:          "cowriter_already_registered",
		Severity:    SeverityWarning,
		Title:       "Co-Writers May Have Already Registered",
		Description: "Your co-writers may have already registered these songs with their PRO.",
		Consequence: "If their registered splits don't match yours, you'll create a conflict that freezes payments.",
		Action:      "Before registering, search Songview (songview.com) for your songs and contact co-writers to verify what splits they registered.",
	},
	"distrokid_confusion": {
		ID:          "distrokid_confusion",
		Severity:    SeverityInfo,
		Title:       "DistroKid Publishing Clarification Needed",
		Description: "You use DistroKid and may be unclear about what publishing services they provide.",
		Consequence: "DistroKid does NOT provide publishing administration. Many artists think they're covered when they're not.",
		Action:      "Understand that DistroKid only handles distribution and YouTube monetization. You still need separate registrations with PRO, MLC, and SoundExchange.",
	},
	"no_mlc": {
		ID:          "no_mlc",
		Severity:    SeverityCritical,
		Title:       "Missing MLC Registration",
		Description: "You're not registered with The MLC and don't have a publishing administrator to collect mechanical royalties.",
		Consequence: "You're missing ~12-15% of your streaming income. These royalties are accumulating in the MLC's unmatched pool and may be redistributed to others after 3 years.",
		Action:      "Register with The MLC immediately. This is free and should be done this week.",
	},
	"no_soundexchange": {
		ID:          "no_soundexchange",
		Severity:    SeverityWarning,
		Title:       "Missing SoundExchange Registration",
		Description: "You're not registered with SoundExchange to collect digital radio royalties.",
		Consequence: "You're missing royalties from Pandora, SiriusXM, and internet radio. SiriusXM spins are especially valuable (~$35/spin total at 100% ownership).",
		Action:      "Register with SoundExchange as BOTH Rights Owner AND Featured Artist to collect your full share.",
	},
	"soundexchange_one_side": {
		ID:          "soundexchange_one_side",
		Severity:    SeverityWarning,
		Title:       "SoundExchange - Only Registered One Side",
		Description: "You're registered with SoundExchange, but only as Rights Owner OR Featured Artist, not both.",
		Consequence: "You're only collecting about half of what you're owed. The Rights Owner gets 50% and Featured Artist gets 45%.",
		Action:      "Log into SoundExchange and register as the other side to collect your full 95% (the remaining 5% goes to session musician fund).",
	},
	"multiple_artist_names": {
		ID:          "multiple_artist_names",
		Severity:    SeverityWarning,
		Title:       "Multiple Artist Names May Have Fragmented Registrations",
		Description: "You've released music under multiple artist names.",
		Consequence: "Your registrations may be fragmented across different names, and searches may miss parts of your catalog.",
		Action:      "Search all royalty databases under each name variation and verify registrations exist for songs under each name.",
	},
	"dissolved_publishing_entity": {
		ID:          "dissolved_publishing_entity",
		Severity:    SeverityWarning,
		Title:       "Previous Publishing Administrator May Be Defunct",
		Description: "Your previous publishing administrator may no longer be in business or has an unclear status.",
		Consequence: "Your songs may still be registered under a defunct entity, and royalties could be going to an inactive account.",
		Action:      "Check your PRO account to see who is listed as publisher. If it's the old entity, you may need to file for rights reversion.",
	},
	"songs_by_others_unregistered": {
		ID:          "songs_by_others_unregistered",
		Severity:    SeverityWarning,
		Title:       "Songs Recorded by Other Artists May Not Credit You",
		Description: "Other artists have recorded your songs, but you may not be registered as the songwriter on those releases.",
		Consequence: "You're not collecting songwriter royalties on those recordings, which could be significant if those artists have success.",
		Action:      "Identify all songs recorded by other artists and verify you're registered as songwriter on each. Contact those artists' teams to confirm.",
	},
	"estate_inherited": {
		ID:          "estate_inherited",
		Severity:    SeverityCritical,
		Title:       "Estate/Inherited Catalog Requires Special Handling",
		Description: "You're managing music for someone else or an inherited catalog.",
		Consequence: "Estate situations require legal authority (estate documents, power of attorney) before any changes can be made. Making registrations without proper authority could create legal problems.",
		Action:      "Do not proceed with any registrations until legal authority is established. This requires professional consultation.",
		BlocksDIY:   true,
	},
	"legal_disputes": {
		ID:          "legal_disputes",
		Severity:    SeverityCritical,
		Title:       "Legal Disputes or Contested Ownership",
		Description: "There are legal disputes or contested ownership issues with your songs.",
		Consequence: "Registering songs during a dispute could complicate legal proceedings and potentially harm your case.",
		Action:      "Do not make any registrations until the dispute is resolved. Consult with an entertainment attorney.",
		BlocksDIY:   true,
	},
	"high_income_no_setup": {
		ID:          "high_income_no_setup",
		Severity:    SeverityWarning,
		Title:       "High Income Without Complete Registration Setup",
		Description: "You're earning $3,000+/month but missing multiple royalty registrations.",
		Consequence: "At your income level, missing registrations could mean thousands of dollars lost annually.",
		Action:      "Given the amounts at stake, we strongly recommend completing all registrations immediately or using our Done-For-You service to ensure nothing is missed.",
	},
	"new_artist": {
		ID:          "new_artist",
		Severity:    SeverityInfo,
		Title:       "New Artist - Get Set Up Right From the Start",
		Description: "You're relatively new to releasing music with a small catalog and modest income.",
		Consequence: "This is actually good news - you can get everything set up correctly from the beginning rather than fixing problems later.",
		Action:      "Follow the basic setup checklist to ensure you're collecting from all royalty streams as you grow.",
	},
	"international_no_admin": {
		ID:          "international_no_admin",
		Severity:    SeverityWarning,
		Title:       "Significant International Audience Without Publishing Admin",
		Description: "You have significant audience outside the US but no publishing administrator for international collection.",
		Consequence: "The MLC only collects US mechanical royalties. Your international streaming royalties may be going uncollected.",
		Action:      "Consider a publishing administrator (Songtrust, Sentric, TuneCore Publishing) to collect international royalties, or register directly with foreign collection societies.",
	},
	"missing_pro_publisher_share": {
		ID:          "missing_pro_publisher_share",
		Severity:    SeverityCritical,
		Title:       "Missing 50% of PRO Income - No Publishing Entity",
		Description: "You're registered with a PRO but haven't created a publishing entity to collect the publisher share of your performance royalties.",
		Consequence: "Performance royalties are split 50/50 between Writer and Publisher. Without a publishing entity, you're only collecting the Writer half - missing 50% of your PRO income!",
		Action:      "Create a publishing entity with your PRO immediately. This is FREE and takes about 15 minutes. At ASCAP: Go to Member Access, then Create a Publisher. At BMI: Apply for publisher affiliation.",
	},
	"missing_youtube_content_id": {
		ID:          "missing_youtube_content_id",
		Severity:    SeverityWarning,
		Title:       "Potentially Missing YouTube Content ID Revenue",
		Description: "Your distributor may not include YouTube Content ID, meaning you're not collecting revenue from others using your music in their videos.",
		Consequence: "User-generated content using your music generates ad revenue you could be collecting.",
		Action:      "Verify your distributor includes YouTube Content ID. If not, upgrade to a tier that includes it or use a separate Content ID administrator.",
	},
	"cover_song_download_licensing": {
		ID:          "cover_song_download_licensing",
		Severity:    SeverityInfo,
		Title:       "Cover Song Download Licensing Reminder",
		Description: "You've released cover songs that are available for download.",
		Consequence: "While streaming is covered by the MLC blanket license, paid downloads still require mechanical licenses.",
		Action:      "Verify mechanical licenses were obtained for cover songs on download platforms. Most distributors handle this for a fee - check that it was included.",
	},
	"producer_points_undocumented": {
		ID:          "producer_points_undocumented",
		Severity:    SeverityWarning,
		Title:       "Producer Agreements May Need Documentation",
		Description: "You've worked with outside producers without clear written agreements on royalty splits.",
		Consequence: "Unclear producer agreements can lead to disputes later about what percentage they're owed.",
		Action:      "Document producer agreements in writing. If producer has royalty points, file a Letter of Direction with SoundExchange.",
	},
	"cd_baby_pro_migration_gap": {
		ID:          "cd_baby_pro_migration_gap",
		Severity:    SeverityWarning,
		Title:       "CD Baby Pro Publishing Discontinuation",
		Description: "You previously used CD Baby Pro Publishing, which was discontinued in 2023.",
		Consequence: "If you weren't properly migrated or didn't set up an alternative, you may have a gap in royalty collection.",
		Action:      "Verify your songs are still registered somewhere for publishing collection. You may need to register with The MLC directly and/or get a new publishing admin.",
	},
	"international_audience_no_admin": {
		ID:          "international_audience_no_admin",
		Severity:    SeverityWarning,
		Title:       "International Audience Without Publishing Admin",
		Description: "You report 30%+ of your audience is outside the US but have no publishing administrator.",
		Consequence: "The MLC only collects US mechanical royalties. International mechanical royalties are going uncollected.",
		Action:      "Consider a publishing administrator for international collection, or register directly with foreign societies.",
	},
}

// DetectGotchas runs every detection rule against the submission and
// returns the matches in fixed rule order: criticals, then warnings,
// then info.
func DetectGotchas(form intake.IntakeForm, followUps intake.FollowUpAnswers) []TriggeredGotcha {
	var triggered []TriggeredGotcha
	add := func(id, triggeredBy string) {
		triggered = append(triggered, TriggeredGotcha{
			Gotcha:      GotchaDefinitions[id],
			TriggeredBy: triggeredBy,
		})
	}

	// Criticals.

	if form.HasRealPublishingAdmin() &&
		form.PreviousAdmin == "yes" &&
		followUps.AdminCancelled != intake.CancelledYes {
		add("double_publishing_admin",
			fmt.Sprintf("Current admin (%s) and previous admin may both be active", form.PublishingAdmin))
	}

	if form.MLC != "yes" &&
		!form.HasRealPublishingAdmin() &&
		form.TimeReleasing != intake.TimeLessThan6Months {
		add("no_mlc", "No MLC registration and no publishing admin to collect mechanicals")
	}

	if form.ManagingFor == intake.ManagingForOther || form.ManagingFor == intake.InheritedCatalog {
		target := "someone else"
		if form.ManagingFor == intake.InheritedCatalog {
			target = "inherited catalog"
		}
		add("estate_inherited", "Managing for "+target)
	}

	if form.Disputes == "yes" || form.Disputes == "possibly" {
		add("legal_disputes", fmt.Sprintf("Disputes status: %s", form.Disputes))
	}

	if form.HasRealPRO() &&
		!form.HasRealPublishingAdmin() &&
		followUps.ProPublishingEntity != intake.EntityHave {
		add("missing_pro_publisher_share",
			"Has PRO but no publishing entity - missing 50% of performance royalties")
	}

	// Warnings.

	if form.HasRealPRO() && form.HasRealPublishingAdmin() &&
		(followUps.ProRegistrationOrder == intake.RegisteredMyselfFirst ||
			followUps.ProRegistrationOrder == intake.RegisteredBothUnsure) {
		add("pro_admin_overlap",
			"Registered with PRO before/alongside publishing admin - possible duplicates")
	}

	if form.HasCowriters == "yes" &&
		(followUps.SplitSheetsStatus == intake.SplitsNone ||
			followUps.SplitSheetsStatus == intake.SplitsSome ||
			followUps.SplitSheetsStatus == intake.SplitsWhatIs) {
		status := string(followUps.SplitSheetsStatus)
		if status == "" {
			status = "not documented"
		}
		add("unconfirmed_splits", fmt.Sprintf("Split sheets status: %s", status))
	}

	if form.HasCowriters == "yes" &&
		(followUps.CowriterRegistered == intake.CowritersRegistered ||
			followUps.CowriterRegistered == intake.CowritersUnknown ||
			followUps.CowriterRegistered == intake.CowritersPartial) {
		add("cowriter_already_registered",
			"Co-writers may have already registered - need to verify splits match")
	}

	if form.SoundExchange != "yes" {
		add("no_soundexchange", "Not registered with SoundExchange for digital radio royalties")
	}

	if form.SoundExchange == "yes" &&
		(followUps.SERegistrationType == intake.SERightsOwnerOnly ||
			followUps.SERegistrationType == intake.SEFeaturedArtistOnly ||
			followUps.SERegistrationType == intake.SENotSure) {
		add("soundexchange_one_side",
			fmt.Sprintf("Only registered as %s - missing ~half of SE royalties", followUps.SERegistrationType))
	}

	if form.ChangedNames == "yes" {
		names := previousNameCount(followUps.PreviousNames)
		if names >= 2 {
			add("multiple_artist_names",
				fmt.Sprintf("%d total artist names - registrations may be fragmented", names+1))
		}
	}

	if form.PreviousAdmin == "yes" &&
		(followUps.PreviousAdminStatus == intake.PrevAdminClosed ||
			followUps.PreviousAdminStatus == intake.PrevAdminNotSure ||
			followUps.PreviousAdminStatus == intake.PrevAdminAcquired) {
		add("dissolved_publishing_entity",
			fmt.Sprintf("Previous admin status: %s", followUps.PreviousAdminStatus))
	}

	if form.SongsByOthers == "yes" &&
		(followUps.RegisteredOnOthers == intake.OnOthersNone ||
			followUps.RegisteredOnOthers == intake.OnOthersNotSure ||
			followUps.RegisteredOnOthers == intake.OnOthersSome) {
		add("songs_by_others_unregistered",
			"Songs recorded by other artists may not credit you as songwriter")
	}

	if (form.MonthlyIncome == intake.Income3000To10000 || form.MonthlyIncome == intake.Income10000Plus) &&
		(form.PRO == intake.PRONone || form.MLC != "yes" || form.SoundExchange != "yes") {
		add("high_income_no_setup", "High income ($3k+/month) with missing registrations")
	}

	if (followUps.AudienceLocation == intake.AudienceMostlyOutside ||
		followUps.AudienceLocation == intake.AudienceMix) &&
		!form.HasRealPublishingAdmin() {
		add("international_no_admin",
			"Significant international audience but no publishing admin for global collection")
	}

	if followUps.UsedPreviousAdmin("cd_baby_pro") &&
		followUps.PreviousAdminStatus != intake.PrevAdminActive {
		add("cd_baby_pro_migration_gap",
			"Previously used CD Baby Pro Publishing (discontinued 2023) - may have collection gap")
	}

	// Info.

	if form.Distributor == intake.DistributorDistroKid &&
		(form.PublishingAdmin == intake.AdminNone || form.PublishingAdmin == intake.AdminDistroKid) {
		add("distrokid_confusion", "Uses DistroKid and may think it covers publishing admin")
	}

	if form.TimeReleasing == intake.TimeLessThan6Months &&
		form.CatalogSize == intake.Catalog1To10 &&
		form.MonthlyIncome == intake.Income0To100 {
		add("new_artist", "New artist with small catalog - can set up correctly from the start")
	}

	return triggered
}

// previousNameCount mirrors the frontend's comma-split count: an empty
// answer still counts as one prior name, because the trigger question was
// answered yes.
func previousNameCount(names string) int {
	if names == "" {
		return 1
	}
	count := 1
	for _, r := range names {
		if r == ',' {
			count++
		}
	}
	return count
}

// HasCriticalGotcha reports whether any detected gotcha blocks a DIY plan.
func HasCriticalGotcha(gotchas []TriggeredGotcha) bool {
	for _, g := range gotchas {
		if g.Severity == SeverityCritical && g.BlocksDIY {
			return true
		}
	}
	return false
}

// GotchasBySeverity filters the detected list to one severity.
func GotchasBySeverity(gotchas []TriggeredGotcha, severity Severity) []TriggeredGotcha {
	var out []TriggeredGotcha
	for _, g := range gotchas {
		if g.Severity == severity {
			out = append(out, g)
		}
	}
	return out
}
