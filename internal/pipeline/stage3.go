package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

// GenerateActionItems builds the three priority buckets of the action plan.
// Numbering is global across buckets. A DIY-blocking situation returns
// empty buckets: the report routes to consultation instead of steps.
func GenerateActionItems(stage1 Stage1Output) (priority1, priority2, priority3 []ActionItem) {
	if stage1.Calculations.BlockDIY {
		return nil, nil, nil
	}

	regs := stage1.Registrations
	factors := stage1.ComplexityFactors
	followUps := stage1.FollowUps
	actionNumber := 1
	next := func() int {
		n := actionNumber
		actionNumber++
		return n
	}

	// Priority 1: critical actions.

	if factors.HasCowriters &&
		(followUps.SplitSheetsStatus == intake.SplitsNone ||
			followUps.SplitSheetsStatus == intake.SplitsSome ||
			followUps.SplitSheetsStatus == intake.SplitsWhatIs) {
		priority1 = append(priority1, ActionItem{
			Number: next(),
			Title:  "Document Co-Writer Splits",
			Why:    "Before registering any co-written songs, you need written agreement on who owns what percentage. Conflicting claims freeze royalty payments.",
			Instructions: `Create a simple split sheet for each co-written song that documents:
- Song title
- Each writer's name and ownership percentage
- Get each co-writer to sign

This protects everyone and ensures clean registrations.`,
			LinkText:     "Download Split Sheet Template",
			LinkURL:      "https://theroyaltyguy.com/split-sheet",
			TimeEstimate: "15 minutes per song",
			Requirements: []string{"Co-writer contact info", "Agreement on percentages"},
		})
	}

	if regs.HasPRO && !regs.HasPublishingAdmin &&
		regs.HasPROPublishingEntity != nil && !*regs.HasPROPublishingEntity {
		proName := "your PRO"
		if regs.PROName != "" {
			proName = strings.ToUpper(regs.PROName)
		}
		var instructions string
		switch proName {
		case "ASCAP":
			instructions = `1. Log into your ASCAP account
2. Go to Member Access
3. Click "Create a Publisher"
4. Choose a name for your publishing company (can be anything)
5. Complete the application
6. Once approved, register your songs under your publisher entity too

This is FREE and takes about 15 minutes.`
		case "BMI":
			instructions = `1. Log into your BMI account
2. Go to Publisher Affiliation
3. Apply for publisher affiliation
4. Choose a name for your publishing company
5. Complete the application
6. Once approved, register your songs under your publisher entity too

This is FREE and takes about 15 minutes.`
		default:
			instructions = fmt.Sprintf("Contact %s to set up a publisher entity under your account. This lets you collect both the writer and publisher share of your performance royalties.", proName)
		}
		linkText := "BMI Publisher Info"
		linkURL := "https://www.bmi.com/join#publisher"
		if proName == "ASCAP" {
			linkText = "ASCAP Publisher Info"
			linkURL = "https://www.ascap.com/help/music-business-101/publishing"
		}
		priority1 = append(priority1, ActionItem{
			Number:       next(),
			Title:        fmt.Sprintf("Create a Publishing Entity with %s", proName),
			Why:          "Performance royalties are split 50/50 between Writer and Publisher. Without a publishing entity, you're only collecting the Writer half - you're missing 50% of your PRO income!",
			Instructions: instructions,
			LinkText:     linkText,
			LinkURL:      linkURL,
			TimeEstimate: "15-20 minutes",
			Requirements: []string{"Your PRO login", "A name for your publishing company"},
		})
	}

	if !regs.HasPRO {
		priority1 = append(priority1, ActionItem{
			Number: next(),
			Title:  "Join a PRO (ASCAP or BMI)",
			Why:    "PROs collect performance royalties when your songs are played on radio, TV, in venues, or streamed. Without this, you're missing this entire royalty stream.",
			Instructions: `Choose one (not both):
- **BMI**: Free for writers. More songwriter-focused.
- **ASCAP**: $50 one-time fee. Slightly faster payments.

Both are legitimate - pick whichever appeals to you.

1. Create an account on their website
2. Complete the membership application
3. Once approved, add your songs as "works"

Important: Also create a publishing entity (see instructions above) to collect both halves of your royalties.`,
			LinkText:     "Join BMI (Free)",
			LinkURL:      "https://www.bmi.com/join",
			TimeEstimate: "20 minutes to join, plus 5-10 minutes per song to register works",
			Requirements: []string{
				"Legal name and SSN",
				"Contact information",
				"Your song titles and co-writer info",
			},
		})
	}

	if !regs.HasMLC && !regs.MLCCoveredByAdmin {
		distributor := FormatDistributorName(regs.Distributor)
		priority1 = append(priority1, ActionItem{
			Number: next(),
			Title:  "Register with The MLC",
			Why:    "The MLC collects mechanical royalties from US streaming services. At your income level, this could be significant money accumulating unclaimed.",
			Instructions: fmt.Sprintf(`1. Go to themlc.com and create a free account
2. Add your songs using their ISRC codes (get these from %s)
3. Once registered, royalties will start flowing to you

Note: Unclaimed MLC royalties may be redistributed after 3 years, so register soon.`, distributor),
			LinkText:     "Register with The MLC",
			LinkURL:      "https://www.themlc.com",
			TimeEstimate: "30-60 minutes depending on catalog size",
			Requirements: []string{
				fmt.Sprintf("Catalog export from %s with ISRC codes", distributor),
				"Co-writer splits for any collaborative songs",
			},
		})
	}

	if !regs.HasSoundExchange {
		priority1 = append(priority1, ActionItem{
			Number: next(),
			Title:  "Register with SoundExchange (Both Sides!)",
			Why:    "SoundExchange collects royalties when your recordings are played on digital radio (Pandora, SiriusXM, internet radio). SiriusXM spins are especially valuable - about $35 per spin if you own 100%.",
			Instructions: `Important: You need to register as BOTH:
- **Rights Owner** (50%): You own the master recording
- **Featured Artist** (45%): You performed on the recording

Most indie artists need both registrations to collect their full 95%.

1. Go to soundexchange.com
2. Create an account as Featured Artist
3. Also register as Rights Owner
4. Add your recordings

This applies to cover songs too - you own the master royalties for YOUR recording of a cover.`,
			LinkText:     "Register with SoundExchange",
			LinkURL:      "https://www.soundexchange.com",
			TimeEstimate: "20-30 minutes",
			Requirements: []string{"Legal name and SSN", "Your recordings/releases"},
		})
	}

	if regs.HasSoundExchange && regs.SoundExchangeOneSide != nil && *regs.SoundExchangeOneSide {
		missingSide := "Rights Owner"
		missingShare := "50%"
		if followUps.SERegistrationType == intake.SERightsOwnerOnly {
			missingSide = "Featured Artist"
			missingShare = "45%"
		}
		priority1 = append(priority1, ActionItem{
			Number: next(),
			Title:  fmt.Sprintf("Register as %s with SoundExchange", missingSide),
			Why:    fmt.Sprintf("You're only registered as one side and missing roughly half your SoundExchange royalties! The %s side gets %s of the total.", missingSide, missingShare),
			Instructions: fmt.Sprintf(`1. Log into your SoundExchange account
2. Navigate to add a new registration type
3. Register as %s
4. Add your recordings under this registration

This could nearly double your SoundExchange income.`, missingSide),
			LinkText:     "SoundExchange Account",
			LinkURL:      "https://www.soundexchange.com/login",
			TimeEstimate: "15-20 minutes",
			Requirements: []string{"Your SoundExchange login"},
		})
	}

	// Priority 2: important actions.

	if factors.HasCowriters &&
		(followUps.CowriterRegistered == intake.CowritersRegistered ||
			followUps.CowriterRegistered == intake.CowritersUnknown ||
			followUps.CowriterRegistered == intake.CowritersPartial) {
		priority2 = append(priority2, ActionItem{
			Number: next(),
			Title:  "Verify Existing Registrations (Before Registering)",
			Why:    "Your co-writers may have already registered these songs. If their splits don't match yours, you'll create a conflict that freezes payments.",
			Instructions: `1. Search Songview (songview.com) for each co-written song
2. Check what splits are already registered
3. Contact your co-writers to confirm
4. Only register once you've verified no conflicts

If you find conflicting registrations, you'll need to work with your co-writers to resolve them before proceeding.`,
			LinkText:     "Search Songview",
			LinkURL:      "https://songview.com",
			TimeEstimate: "30-60 minutes",
			Requirements: []string{"List of co-written songs", "Co-writer contact info"},
		})
	}

	if factors.SongsByOthers &&
		(followUps.RegisteredOnOthers == intake.OnOthersNone ||
			followUps.RegisteredOnOthers == intake.OnOthersNotSure) {
		priority2 = append(priority2, ActionItem{
			Number: next(),
			Title:  "Register as Songwriter on Other Artists' Releases",
			Why:    "When other artists record your songs, you're entitled to songwriter royalties from their streams. You may be missing significant income.",
			Instructions: `1. List all songs recorded by other artists
2. Search Songview to see if you're listed as writer
3. If not, register yourself as songwriter with your PRO
4. Contact the other artists' teams to ensure proper crediting`,
			LinkText:     "Search Songview",
			LinkURL:      "https://songview.com",
			TimeEstimate: "1-2 hours",
			Requirements: []string{"List of songs by other artists", "Your PRO account"},
		})
	}

	// Priority 3: recommended actions.

	if (followUps.AudienceLocation == intake.AudienceMostlyOutside ||
		followUps.AudienceLocation == intake.AudienceMix) &&
		!regs.HasPublishingAdmin {
		priority3 = append(priority3, ActionItem{
			Number: next(),
			Title:  "Consider International Royalty Collection",
			Why:    "The MLC only collects US mechanical royalties. With significant international audience, you may have unclaimed royalties in other countries.",
			Instructions: `Options:
1. **Publishing Administrator** (Songtrust, Sentric, TuneCore Publishing) - They register with foreign societies for you. Commission: 10-20% of what they collect.
2. **Direct Registration** - Register directly with foreign PROs and collection societies. More work, but no commission.

For most artists, a publishing admin is the easier choice for international collection.`,
			TimeEstimate: "Research: 1 hour, Setup: 1-2 hours",
		})
	}

	if factors.NameChanges {
		names := factors.PreviousNames
		if names == "" {
			names = "your previous names"
		}
		priority3 = append(priority3, ActionItem{
			Number: next(),
			Title:  "Verify Registrations Under All Artist Names",
			Why:    "Your music is released under multiple names, so registrations may be fragmented. Searches might miss parts of your catalog.",
			Instructions: fmt.Sprintf(`For each name variation (%s):
1. Search Songview
2. Check your PRO account
3. Search The MLC database
4. Check SoundExchange

Ensure all songs under all names are properly registered and linked to you.`, names),
			TimeEstimate: "1-2 hours",
		})
	}

	return priority1, priority2, priority3
}

// GenerateWarnings renders the detected gotchas as report warnings.
func GenerateWarnings(stage1 Stage1Output) []Warning {
	var warnings []Warning
	for _, g := range stage1.GotchasDetected {
		icon := "ℹ️"
		switch g.Severity {
		case SeverityCritical:
			icon = "🔴"
		case SeverityWarning:
			icon = "⚠️"
		}
		warnings = append(warnings, Warning{
			Icon:        icon,
			Title:       g.Title,
			Description: g.Description,
			Consequence: g.Consequence,
			Action:      g.Action,
		})
	}
	return warnings
}

// BuildReportData assembles the fully formatted report payload from the
// stage 1 facts.
func BuildReportData(stage1 Stage1Output, cfg Config, now time.Time) ReportData {
	form := stage1.Intake
	regs := stage1.Registrations
	calc := stage1.Calculations

	p1, p2, p3 := GenerateActionItems(stage1)
	warnings := GenerateWarnings(stage1)

	var have []RegistrationItem
	var missing []MissingRegistration

	if regs.HasDistributor {
		have = append(have, RegistrationItem{
			Name:        fmt.Sprintf("Distribution (%s)", FormatDistributorName(regs.Distributor)),
			Description: "Collecting streaming income from Spotify, Apple Music, etc.",
		})
	}

	if regs.HasPRO {
		have = append(have, RegistrationItem{
			Name:        fmt.Sprintf("PRO (%s)", FormatPROName(regs.PROName)),
			Description: "Collecting performance royalties for your compositions",
		})
	} else {
		missing = append(missing, MissingRegistration{
			Name:           "PRO Membership",
			WhatItCollects: "Performance royalties for your compositions",
		})
	}

	if regs.HasMLC {
		have = append(have, RegistrationItem{
			Name:        "The MLC",
			Description: "Collecting mechanical royalties from US streaming",
		})
	} else if regs.MLCCoveredByAdmin {
		have = append(have, RegistrationItem{
			Name:        fmt.Sprintf("The MLC (via %s)", FormatPublishingAdminName(regs.PublishingAdmin)),
			Description: "Mechanical royalties covered by your publishing admin",
		})
	} else {
		missing = append(missing, MissingRegistration{
			Name:           "The MLC",
			WhatItCollects: "Mechanical royalties from US streaming",
		})
	}

	if regs.HasSoundExchange {
		have = append(have, RegistrationItem{
			Name:        "SoundExchange",
			Description: "Collecting digital radio royalties for your recordings",
		})
	} else {
		missing = append(missing, MissingRegistration{
			Name:           "SoundExchange",
			WhatItCollects: "Digital radio royalties (Pandora, SiriusXM, etc.)",
		})
	}

	var missingEstimates []MissingEstimateLine
	addLine := func(name string, e Estimate) {
		if !e.Applicable {
			return
		}
		missingEstimates = append(missingEstimates, MissingEstimateLine{
			Name:    name,
			Monthly: "~" + FormatMoney(e.Monthly),
			Total:   "~" + FormatEstimateRange(e.TotalLow, e.TotalHigh),
		})
	}
	addLine("PRO (Performance)", calc.Estimates.PRO)
	addLine("PRO Publisher Share", calc.Estimates.PROPublisherShare)
	addLine("The MLC (Mechanicals)", calc.Estimates.MLC)
	addLine("SoundExchange", calc.Estimates.SoundExchange)
	addLine("SoundExchange (Missing Side)", calc.Estimates.SoundExchangeMissingSide)
	addLine("Songs by Other Artists", calc.Estimates.SongsByOthers)

	var diyTimes []DIYTimeEstimate
	if !regs.HasPRO {
		diyTimes = append(diyTimes, DIYTimeEstimate{Task: "Join PRO + register works", Time: "1-2 hours"})
	}
	if regs.HasPRO && !regs.HasPublishingAdmin &&
		(regs.HasPROPublishingEntity == nil || !*regs.HasPROPublishingEntity) {
		diyTimes = append(diyTimes, DIYTimeEstimate{Task: "Create PRO publishing entity", Time: "15-20 min"})
	}
	if !regs.HasMLC && !regs.MLCCoveredByAdmin {
		diyTimes = append(diyTimes, DIYTimeEstimate{Task: "Register with The MLC", Time: "30-60 min"})
	}
	if !regs.HasSoundExchange {
		diyTimes = append(diyTimes, DIYTimeEstimate{Task: "Register with SoundExchange", Time: "20-30 min"})
	}
	if stage1.ComplexityFactors.HasCowriters {
		diyTimes = append(diyTimes, DIYTimeEstimate{Task: "Document co-writer splits", Time: "1-2 hours"})
	}

	var criticalMessage string
	if calc.BlockDIY {
		blocked := map[string]bool{}
		for _, g := range stage1.GotchasDetected {
			if g.Severity == SeverityCritical && g.BlocksDIY {
				blocked[g.ID] = true
			}
		}
		switch {
		case blocked["estate_inherited"]:
			criticalMessage = "Estate and inherited catalog situations require legal documentation before any registrations can be made. Proceeding without proper authority could create legal complications."
		case blocked["legal_disputes"]:
			criticalMessage = "With potential legal disputes or contested ownership, making registrations could complicate your situation. We recommend consulting with an entertainment attorney before proceeding."
		case blocked["double_publishing_admin"]:
			criticalMessage = "You may have multiple publishing administrators with active registrations. Registering new songs could create additional conflicts. The existing situation needs to be resolved first."
		}
	}

	totalDIYTime := fmt.Sprintf("%d-%d hours", calc.DIYTimeHoursLow, calc.DIYTimeHoursHigh)
	if calc.DIYTimeHoursLow == calc.DIYTimeHoursHigh {
		totalDIYTime = fmt.Sprintf("%d hours", calc.DIYTimeHoursLow)
	}

	dfyBestFor := "People who prefer to have an expert handle it"
	switch calc.Complexity {
	case ComplexityComplex:
		dfyBestFor = "People with complex situations who want expert handling"
	case ComplexityModerate:
		dfyBestFor = "People who value their time or want peace of mind"
	}

	proName := ""
	if regs.PROName != "" {
		proName = FormatPROName(regs.PROName)
	}
	publishingAdmin := ""
	if regs.PublishingAdmin != "" {
		publishingAdmin = FormatPublishingAdminName(regs.PublishingAdmin)
	}

	return ReportData{
		ArtistName:    form.ArtistName,
		LegalName:     form.LegalName,
		CurrentDate:   now.Format("January 2, 2006"),
		Distributor:   FormatDistributorName(regs.Distributor),
		MonthlyIncome: FormatIncomeRange(form.MonthlyIncome),
		CatalogSize:   FormatCatalogSize(form.CatalogSize),
		TimeReleasing: FormatTimeReleasing(form.TimeReleasing),

		Score:          calc.Score,
		ScoreLabel:     calc.ScoreLabel,
		EstimateLow:    FormatMoney(calc.Estimates.Total.TotalLow),
		EstimateHigh:   FormatMoney(calc.Estimates.Total.TotalHigh),
		MonthlyGap:     FormatMoney(calc.Estimates.Total.MonthlyGap),
		Complexity:     calc.Complexity,
		Recommendation: calc.Recommendation,

		RegistrationsHave:    have,
		RegistrationsMissing: missing,

		HasDistributor:            regs.HasDistributor,
		HasPRO:                    regs.HasPRO,
		PROName:                   proName,
		HasPROPublishingEntity:    regs.HasPROPublishingEntity,
		HasMLC:                    regs.HasMLC || regs.MLCCoveredByAdmin,
		HasPublishingAdmin:        regs.HasPublishingAdmin,
		PublishingAdmin:           publishingAdmin,
		HasSoundExchange:          regs.HasSoundExchange,
		SoundExchangeBothSides:    regs.SoundExchangeBothSides,
		SoundExchangeOneSide:      regs.SoundExchangeOneSide,
		SoundExchangeRegisteredAs: regs.SoundExchangeRegisteredAs,

		MissingEstimates:      missingEstimates,
		TotalMonthlyLoss:      FormatMoney(calc.Estimates.Total.MonthlyGap),
		TotalLossEstimate:     FormatEstimateRange(calc.Estimates.Total.TotalLow, calc.Estimates.Total.TotalHigh),
		EstimationExplanation: "Estimates are based on industry averages for your income level. Mechanical royalties are typically 10-15% of streaming income. Performance royalties vary based on radio play and venue usage. SoundExchange royalties depend on digital radio exposure. Actual amounts may vary significantly.",

		HasWarnings:     len(warnings) > 0,
		Warnings:        warnings,
		IsCritical:      calc.BlockDIY,
		CriticalMessage: criticalMessage,

		ActionsPriority1: p1,
		ActionsPriority2: p2,
		ActionsPriority3: p3,

		DIYTimeEstimates: diyTimes,
		TotalDIYTime:     totalDIYTime,

		DFYPrice:     fmt.Sprintf("$%d-%d", cfg.Pricing.DoneForYouLow, cfg.Pricing.DoneForYouHigh),
		OngoingPrice: fmt.Sprintf("$%d-%d", cfg.Pricing.OngoingLow, cfg.Pricing.OngoingHigh),
		DFYBestFor:   dfyBestFor,

		ConsultationLink: cfg.Links.Consultation,
		DFYLink:          cfg.Links.PurchaseDFY,
		FullServiceLink:  cfg.Links.PurchaseFull,
		CallLink:         cfg.Links.FreeCall,
		SplitSheetLink:   cfg.Links.SplitSheetTemplate,
	}
}
