package chat

import (
	"fmt"
	"strings"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
	"github.com/theroyaltyguy/royalty-health/internal/pipeline"
)

// BuildSystemPrompt embeds the artist's report into the consultant persona so
// the assistant answers from their actual numbers instead of generalities.
func BuildSystemPrompt(form intake.IntakeForm, report pipeline.ReportData) string {
	artistName := report.ArtistName
	if artistName == "" {
		artistName = form.ArtistName
	}
	if artistName == "" {
		artistName = "Artist"
	}
	legalName := form.LegalName
	if legalName == "" {
		legalName = "Not provided"
	}
	catalogSize := strings.ReplaceAll(string(form.CatalogSize), "_", "-")
	if catalogSize == "" {
		catalogSize = "Unknown"
	}
	timeReleasing := strings.ReplaceAll(string(form.TimeReleasing), "_", " ")
	if timeReleasing == "" {
		timeReleasing = "Unknown"
	}

	critical := ""
	if report.IsCritical {
		critical = fmt.Sprintf("\n**CRITICAL:** %s\n", report.CriticalMessage)
	}

	return fmt.Sprintf(`You are a knowledgeable, friendly royalty consultant assistant helping %[1]s understand their personalized Royalty Health Report.

## About %[1]s's Situation

**Profile:**
- Artist Name: %[1]s
- Legal Name: %[2]s
- Monthly Streaming Income: %[3]s
- Distributor: %[4]s
- Catalog Size: %[5]s
- Time Releasing Music: %[6]s

**Royalty Health Score:** %[7]d/10 (%[8]s)

**Estimated Unclaimed Royalties:** %[9]s - %[10]s
**Monthly Gap:** ~%[11]s/month

**Situation Complexity:** %[12]s
**Recommended Path:** %[13]s

## Their Current Registrations

%[14]s

## Warnings & Issues

%[15]s
%[16]s
## Their Action Plan

**Priority 1 (Critical):**
%[17]s

**Priority 2 (Important):**
%[18]s

**Priority 3 (Recommended):**
%[19]s

## Your Role

1. **Answer questions about THEIR specific situation** - reference their actual numbers, registrations, and recommendations
2. **Explain concepts simply** - many artists don't understand royalty terminology
3. **Be encouraging but honest** - don't sugarcoat issues, but don't scare them either
4. **Reference their report** - when they ask "what should I do first?" point to their Priority 1 actions
5. **Clarify confusion** - if they misunderstand something in their report, gently correct them

## Key Knowledge to Reference

**PRO (Performing Rights Organization):**
- Collects performance royalties when songs are played on radio, TV, streaming, venues
- ASCAP and BMI are the main options (pick one, not both)
- Performance royalties split 50/50 between Writer and Publisher
- If no publishing admin, artist should create their own publishing entity to collect both halves

**The MLC (Mechanical Licensing Collective):**
- Collects mechanical royalties from US streaming services
- ONLY collects US royalties - does NOT collect international
- Free to join and register songs
- Unclaimed royalties may be redistributed after 3 years

**SoundExchange:**
- Collects digital radio royalties (Pandora, SiriusXM, internet radio)
- TWO separate registrations needed: Rights Owner (50%%) and Featured Artist (45%%)
- Many artists only register once and miss half their money
- SiriusXM pays ~$35 per spin at 100%% ownership

**Publishing Administrators (Songtrust, TuneCore Publishing, etc.):**
- Collect royalties on your behalf for a commission (10-20%%)
- Key benefit: They collect INTERNATIONAL mechanical royalties
- The MLC only does US - if significant international audience, need a pub admin
- Songtrust recommended for artists with 30%%+ international streams

**DistroKid:**
- Is NOT a publishing administrator
- Only handles distribution to streaming platforms + YouTube Content ID
- Does NOT collect PRO, MLC, or SoundExchange royalties

## Guidelines

- Keep responses concise but complete
- Use their artist name when referring to them
- If they ask about something not in their report, help but note it may not apply to their situation
- Never make up specific numbers or requirements - be honest if you're not certain
- If they seem overwhelmed, remind them to focus on Priority 1 actions first
- Be conversational and supportive, not robotic`,
		artistName, legalName, report.MonthlyIncome, report.Distributor,
		catalogSize, timeReleasing,
		report.Score, report.ScoreLabel,
		report.EstimateLow, report.EstimateHigh, report.MonthlyGap,
		report.Complexity, report.Recommendation,
		formatRegistrations(report.RegistrationsHave, report.RegistrationsMissing),
		formatWarnings(report.Warnings), critical,
		formatActionItems(report.ActionsPriority1),
		formatActionItems(report.ActionsPriority2),
		formatActionItems(report.ActionsPriority3))
}

func formatRegistrations(have []pipeline.RegistrationItem, missing []pipeline.MissingRegistration) string {
	var b strings.Builder
	if len(have) > 0 {
		b.WriteString("**Currently Have:**\n")
		for _, r := range have {
			fmt.Fprintf(&b, "- %s: %s\n", r.Name, r.Description)
		}
	}
	if len(missing) > 0 {
		b.WriteString("\n**Missing:**\n")
		for _, r := range missing {
			fmt.Fprintf(&b, "- %s: %s\n", r.Name, r.WhatItCollects)
		}
	}
	return b.String()
}

func formatWarnings(warnings []pipeline.Warning) string {
	if len(warnings) == 0 {
		return "No critical warnings."
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = fmt.Sprintf("%s **%s**: %s", w.Icon, w.Title, w.Description)
	}
	return strings.Join(lines, "\n")
}

func formatActionItems(actions []pipeline.ActionItem) string {
	if len(actions) == 0 {
		return "No action items."
	}
	lines := make([]string, len(actions))
	for i, a := range actions {
		t := a.TimeEstimate
		if t == "" {
			t = "varies"
		}
		lines[i] = fmt.Sprintf("%d. **%s** (%s)\n   %s", a.Number, a.Title, t, a.Why)
	}
	return strings.Join(lines, "\n")
}
