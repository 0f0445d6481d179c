package pipeline

import (
	"fmt"
	"strings"
)

// RenderReport renders the full Royalty Health Report as Markdown. Section
// order is fixed; conditional sections drop out rather than reorder.
func RenderReport(data ReportData) string {
	sections := []string{
		renderHeader(data),
		renderQuickSummary(data),
		renderCurrentSetup(data),
		renderRoyaltyStreams(data),
		renderEstimates(data),
	}

	if data.HasWarnings {
		sections = append(sections, renderWarnings(data))
	}

	sections = append(sections, renderActionPlan(data))

	if !data.IsCritical {
		sections = append(sections, renderOngoingMaintenance())
	}
	if !data.IsCritical && len(data.DIYTimeEstimates) > 0 {
		sections = append(sections, renderDIYTime(data))
	}

	sections = append(sections, renderOptions(data), renderFooter(data))

	return strings.Join(sections, "\n\n")
}

func renderHeader(data ReportData) string {
	return fmt.Sprintf(`# Royalty Health Report

**Prepared for:** %s
**Date:** %s

---`, data.ArtistName, data.CurrentDate)
}

func renderQuickSummary(data ReportData) string {
	return fmt.Sprintf(`## Quick Summary

| Metric | Value |
|--------|-------|
| **Registration Score** | %d/10 (%s) |
| **Estimated Unclaimed Royalties** | %s - %s |
| **Ongoing Monthly Gap** | ~%s/month |
| **Situation Complexity** | %s |
| **Recommended Path** | %s |

---`, data.Score, data.ScoreLabel, data.EstimateLow, data.EstimateHigh,
		data.MonthlyGap, data.Complexity, data.Recommendation)
}

func renderCurrentSetup(data ReportData) string {
	var b strings.Builder
	b.WriteString("## Your Current Setup\n\n### What You Have ✓\n\n")

	if len(data.RegistrationsHave) > 0 {
		for _, reg := range data.RegistrationsHave {
			fmt.Fprintf(&b, "- ✅ **%s** - %s\n", reg.Name, reg.Description)
		}
	} else {
		b.WriteString("- ❌ No royalty registrations detected\n")
	}

	b.WriteString("\n### What You're Missing ✗\n\n")

	if len(data.RegistrationsMissing) > 0 {
		for _, reg := range data.RegistrationsMissing {
			fmt.Fprintf(&b, "- ❌ **%s** - %s\n", reg.Name, reg.WhatItCollects)
		}
	} else {
		b.WriteString("- ✅ You appear to have all major registrations covered\n")
	}

	b.WriteString("\n---")
	return b.String()
}

func renderRoyaltyStreams(data ReportData) string {
	var b strings.Builder
	fmt.Fprintf(&b, `## Understanding Your Royalty Streams

As a musician, you have multiple income streams. Here's what applies to you:

### 1. Distribution Income (Streaming/Downloads)
**Source:** Your distributor (%s)
**What it is:** When someone streams your song on Spotify, Apple Music, etc., your distributor collects and pays you.

`, data.Distributor)

	if data.HasDistributor {
		b.WriteString("✅ You're collecting this.\n")
	} else {
		b.WriteString("❌ You need a distributor to release music and collect streaming income.\n")
	}

	b.WriteString(`
### 2. Performance Royalties (PRO)
**Source:** ASCAP, BMI, or SESAC
**What it is:** When your song is played on radio, TV, in venues, or streamed, your PRO collects performance royalties for the *composition* (the song itself, not the recording).

**Important:** Performance royalties are split **50/50 between Writer and Publisher**:
- **Writer share (50%)** - Goes to you as the songwriter
- **Publisher share (50%)** - Goes to whoever publishes your music

If you don't have a publisher or publishing admin, you need to create your own **publishing entity** with your PRO to collect the publisher half. Otherwise, you're only getting 50% of your performance royalties! Creating a publishing entity is FREE and takes about 15 minutes.

`)

	if data.HasPRO {
		fmt.Fprintf(&b, "✅ You're registered with %s.\n", data.PROName)
		if data.HasPublishingAdmin {
			fmt.Fprintf(&b, "✅ Your publishing admin (%s) collects your publisher share.\n", data.PublishingAdmin)
		} else if data.HasPROPublishingEntity != nil && *data.HasPROPublishingEntity {
			b.WriteString("✅ You have a publishing entity to collect both shares.\n")
		} else {
			fmt.Fprintf(&b, "⚠️ **You may be missing 50%% of your PRO income.** Without a publishing entity, you're only collecting the Writer share. Set up a publishing entity with %s to collect both halves.\n", data.PROName)
		}
	} else {
		b.WriteString("❌ **You are not collecting performance royalties.** This is separate from what your distributor pays you.\n")
	}

	b.WriteString(`
### 3. Mechanical Royalties (The MLC)
**Source:** The Mechanical Licensing Collective
**What it is:** When your song is streamed on interactive services (Spotify, Apple Music, Amazon), mechanical royalties are generated for the *composition*. This is separate from what your distributor pays.

`)

	if data.HasMLC {
		if data.HasPublishingAdmin {
			fmt.Fprintf(&b, "✅ Your publishing administrator (%s) should be collecting this for you.\n", data.PublishingAdmin)
		} else {
			b.WriteString("✅ You're registered with The MLC.\n")
		}
	} else {
		b.WriteString("❌ **You are not collecting mechanical royalties.** This could be significant money accumulating unclaimed.\n")
	}

	b.WriteString(`
### 4. Digital Performance Royalties (SoundExchange)
**Source:** SoundExchange
**What it is:** When your *recording* is played on non-interactive digital radio (Pandora, SiriusXM, internet radio), SoundExchange collects royalties for the sound recording.

**Important:** SoundExchange has **TWO separate registrations**:
- **Rights Owner (50%)** - Who owns the master recording (typically you if you're indie)
- **Featured Artist (45%)** - Who performed on the recording (you)
- **Non-featured (5%)** - Goes to session musician fund (AFM/SAG-AFTRA)

If you record and perform your own music, you need to register as **BOTH** Rights Owner AND Featured Artist to collect your full 95%. Many artists only register once and miss roughly half their SoundExchange money!

Also note: **This applies to cover songs too!** If you recorded a cover of someone else's song, YOU own the Rights Owner and Featured Artist royalties for YOUR recording. (The composition royalties go to the original songwriter, but the master royalties are yours.)

SiriusXM plays are especially valuable - **~$35 per spin total** if you own 100% of both sides.

`)

	if data.HasSoundExchange {
		b.WriteString("✅ You're registered with SoundExchange.\n")
		switch {
		case data.SoundExchangeBothSides != nil && *data.SoundExchangeBothSides:
			b.WriteString("✅ You're registered as both Rights Owner and Featured Artist.\n")
		case data.SoundExchangeOneSide != nil && *data.SoundExchangeOneSide:
			fmt.Fprintf(&b, "⚠️ **You may be missing half your SoundExchange income.** You're only registered as %s. Register as the other side to collect your full royalties.\n", data.SoundExchangeRegisteredAs)
		default:
			b.WriteString("⚠️ Make sure you're registered as BOTH Rights Owner AND Featured Artist to collect your full royalties.\n")
		}
	} else {
		b.WriteString("❌ **You are not collecting digital performance royalties.** The amount varies by how much radio play you get, but SXM spins are extremely valuable (~$35/spin total at 100% ownership).\n")
	}

	b.WriteString("\n---")
	return b.String()
}

func renderEstimates(data ReportData) string {
	var b strings.Builder
	fmt.Fprintf(&b, `## Estimated Money Left on the Table

Based on your reported income of **%s**/month from streaming:

| Missing Registration | Estimated Monthly Loss | Estimated Total Lost |
|---------------------|----------------------|---------------------|
`, data.MonthlyIncome)

	for _, estimate := range data.MissingEstimates {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", estimate.Name, estimate.Monthly, estimate.Total)
	}

	fmt.Fprintf(&b, `| **TOTAL** | **~%s** | **~%s** |

**How we calculated this:**
%s

⚠️ **Important:** These are estimates based on industry averages. Actual amounts vary based on where your streams come from, radio play, and other factors. The only way to know for sure is to register and start collecting.

---`, data.TotalMonthlyLoss, data.TotalLossEstimate, data.EstimationExplanation)

	return b.String()
}

func renderWarnings(data ReportData) string {
	var b strings.Builder
	b.WriteString("## ⚠️ Warnings & Red Flags\n\n")

	for _, w := range data.Warnings {
		fmt.Fprintf(&b, `### %s %s

%s

**Why this matters:** %s

**What to do:** %s

---

`, w.Icon, w.Title, w.Description, w.Consequence, w.Action)
	}

	return b.String()
}

func renderActionPlan(data ReportData) string {
	if data.IsCritical {
		return fmt.Sprintf(`## Your Action Plan

### 🛑 STOP - Complex Situation Detected

%s

**We recommend scheduling a consultation before taking any action.** Proceeding with DIY registration could make your situation worse.

[Book a Consultation →](%s)

---`, data.CriticalMessage, data.ConsultationLink)
	}

	var b strings.Builder
	b.WriteString("## Your Action Plan\n\n")

	if len(data.ActionsPriority1) > 0 {
		b.WriteString("### Priority 1: Do This Week (Critical)\n\n")
		for _, a := range data.ActionsPriority1 {
			b.WriteString(renderAction(a))
		}
	}
	if len(data.ActionsPriority2) > 0 {
		b.WriteString("### Priority 2: Do This Month (Important)\n\n")
		for _, a := range data.ActionsPriority2 {
			b.WriteString(renderAction(a))
		}
	}
	if len(data.ActionsPriority3) > 0 {
		b.WriteString("### Priority 3: When You Have Time (Recommended)\n\n")
		for _, a := range data.ActionsPriority3 {
			b.WriteString(renderAction(a))
		}
	}

	b.WriteString("---")
	return b.String()
}

func renderAction(action ActionItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, `#### %d. %s

**Why:** %s

**How:**
%s

`, action.Number, action.Title, action.Why, action.Instructions)

	if action.LinkText != "" && action.LinkURL != "" {
		fmt.Fprintf(&b, "**Link:** [%s](%s)\n\n", action.LinkText, action.LinkURL)
	}

	fmt.Fprintf(&b, "**Time needed:** %s\n\n", action.TimeEstimate)

	if len(action.Requirements) > 0 {
		b.WriteString("**What you'll need:**\n")
		for _, req := range action.Requirements {
			fmt.Fprintf(&b, "- %s\n", req)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	return b.String()
}

func renderOngoingMaintenance() string {
	return `## Ongoing Maintenance

Once you complete the setup above, here's what you need to do going forward:

### Every New Release:
- Register new songs with your PRO as "works"
- If not using a publishing admin, register with The MLC
- Confirm co-writer splits are documented before release

### Quarterly:
- Check that royalty payments are arriving from all sources
- Log into each account to verify no issues

### Annually:
- Review your catalog for any missing registrations
- Update contact/payment info if changed

---`
}

func renderDIYTime(data ReportData) string {
	var b strings.Builder
	b.WriteString(`## DIY Estimated Time

If you follow this plan yourself:

| Task | Estimated Time |
|------|---------------|
`)

	for _, estimate := range data.DIYTimeEstimates {
		fmt.Fprintf(&b, "| %s | %s |\n", estimate.Task, estimate.Time)
	}

	fmt.Fprintf(&b, "| **Total** | **%s** |\n\n---", data.TotalDIYTime)
	return b.String()
}

func renderOptions(data ReportData) string {
	if data.IsCritical {
		return fmt.Sprintf(`## Your Options

Given the complexity of your situation, we recommend:

### Consultation ($49)
A 30-minute call to discuss your specific situation and create a custom action plan.

[Book a Consultation →](%s)

---`, data.ConsultationLink)
	}

	return fmt.Sprintf(`## Your Options

### Option 1: DIY (Free)
You have everything you need in this report. Follow the action plan step by step.

**Best for:** People with straightforward situations and time to handle it themselves.

**Estimated time:** %s

---

### Option 2: Done-For-You (%s)

I'll execute this entire plan for you:
- Complete all registrations on your behalf
- Verify everything is set up correctly
- Handle any complications that arise
- Deliver a confirmation report when complete

**Best for:** %s

**Typical turnaround:** 1-2 weeks

[Get Done-For-You →](%s)

---

### Option 3: Done-For-You + Ongoing Management (%s + %s/month)

Everything in Option 2, plus:
- Quarterly royalty statement review
- New release registration reminders
- Ongoing monitoring for issues
- Direct access for questions
- Annual royalty health check

**Best for:** Artists who want to focus on music, not paperwork.

[Get Full Service →](%s)

---`, data.TotalDIYTime, data.DFYPrice, data.DFYBestFor, data.DFYLink,
		data.DFYPrice, data.OngoingPrice, data.FullServiceLink)
}

func renderFooter(data ReportData) string {
	return fmt.Sprintf(`## Questions?

**Not sure which option is right for you?**

Book a free 15-minute call to discuss your situation:
[Schedule a Call →](%s)

---

## Disclaimer

This report is for informational purposes only and does not constitute legal, tax, or financial advice. Estimates are based on industry averages and your reported information; actual royalties may vary. We recommend consulting with appropriate professionals for complex situations involving legal disputes, estates, or significant income.

---

**Report generated by The Royalty Guy**`, data.CallLink)
}
