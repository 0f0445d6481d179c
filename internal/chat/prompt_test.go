package chat

import (
	"strings"
	"testing"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
	"github.com/theroyaltyguy/royalty-health/internal/pipeline"
)

func sampleReport() pipeline.ReportData {
	return pipeline.ReportData{
		ArtistName:     "Test Artist",
		Score:          4,
		ScoreLabel:     pipeline.ScorePoor,
		EstimateLow:    "$250",
		EstimateHigh:   "$591",
		MonthlyGap:     "$10",
		Complexity:     pipeline.ComplexitySimple,
		Recommendation: pipeline.RecommendDIY,
		MonthlyIncome:  "$0-100",
		Distributor:    "TuneCore",
		RegistrationsHave: []pipeline.RegistrationItem{
			{Name: "Distribution (TuneCore)", Description: "Collecting streaming income"},
		},
		RegistrationsMissing: []pipeline.MissingRegistration{
			{Name: "The MLC", WhatItCollects: "Mechanical royalties from US streaming"},
		},
		Warnings: []pipeline.Warning{
			{Icon: "🔴", Title: "Missing MLC Registration", Description: "Not registered with The MLC."},
		},
		ActionsPriority1: []pipeline.ActionItem{
			{Number: 1, Title: "Register with The MLC", Why: "Mechanicals are accumulating unclaimed.", TimeEstimate: "30-60 minutes"},
		},
	}
}

func TestBuildSystemPromptEmbedsReport(t *testing.T) {
	form := intake.IntakeForm{
		ArtistName:    "Test Artist",
		LegalName:     "Test Person",
		TimeReleasing: intake.Time2To5Years,
		CatalogSize:   intake.Catalog11To25,
	}
	got := BuildSystemPrompt(form, sampleReport())

	for _, want := range []string{
		"helping Test Artist understand",
		"- Legal Name: Test Person",
		"- Catalog Size: 11-to-25",
		"- Time Releasing Music: 2 to 5 years",
		"**Royalty Health Score:** 4/10 (Poor)",
		"**Estimated Unclaimed Royalties:** $250 - $591",
		"**Monthly Gap:** ~$10/month",
		"- Distribution (TuneCore): Collecting streaming income",
		"- The MLC: Mechanical royalties from US streaming",
		"🔴 **Missing MLC Registration**: Not registered with The MLC.",
		"1. **Register with The MLC** (30-60 minutes)",
		"**Priority 2 (Important):**\nNo action items.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if strings.Contains(got, "**CRITICAL:**") {
		t.Fatal("non-critical report should not carry a critical block")
	}
}

func TestBuildSystemPromptCriticalBlock(t *testing.T) {
	report := sampleReport()
	report.IsCritical = true
	report.CriticalMessage = "Estate situations need legal documentation first."
	got := BuildSystemPrompt(intake.IntakeForm{}, report)
	if !strings.Contains(got, "**CRITICAL:** Estate situations need legal documentation first.") {
		t.Fatal("critical message not embedded")
	}
}

func TestBuildSystemPromptFallbacks(t *testing.T) {
	got := BuildSystemPrompt(intake.IntakeForm{}, pipeline.ReportData{})
	for _, want := range []string{
		"helping Artist understand",
		"- Legal Name: Not provided",
		"- Catalog Size: Unknown",
		"- Time Releasing Music: Unknown",
		"No critical warnings.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing fallback %q", want)
		}
	}
}
