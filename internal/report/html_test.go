package report

import (
	"strings"
	"testing"
)

func TestBuildHTMLConvertsMarkdown(t *testing.T) {
	md := `# Royalty Health Report

## Quick Summary

| Metric | Value |
|--------|-------|
| **Registration Score** | 7/10 (Good) |

## Your Action Plan

#### 1. Register with The MLC
`
	got, err := BuildHTML(md, "Test Artist")
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if !strings.Contains(got, "<h1>Royalty Health Report</h1>") {
		t.Fatal("missing converted h1")
	}
	// GFM tables must survive conversion.
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<strong>Registration Score</strong>") {
		t.Fatal("summary table not converted")
	}
	if !strings.Contains(got, "<strong>Prepared for:</strong> Test Artist") {
		t.Fatal("missing meta line")
	}
	if !strings.Contains(got, `<h2 data-page-break-before="true">Your Action Plan</h2>`) {
		t.Fatal("action plan heading should get a page break")
	}
}

func TestBuildHTMLEscapesArtistName(t *testing.T) {
	got, err := BuildHTML("# Report", "<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if strings.Contains(got, "<script>alert(1)</script>") {
		t.Fatal("artist name not escaped")
	}
}

func TestBuildHTMLOmitsMetaWhenNameEmpty(t *testing.T) {
	got, err := BuildHTML("# Report", "  ")
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if strings.Contains(got, "report-meta") {
		t.Fatal("meta block should be omitted without a name")
	}
}

func TestApplyPrintLayoutHooks(t *testing.T) {
	in := "<h2>Quick Summary</h2><p>x</p><h2>Your Options</h2><p>y</p>"
	out := applyPrintLayoutHooks(in)
	if !strings.Contains(out, `<h2 data-page-break-before="true">Your Options</h2>`) {
		t.Fatalf("expected page-break injection, got: %s", out)
	}

	in = "<h2>Quick Summary</h2><p>x</p>"
	if out := applyPrintLayoutHooks(in); out != in {
		t.Fatalf("expected no change without target headings, got: %s", out)
	}
}
