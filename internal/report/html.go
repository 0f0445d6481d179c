package report

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// reportCSS is the inline print stylesheet for exported reports. Kept inline
// so an exported HTML file is self-contained.
const reportCSS = `
:root{--ink:#1c1917;--muted:#57534e;--accent:#92400e;--rule:#d6d3d1;}
*{box-sizing:border-box;}
body{font-family:Georgia,'Times New Roman',serif;color:var(--ink);background:#fff;margin:0;padding:1rem;line-height:1.55;}
.report-wrap{max-width:880px;margin:0 auto;border-left:3px solid var(--accent);border-right:3px solid var(--accent);padding:0 1.2rem;}
.report-meta{color:var(--muted);font-size:0.85rem;margin-bottom:1rem;}
.report-meta strong{color:var(--ink);}
h1{font-size:1.7rem;margin:0.6rem 0;}
h2{font-size:1.25rem;margin-top:1.6rem;border-bottom:1px solid var(--rule);padding-bottom:0.25rem;}
h3{font-size:1.05rem;margin-top:1.2rem;}
h4{font-size:0.95rem;margin-top:1rem;}
a{color:#1d4ed8;text-decoration:underline;}
hr{border:0;border-top:1px solid var(--rule);margin:1.2rem 0;}
table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.85rem;margin:0.8rem 0;}
th,td{border:1px solid #a8a29e;padding:0.35rem 0.5rem;text-align:left;vertical-align:top;}
thead th{background:#f1f5f9;font-weight:700;}
blockquote{border-left:3px solid var(--rule);margin:0.8rem 0;padding:0.2rem 0.8rem;color:var(--muted);}
code{font-family:ui-monospace,monospace;font-size:0.85em;background:#f5f5f4;padding:0.1em 0.3em;border-radius:3px;}
h2[data-page-break-before="true"]{break-before:page;page-break-before:always;}
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
@media print{@page{size:auto;margin:12mm;}body{padding:0;}.report-wrap{max-width:none;}}
`

// BuildHTML converts a rendered report's Markdown into a standalone HTML
// document suitable for viewing or Chromium PDF export.
func BuildHTML(markdown, artistName string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	contentHTML := applyPrintLayoutHooks(content.String())

	meta := ""
	if strings.TrimSpace(artistName) != "" {
		meta = "<div class='report-meta'><strong>Prepared for:</strong> " +
			html.EscapeString(artistName) + "</div>"
	}

	return "<!doctype html><html><head><meta charset='utf-8'><title>Royalty Health Report</title>" +
		"<style>" + reportCSS + "</style></head><body>" +
		"<div class='report-wrap'>" + meta +
		"<div class='report-html'>" + contentHTML + "</div></div>" +
		"</body></html>", nil
}

var (
	reActionPlanHeading = regexp.MustCompile(`(?i)<h2([^>]*)>\s*Your Action Plan\s*</h2>`)
	reOptionsHeading    = regexp.MustCompile(`(?i)<h2([^>]*)>\s*Your Options\s*</h2>`)
)

// applyPrintLayoutHooks marks the headings that should start a fresh page in
// print output. The action plan and the options pitch each get their own page
// so steps aren't split mid-item.
func applyPrintLayoutHooks(contentHTML string) string {
	out := reActionPlanHeading.ReplaceAllString(contentHTML,
		`<h2$1 data-page-break-before="true">Your Action Plan</h2>`)
	out = reOptionsHeading.ReplaceAllString(out,
		`<h2$1 data-page-break-before="true">Your Options</h2>`)
	return out
}
