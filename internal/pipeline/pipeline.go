package pipeline

import (
	"time"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

// Pipeline runs the full intake-to-report flow. It is stateless apart
// from configuration; Run is safe for concurrent use.
type Pipeline struct {
	cfg Config

	// now is swapped out in tests to freeze estimate math and dates.
	now func() time.Time
}

// New returns a Pipeline using the given config and the wall clock.
func New(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg, now: time.Now}
}

// NewWithClock returns a Pipeline with an injected clock.
func NewWithClock(cfg Config, now func() time.Time) *Pipeline {
	return &Pipeline{cfg: cfg, now: now}
}

// Run processes a validated submission end to end: stage 1 facts, stage 2
// follow-up selection, stage 3 report data, and the rendered Markdown.
func (p *Pipeline) Run(form intake.IntakeForm, followUps intake.FollowUpAnswers) Result {
	now := p.now()

	stage1 := ProcessIntake(form, followUps, now)
	stage2 := GenerateFollowUps(stage1)
	reportData := BuildReportData(stage1, p.cfg, now)

	return Result{
		Stage1:             stage1,
		Stage2:             stage2,
		ReportData:         reportData,
		ReportMarkdown:     RenderReport(reportData),
		CanGeneratePlan:    CanGeneratePlan(stage1),
		MissingInfoWarning: MissingInfoWarning(stage1),
		Timestamp:          now.UTC().Format(time.RFC3339),
	}
}

// FollowUpQuestions returns the stage 2 output for an intake with no
// follow-up answers yet, for the two-step form flow.
func (p *Pipeline) FollowUpQuestions(form intake.IntakeForm) Stage2Output {
	stage1 := ProcessIntake(form, intake.FollowUpAnswers{}, p.now())
	return GenerateFollowUps(stage1)
}

// GenerateReport is the short path when only the Markdown is wanted.
func (p *Pipeline) GenerateReport(form intake.IntakeForm, followUps intake.FollowUpAnswers) string {
	return p.Run(form, followUps).ReportMarkdown
}
