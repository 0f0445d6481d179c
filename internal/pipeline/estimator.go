package pipeline

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/theroyaltyguy/royalty-health/internal/intake"
)

// Conversion tables mapping intake enum values onto numbers the formulas
// can use. Fallbacks cover unanswered or unexpected values.

var incomeMidpoints = map[intake.MonthlyIncome]float64{
	intake.Income0To100:      50,
	intake.Income100To500:    300,
	intake.Income500To1000:   750,
	intake.Income1000To3000:  2000,
	intake.Income3000To10000: 6500,
	intake.Income10000Plus:   12000, // cap for estimates
}

var catalogCounts = map[intake.CatalogSize]float64{
	intake.Catalog1To10:   5,
	intake.Catalog11To25:  18,
	intake.Catalog26To50:  38,
	intake.Catalog51To100: 75,
	intake.Catalog100Plus: 120,
}

var cowriterCountValues = map[intake.CowriterCount]float64{
	intake.Cowriters1To5:   3,
	intake.Cowriters6To15:  10,
	intake.Cowriters16To30: 23,
}

var songsByOthersValues = map[intake.SongsByOthersCount]float64{
	intake.Others1To3:   2,
	intake.Others4To10:  7,
	intake.Others10Plus: 15,
}

var monthsSinceStartValues = map[intake.TimeReleasing]float64{
	intake.TimeLessThan6Months: 3,
	intake.Time6MonthsTo2Years: 15,
	intake.Time2To5Years:       42,
	intake.Time5To10Years:      90,
	intake.Time10PlusYears:     144,
}

// Genre is not asked on the form, so every estimate uses the neutral
// multiplier. Kept as a named value so a genre question can feed it later.
const genreMultiplier = 1.0

// Base task times in minutes for the DIY estimate.
const (
	timeJoinPRO                = 20
	timeRegisterWorksPerSong   = 5
	timeJoinMLC                = 30
	timeRegisterMLCPerSong     = 3
	timeJoinSoundExchange      = 20
	timeDocumentSplitsPerSong  = 15
	timeCreatePublishingEntity = 15
)

func monthsSinceStart(t intake.TimeReleasing) float64 {
	if m, ok := monthsSinceStartValues[t]; ok {
		return m
	}
	return 12
}

// mlcLaunch is when the MLC started collecting; nothing accrued before it.
var mlcLaunch = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

func monthsSinceMLCLaunch(now time.Time) float64 {
	months := (now.Year()-mlcLaunch.Year())*12 + int(now.Month()-mlcLaunch.Month())
	return float64(months)
}

func round(v float64) int {
	return int(math.Round(v))
}

// CalculateEstimates runs every estimation formula against the submission.
// The clock only feeds the MLC months-missed cap; everything else is a
// pure function of the answers and detected gotchas.
func CalculateEstimates(form intake.IntakeForm, followUps intake.FollowUpAnswers, gotchas []TriggeredGotcha, now time.Time) Calculations {
	monthlyIncome, ok := incomeMidpoints[form.MonthlyIncome]
	if !ok {
		monthlyIncome = 300
	}
	catalogSize, ok := catalogCounts[form.CatalogSize]
	if !ok {
		catalogSize = 10
	}
	sinceStart := monthsSinceStart(form.TimeReleasing)
	sinceMLC := monthsSinceMLCLaunch(now)

	// MLC mechanicals.
	mlcApplicable := form.MLC != "yes" && !form.HasRealPublishingAdmin()
	mlcMonthly := monthlyIncome * 0.12
	mlcMonthsMissed := math.Min(sinceStart, sinceMLC)
	mlcTotal := mlcMonthly * mlcMonthsMissed

	var mlc Estimate
	if mlcApplicable {
		mlc = Estimate{
			Monthly:      round(mlcMonthly),
			TotalLow:     round(mlcTotal * 0.7),
			TotalHigh:    round(mlcTotal * 1.3),
			MonthsMissed: int(mlcMonthsMissed),
			Applicable:   true,
		}
	}

	// SoundExchange, absent entirely. Months capped at five years.
	seApplicable := form.SoundExchange != "yes"
	seMonthly := monthlyIncome * 0.03 * genreMultiplier
	seMonthsMissed := math.Min(sinceStart, 60)
	seTotal := seMonthly * seMonthsMissed

	var soundExchange Estimate
	if seApplicable {
		soundExchange = Estimate{
			Monthly:      round(seMonthly),
			TotalLow:     round(seTotal * 0.5),
			TotalHigh:    round(seTotal * 1.5),
			MonthsMissed: int(seMonthsMissed),
			Applicable:   true,
		}
	}

	// SoundExchange registered, but only one side. The missing side is
	// worth about as much as what they already collect.
	seMissingSideApplicable := form.SoundExchange == "yes" &&
		(followUps.SERegistrationType == intake.SERightsOwnerOnly ||
			followUps.SERegistrationType == intake.SEFeaturedArtistOnly ||
			followUps.SERegistrationType == intake.SENotSure)
	seCurrentMonthly := monthlyIncome * 0.03 * genreMultiplier * 0.5
	seMissingSideMonthsMissed := math.Min(sinceStart, 60)
	seMissingSideTotal := seCurrentMonthly * seMissingSideMonthsMissed

	soundExchangeMissingSide := Estimate{
		Note: "Only applies if registered but only on one side",
	}
	if seMissingSideApplicable {
		soundExchangeMissingSide.Monthly = round(seCurrentMonthly)
		soundExchangeMissingSide.TotalLow = round(seMissingSideTotal * 0.5)
		soundExchangeMissingSide.TotalHigh = round(seMissingSideTotal * 1.5)
		soundExchangeMissingSide.MonthsMissed = int(seMissingSideMonthsMissed)
		soundExchangeMissingSide.Applicable = true
	}

	// PRO performance royalties, no membership at all.
	proApplicable := form.PRO == intake.PRONone || form.PRO == intake.PRONotSure
	proMonthly := monthlyIncome * 0.04
	proMonthsMissed := math.Min(sinceStart, 60)
	proTotal := proMonthly * proMonthsMissed

	var pro Estimate
	if proApplicable {
		pro = Estimate{
			Monthly:      round(proMonthly),
			TotalLow:     round(proTotal * 0.5),
			TotalHigh:    round(proTotal * 2.0),
			MonthsMissed: int(proMonthsMissed),
			Applicable:   true,
		}
	}

	// PRO member but no publishing entity: the publisher half of the
	// performance royalties goes uncollected.
	proPublisherApplicable := form.HasRealPRO() &&
		!form.HasRealPublishingAdmin() &&
		followUps.ProPublishingEntity != intake.EntityHave
	proPublisherMonthly := proMonthly
	proPublisherMonthsMissed := math.Min(sinceStart, 60)
	proPublisherTotal := proPublisherMonthly * proPublisherMonthsMissed

	proPublisherShare := Estimate{
		Note: "Only applies if PRO member but no publishing entity",
	}
	if proPublisherApplicable {
		proPublisherShare.Monthly = round(proPublisherMonthly)
		proPublisherShare.TotalLow = round(proPublisherTotal * 0.5)
		proPublisherShare.TotalHigh = round(proPublisherTotal * 2.0)
		proPublisherShare.MonthsMissed = int(proPublisherMonthsMissed)
		proPublisherShare.Applicable = true
	}

	// Songwriter royalties on other artists' recordings.
	songsByOthersApplicable := form.SongsByOthers == "yes" &&
		(followUps.RegisteredOnOthers == intake.OnOthersNone ||
			followUps.RegisteredOnOthers == intake.OnOthersNotSure ||
			followUps.RegisteredOnOthers == intake.OnOthersSome)
	songsByOthersCount, ok := songsByOthersValues[followUps.SongsByOthersCount]
	if !ok {
		songsByOthersCount = 2
	}
	const perSongMonthly = 25
	songsByOthersMonthly := songsByOthersCount * perSongMonthly
	const songsByOthersMonthsMissed = 24
	songsByOthersTotal := songsByOthersMonthly * songsByOthersMonthsMissed

	var songsByOthers Estimate
	if songsByOthersApplicable {
		songsByOthers = Estimate{
			Monthly:      round(songsByOthersMonthly),
			TotalLow:     round(songsByOthersTotal * 0.3),
			TotalHigh:    round(songsByOthersTotal * 3.0),
			MonthsMissed: songsByOthersMonthsMissed,
			Applicable:   true,
		}
	}

	// Totals are a plain sum; categories can overlap, so this reads as
	// "up to" in the report.
	estimates := AllEstimates{
		MLC:                      mlc,
		SoundExchange:            soundExchange,
		SoundExchangeMissingSide: soundExchangeMissingSide,
		PRO:                      pro,
		PROPublisherShare:        proPublisherShare,
		SongsByOthers:            songsByOthers,
		Total: TotalEstimate{
			MonthlyGap: mlc.Monthly + soundExchange.Monthly + soundExchangeMissingSide.Monthly +
				pro.Monthly + proPublisherShare.Monthly + songsByOthers.Monthly,
			TotalLow: mlc.TotalLow + soundExchange.TotalLow + soundExchangeMissingSide.TotalLow +
				pro.TotalLow + proPublisherShare.TotalLow + songsByOthers.TotalLow,
			TotalHigh: mlc.TotalHigh + soundExchange.TotalHigh + soundExchangeMissingSide.TotalHigh +
				pro.TotalHigh + proPublisherShare.TotalHigh + songsByOthers.TotalHigh,
		},
	}

	// Health score, 0-10.
	score := 0
	if form.Distributor != intake.DistributorNone {
		score += 2
	}
	if form.HasRealPRO() {
		score += 2
		// Works registered: unknown, assume yes.
		score++
	}
	if form.MLC == "yes" || form.HasRealPublishingAdmin() {
		score += 2
	}
	if form.SoundExchange == "yes" {
		score += 2
	}
	// Estate and dispute flags already block the plan, so they don't
	// also drag the score down.
	hasCriticalIssues := false
	for _, g := range gotchas {
		if g.Severity == SeverityCritical && g.ID != "estate_inherited" && g.ID != "legal_disputes" {
			hasCriticalIssues = true
			break
		}
	}
	if !hasCriticalIssues {
		score++
	}
	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}

	var scoreLabel ScoreLabel
	switch {
	case score >= 9:
		scoreLabel = ScoreExcellent
	case score >= 7:
		scoreLabel = ScoreGood
	case score >= 5:
		scoreLabel = ScoreFair
	case score >= 3:
		scoreLabel = ScorePoor
	default:
		scoreLabel = ScoreCritical
	}

	// Complexity points.
	complexityPoints := 0
	if form.CatalogSize == intake.Catalog51To100 || form.CatalogSize == intake.Catalog100Plus {
		complexityPoints++
	}
	if form.CatalogSize == intake.Catalog100Plus {
		complexityPoints++
	}
	if form.HasCowriters == "yes" {
		complexityPoints++
		if followUps.CowriterCount == intake.Cowriters16To30 || followUps.CowriterCount == intake.CowritersMostOrAll {
			complexityPoints++
		}
		if followUps.SplitSheetsStatus == intake.SplitsNone || followUps.SplitSheetsStatus == intake.SplitsWhatIs {
			complexityPoints++
		}
	}
	if form.ChangedNames == "yes" {
		complexityPoints++
		if previousNameCountForComplexity(followUps.PreviousNames)+1 > 2 {
			complexityPoints++
		}
	}
	if form.PreviousAdmin == "yes" {
		complexityPoints++
		if followUps.AdminCancelled != intake.CancelledYes ||
			followUps.PreviousAdminStatus == intake.PrevAdminNotSure {
			complexityPoints += 2
		}
	}
	if form.SongsByOthers == "yes" {
		complexityPoints++
	}
	if form.MonthlyIncome == intake.Income3000To10000 || form.MonthlyIncome == intake.Income10000Plus {
		complexityPoints++
	}
	anyCritical := false
	for _, g := range gotchas {
		if g.BlocksDIY {
			anyCritical = true
			break
		}
	}
	if anyCritical {
		complexityPoints += 5
	}

	var complexity ComplexityLevel
	switch {
	case complexityPoints >= 5:
		complexity = ComplexityComplex
	case complexityPoints >= 2:
		complexity = ComplexityModerate
	default:
		complexity = ComplexitySimple
	}

	// Recommendation.
	var recommendation Recommendation
	blockDIY := false
	switch {
	case anyCritical:
		recommendation = RecommendConsultation
		blockDIY = true
	case complexity == ComplexityComplex || form.MonthlyIncome == intake.Income10000Plus:
		recommendation = RecommendDFY
	case complexity == ComplexityModerate:
		recommendation = RecommendDIYOrDFY
	default:
		recommendation = RecommendDIY
	}

	// DIY time in minutes.
	diyMinutes := 0.0
	if proApplicable || proPublisherApplicable {
		diyMinutes += timeJoinPRO + catalogSize*timeRegisterWorksPerSong
	}
	if proPublisherApplicable {
		diyMinutes += timeCreatePublishingEntity
	}
	if mlcApplicable {
		diyMinutes += timeJoinMLC + catalogSize*timeRegisterMLCPerSong
	}
	if seApplicable || seMissingSideApplicable {
		diyMinutes += timeJoinSoundExchange
	}
	if form.HasCowriters == "yes" {
		var cowriterSongs float64
		if followUps.CowriterCount == intake.CowritersMostOrAll {
			cowriterSongs = math.Round(catalogSize * 0.8)
		} else if v, ok := cowriterCountValues[followUps.CowriterCount]; ok {
			cowriterSongs = v
		} else {
			cowriterSongs = 3
		}
		diyMinutes += cowriterSongs * timeDocumentSplitsPerSong
	}

	hoursLow := round(diyMinutes / 60 * 0.8)
	hoursHigh := round(diyMinutes / 60 * 1.2)
	if hoursLow < 1 {
		hoursLow = 1
	}
	if hoursHigh < 2 {
		hoursHigh = 2
	}

	return Calculations{
		Estimates:        estimates,
		Score:            score,
		ScoreLabel:       scoreLabel,
		Complexity:       complexity,
		ComplexityPoints: complexityPoints,
		Recommendation:   recommendation,
		DIYTimeHoursLow:  hoursLow,
		DIYTimeHoursHigh: hoursHigh,
		BlockDIY:         blockDIY,
	}
}

// previousNameCountForComplexity counts comma-separated prior names for the
// complexity formula, where an empty answer contributes zero.
func previousNameCountForComplexity(names string) int {
	if names == "" {
		return 0
	}
	count := 1
	for _, r := range names {
		if r == ',' {
			count++
		}
	}
	return count
}

// FormatMoney renders a whole-dollar amount with comma grouping.
func FormatMoney(amount int) string {
	return "$" + humanize.Comma(int64(amount))
}

// FormatEstimateRange renders a low/high dollar range.
func FormatEstimateRange(low, high int) string {
	return FormatMoney(low) + " - " + FormatMoney(high)
}
