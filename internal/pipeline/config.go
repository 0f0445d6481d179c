package pipeline

// Pricing holds the service price points in whole dollars.
type Pricing struct {
	PlanOnly       int
	DoneForYouLow  int
	DoneForYouHigh int
	OngoingLow     int
	OngoingHigh    int
}

// Links holds the outbound URLs embedded in reports.
type Links struct {
	Consultation       string
	PurchaseDFY        string
	PurchaseFull       string
	FreeCall           string
	SplitSheetTemplate string
}

// Config parameterizes the report's commercial content.
type Config struct {
	Pricing Pricing
	Links   Links
}

// DefaultConfig returns the current published pricing and links.
func DefaultConfig() Config {
	return Config{
		Pricing: Pricing{
			PlanOnly:       49,
			DoneForYouLow:  399,
			DoneForYouHigh: 599,
			OngoingLow:     99,
			OngoingHigh:    149,
		},
		Links: Links{
			Consultation:       "https://calendly.com/theroyaltyguy/consultation",
			PurchaseDFY:        "https://theroyaltyguy.com/done-for-you",
			PurchaseFull:       "https://theroyaltyguy.com/full-service",
			FreeCall:           "https://calendly.com/theroyaltyguy/free-call",
			SplitSheetTemplate: "https://theroyaltyguy.com/split-sheet",
		},
	}
}
