package model

// SeasonalFlights compares summer flight volume between two years.
type SeasonalFlights struct {
	BaselineYear   int
	ComparisonYear int
	Baseline       int
	Comparison     int
}

// Delta returns the change from the baseline year to the comparison year.
func (s SeasonalFlights) Delta() int {
	return s.Comparison - s.Baseline
}

// Report bundles the outputs of all analyses.
type Report struct {
	Period       CampaignPeriod
	Impact       CampaignImpact
	Demographics Demographics
	Flights      SeasonalFlights
}
