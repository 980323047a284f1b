package model

import "time"

// CampaignPeriod bounds a marketing campaign.
//
// Membership in the period is decided on year and month-of-year only: the
// year must equal the start year and the month must fall within the start
// and end months, both inclusive.
type CampaignPeriod struct {
	Start time.Time
	End   time.Time
}

// Contains applies the in-range rule to a year/month pair.
func (p CampaignPeriod) Contains(year, month int) bool {
	return year == p.Start.Year() && month >= int(p.Start.Month()) && month <= int(p.End.Month())
}

// EnrolledIn reports whether the member enrolled within the period.
func (p CampaignPeriod) EnrolledIn(r LoyaltyRecord) bool {
	return p.Contains(r.EnrollmentYear, r.EnrollmentMonth)
}

// CancelledIn reports whether the member cancelled within the period.
func (p CampaignPeriod) CancelledIn(r LoyaltyRecord) bool {
	if !r.Cancelled() {
		return false
	}
	return p.Contains(*r.CancellationYear, *r.CancellationMonth)
}

// CampaignImpact aggregates membership changes attributed to a campaign.
type CampaignImpact struct {
	Gross         int
	Cancellations int
}

// Net returns gross enrollments minus cancellations.
func (i CampaignImpact) Net() int {
	return i.Gross - i.Cancellations
}
