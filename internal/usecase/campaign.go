package usecase

import "github.com/polkiloo/loyaltycampaign/internal/domain/model"

// EnrolledDuring returns merged rows whose member enrolled within the period.
func EnrolledDuring(records []model.MergedRecord, period model.CampaignPeriod) []model.MergedRecord {
	var out []model.MergedRecord
	for _, r := range records {
		if period.EnrolledIn(r.LoyaltyRecord) {
			out = append(out, r)
		}
	}
	return out
}

// CampaignImpact counts distinct members enrolled and cancelled within the period.
func CampaignImpact(records []model.MergedRecord, period model.CampaignPeriod) model.CampaignImpact {
	enrolled := make(map[int64]struct{})
	cancelled := make(map[int64]struct{})
	for _, r := range records {
		if period.EnrolledIn(r.LoyaltyRecord) {
			enrolled[r.LoyaltyNumber] = struct{}{}
		}
		if period.CancelledIn(r.LoyaltyRecord) {
			cancelled[r.LoyaltyNumber] = struct{}{}
		}
	}
	return model.CampaignImpact{Gross: len(enrolled), Cancellations: len(cancelled)}
}
