package usecase

import (
	"sort"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

// Demographics computes the normalized distribution of every demographic
// attribute over rows enrolled within the period.
func Demographics(records []model.MergedRecord, period model.CampaignPeriod) model.Demographics {
	subset := EnrolledDuring(records, period)
	result := make(model.Demographics, 0, len(model.Attributes))
	for _, attr := range model.Attributes {
		result = append(result, Distribution(subset, attr))
	}
	return result
}

// Distribution returns category proportions of one attribute, largest first.
// Equal proportions are ordered by category name. Blank values belong to no
// category and are left out of the denominator.
func Distribution(records []model.MergedRecord, attribute string) model.Distribution {
	dist := model.Distribution{Attribute: attribute}

	counts := make(map[string]int)
	known := 0
	for _, r := range records {
		value := r.AttributeValue(attribute)
		if value == "" {
			continue
		}
		counts[value]++
		known++
	}
	if known == 0 {
		return dist
	}

	total := float64(known)
	dist.Shares = make([]model.Share, 0, len(counts))
	for category, n := range counts {
		dist.Shares = append(dist.Shares, model.Share{Category: category, Proportion: float64(n) / total})
	}
	sort.Slice(dist.Shares, func(i, j int) bool {
		a, b := dist.Shares[i], dist.Shares[j]
		if a.Proportion != b.Proportion {
			return a.Proportion > b.Proportion
		}
		return a.Category < b.Category
	})
	return dist
}
