package usecase

import "github.com/polkiloo/loyaltycampaign/internal/domain/model"

// Summer comparison bounds.
const (
	BaselineYear   = 2017
	ComparisonYear = 2018
)

// SummerMonths are the calendar months compared between years.
var SummerMonths = []int{6, 7, 8}

// SeasonalFlights sums total flights over the summer months of the baseline
// and comparison years. A year without rows sums to zero.
func SeasonalFlights(records []model.MergedRecord) model.SeasonalFlights {
	return model.SeasonalFlights{
		BaselineYear:   BaselineYear,
		ComparisonYear: ComparisonYear,
		Baseline:       SumFlights(records, BaselineYear, SummerMonths),
		Comparison:     SumFlights(records, ComparisonYear, SummerMonths),
	}
}

// SumFlights totals flights of rows in year whose month is listed in months.
func SumFlights(records []model.MergedRecord, year int, months []int) int {
	wanted := make(map[int]bool, len(months))
	for _, m := range months {
		wanted[m] = true
	}

	total := 0
	for _, r := range records {
		if r.Year == year && wanted[r.Month] {
			total += r.TotalFlights
		}
	}
	return total
}
