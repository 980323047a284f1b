package test

import (
	"time"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// CampaignPeriod returns the default February to April 2018 campaign.
func CampaignPeriod() model.CampaignPeriod {
	return model.CampaignPeriod{
		Start: time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2018, time.April, 30, 0, 0, 0, 0, time.UTC),
	}
}

// Member builds a loyalty record enrolled at the given year and month.
func Member(id int64, year, month int, gender, education, marital string) model.LoyaltyRecord {
	return model.LoyaltyRecord{
		LoyaltyNumber:   id,
		EnrollmentYear:  year,
		EnrollmentMonth: month,
		Gender:          gender,
		Education:       education,
		MaritalStatus:   marital,
	}
}

// Cancel returns a copy of r cancelled at the given year and month.
func Cancel(r model.LoyaltyRecord, year, month int) model.LoyaltyRecord {
	r.CancellationYear = IntPtr(year)
	r.CancellationMonth = IntPtr(month)
	return r
}

// Flight builds a flight activity row.
func Flight(id int64, year, month, total int) model.FlightActivity {
	return model.FlightActivity{LoyaltyNumber: id, Year: year, Month: month, TotalFlights: total}
}

// Merged joins r with one activity period.
func Merged(r model.LoyaltyRecord, year, month, total int) model.MergedRecord {
	return model.MergedRecord{LoyaltyRecord: r, Year: year, Month: month, TotalFlights: total}
}
