package usecase

import (
	"testing"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
	testhelpers "github.com/polkiloo/loyaltycampaign/internal/test"
)

func TestCampaignImpactScenario(t *testing.T) {
	feb := testhelpers.Member(1, 2018, 2, "Female", "Bachelor", "Married")
	mar := testhelpers.Cancel(testhelpers.Member(2, 2018, 3, "Male", "College", "Single"), 2018, 3)
	records := Merge(
		[]model.LoyaltyRecord{feb, mar},
		[]model.FlightActivity{
			testhelpers.Flight(1, 2018, 2, 1),
			testhelpers.Flight(1, 2018, 3, 2),
			testhelpers.Flight(2, 2018, 3, 1),
			testhelpers.Flight(2, 2018, 4, 1),
		},
	)

	impact := CampaignImpact(records, testhelpers.CampaignPeriod())
	if impact.Gross != 2 {
		t.Fatalf("expected gross 2, got %d", impact.Gross)
	}
	if impact.Net() != 1 {
		t.Fatalf("expected net 1, got %d", impact.Net())
	}
}

func TestCampaignImpactIgnoresOutOfRange(t *testing.T) {
	records := []model.MergedRecord{
		testhelpers.Merged(testhelpers.Member(1, 2018, 1, "", "", ""), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(2, 2018, 5, "", "", ""), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(3, 2017, 3, "", "", ""), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Cancel(testhelpers.Member(4, 2018, 4, "", "", ""), 2018, 6), 2018, 6, 1),
	}

	impact := CampaignImpact(records, testhelpers.CampaignPeriod())
	if impact.Gross != 1 || impact.Cancellations != 0 {
		t.Fatalf("unexpected impact %+v", impact)
	}
}

func TestCampaignImpactCountsEarlierMembersCancelling(t *testing.T) {
	records := []model.MergedRecord{
		testhelpers.Merged(testhelpers.Cancel(testhelpers.Member(1, 2016, 7, "", "", ""), 2018, 2), 2017, 6, 1),
	}

	impact := CampaignImpact(records, testhelpers.CampaignPeriod())
	if impact.Gross != 0 || impact.Cancellations != 1 || impact.Net() != -1 {
		t.Fatalf("unexpected impact %+v", impact)
	}
	if impact.Net() > impact.Gross {
		t.Fatal("net must not exceed gross")
	}
}

func TestEnrolledDuring(t *testing.T) {
	records := []model.MergedRecord{
		testhelpers.Merged(testhelpers.Member(1, 2018, 2, "", "", ""), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(1, 2018, 2, "", "", ""), 2018, 7, 1),
		testhelpers.Merged(testhelpers.Member(2, 2018, 8, "", "", ""), 2018, 7, 1),
	}
	if got := EnrolledDuring(records, testhelpers.CampaignPeriod()); len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
}
