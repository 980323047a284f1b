package usecase

import (
	"math"
	"testing"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
	testhelpers "github.com/polkiloo/loyaltycampaign/internal/test"
)

func TestDemographicsDistributions(t *testing.T) {
	records := []model.MergedRecord{
		testhelpers.Merged(testhelpers.Member(1, 2018, 2, "Female", "Bachelor", "Married"), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(2, 2018, 3, "Male", "College", "Single"), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(3, 2018, 4, "Female", "Bachelor", "Divorced"), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(4, 2018, 4, "Female", "Master", "Married"), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(5, 2017, 3, "Male", "Doctor", "Single"), 2018, 6, 1),
	}

	demo := Demographics(records, testhelpers.CampaignPeriod())
	if len(demo) != len(model.Attributes) {
		t.Fatalf("expected %d distributions, got %d", len(model.Attributes), len(demo))
	}

	for i, dist := range demo {
		if dist.Attribute != model.Attributes[i] {
			t.Fatalf("expected attribute %q, got %q", model.Attributes[i], dist.Attribute)
		}
		if math.Abs(dist.Total()-1) > 1e-9 {
			t.Fatalf("%s proportions sum to %v", dist.Attribute, dist.Total())
		}
	}

	gender := demo[0]
	if len(gender.Shares) != 2 {
		t.Fatalf("expected 2 gender categories, got %+v", gender.Shares)
	}
	if gender.Shares[0].Category != "Female" || gender.Shares[0].Proportion != 0.75 {
		t.Fatalf("unexpected top gender share %+v", gender.Shares[0])
	}

	education := demo[1]
	for _, s := range education.Shares {
		if s.Category == "Doctor" {
			t.Fatal("out-of-range enrollment must not appear")
		}
	}
	if education.Shares[1].Category != "College" || education.Shares[2].Category != "Master" {
		t.Fatalf("expected ties ordered by category, got %+v", education.Shares)
	}
}

func TestDemographicsEmptySubset(t *testing.T) {
	records := []model.MergedRecord{
		testhelpers.Merged(testhelpers.Member(1, 2016, 2, "Female", "Bachelor", "Married"), 2018, 6, 1),
	}

	for _, dist := range Demographics(records, testhelpers.CampaignPeriod()) {
		if len(dist.Shares) != 0 {
			t.Fatalf("expected empty distribution for %s, got %+v", dist.Attribute, dist.Shares)
		}
	}
}

func TestDistributionWeightsActivityRows(t *testing.T) {
	frequent := testhelpers.Member(1, 2018, 2, "Female", "Bachelor", "Married")
	records := []model.MergedRecord{
		testhelpers.Merged(frequent, 2018, 6, 1),
		testhelpers.Merged(frequent, 2018, 7, 1),
		testhelpers.Merged(frequent, 2018, 8, 1),
		testhelpers.Merged(testhelpers.Member(2, 2018, 3, "Male", "College", "Single"), 2018, 6, 1),
	}

	dist := Distribution(records, model.AttributeGender)
	if dist.Shares[0].Category != "Female" || dist.Shares[0].Proportion != 0.75 {
		t.Fatalf("unexpected distribution %+v", dist.Shares)
	}
}

func TestDistributionSkipsBlankValues(t *testing.T) {
	records := []model.MergedRecord{
		testhelpers.Merged(testhelpers.Member(1, 2018, 2, "Female", "", "Married"), 2018, 6, 1),
		testhelpers.Merged(testhelpers.Member(2, 2018, 3, "Male", "College", "Single"), 2018, 6, 1),
	}

	dist := Distribution(records, model.AttributeEducation)
	if len(dist.Shares) != 1 {
		t.Fatalf("expected only non-blank categories, got %+v", dist.Shares)
	}
	if dist.Shares[0].Category != "College" || dist.Shares[0].Proportion != 1 {
		t.Fatalf("unexpected share %+v", dist.Shares[0])
	}
}

func TestDistributionAllBlankIsEmpty(t *testing.T) {
	records := []model.MergedRecord{
		testhelpers.Merged(testhelpers.Member(1, 2018, 2, "Female", "", "Married"), 2018, 6, 1),
	}

	dist := Distribution(records, model.AttributeEducation)
	if dist.Attribute != model.AttributeEducation || len(dist.Shares) != 0 {
		t.Fatalf("expected empty distribution, got %+v", dist)
	}
}
