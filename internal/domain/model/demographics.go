package model

// Demographic attribute names in report order.
const (
	AttributeGender        = "Gender"
	AttributeEducation     = "Education"
	AttributeMaritalStatus = "Marital Status"
)

// Attributes lists the demographic attributes analysed for new members.
var Attributes = []string{AttributeGender, AttributeEducation, AttributeMaritalStatus}

// Share is the proportion of records falling into one category.
type Share struct {
	Category   string
	Proportion float64
}

// Distribution is a normalized frequency distribution of one attribute.
type Distribution struct {
	Attribute string
	Shares    []Share
}

// Total sums all proportions of the distribution.
func (d Distribution) Total() float64 {
	var total float64
	for _, s := range d.Shares {
		total += s.Proportion
	}
	return total
}

// Demographics holds one distribution per attribute.
type Demographics []Distribution

// AttributeValue returns the value of a demographic attribute for the record.
func (r LoyaltyRecord) AttributeValue(attribute string) string {
	switch attribute {
	case AttributeGender:
		return r.Gender
	case AttributeEducation:
		return r.Education
	case AttributeMaritalStatus:
		return r.MaritalStatus
	default:
		return ""
	}
}
