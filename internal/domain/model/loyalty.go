package model

// LoyaltyRecord describes a single loyalty program member.
type LoyaltyRecord struct {
	LoyaltyNumber     int64
	EnrollmentYear    int
	EnrollmentMonth   int
	CancellationYear  *int
	CancellationMonth *int
	Gender            string
	Education         string
	MaritalStatus     string
}

// Cancelled reports whether the member has a recorded cancellation.
func (r LoyaltyRecord) Cancelled() bool {
	return r.CancellationYear != nil && r.CancellationMonth != nil
}
