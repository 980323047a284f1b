package model

// FlightActivity holds flights taken by a member during one calendar month.
type FlightActivity struct {
	LoyaltyNumber int64
	Year          int
	Month         int
	TotalFlights  int
}

// MergedRecord pairs member attributes with one activity period.
type MergedRecord struct {
	LoyaltyRecord
	Year         int
	Month        int
	TotalFlights int
}
