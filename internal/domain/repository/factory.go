package repository

// Factory describes a data source able to serve both input tables.
type Factory interface {
	Loyalty() LoyaltyRepository
	Flights() FlightRepository
	Close()
}
