package test

import (
	"context"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
	"github.com/polkiloo/loyaltycampaign/internal/domain/repository"
)

// LoyaltyRepositoryStub serves loyalty records from memory.
type LoyaltyRepositoryStub struct {
	Records []model.LoyaltyRecord
	Err     error
	Calls   int
}

// ListLoyalty returns configured records or error.
func (s *LoyaltyRepositoryStub) ListLoyalty(context.Context) ([]model.LoyaltyRecord, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

// FlightRepositoryStub serves flight activity from memory.
type FlightRepositoryStub struct {
	Records []model.FlightActivity
	Err     error
	Calls   int
}

// ListFlightActivity returns configured records or error.
func (s *FlightRepositoryStub) ListFlightActivity(context.Context) ([]model.FlightActivity, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

// FactoryStub bundles repository stubs and records Close calls.
type FactoryStub struct {
	LoyaltyStub LoyaltyRepositoryStub
	FlightStub  FlightRepositoryStub
	Closed      bool
}

// Loyalty returns the embedded loyalty stub.
func (f *FactoryStub) Loyalty() repository.LoyaltyRepository { return &f.LoyaltyStub }

// Flights returns the embedded flight stub.
func (f *FactoryStub) Flights() repository.FlightRepository { return &f.FlightStub }

// Close marks the factory as closed.
func (f *FactoryStub) Close() { f.Closed = true }
