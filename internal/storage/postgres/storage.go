package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
	"github.com/polkiloo/loyaltycampaign/internal/domain/repository"
)

type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage serves both input tables from PostgreSQL. It never writes.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type loyaltyRepository struct {
	storage *Storage
}

type flightRepository struct {
	storage *Storage
}

// New connects to the database and verifies it is reachable.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.HealthCheck(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Loyalty() repository.LoyaltyRepository {
	return &loyaltyRepository{storage: s}
}

func (s *Storage) Flights() repository.FlightRepository {
	return &flightRepository{storage: s}
}

// --- LoyaltyRepository implementation ---

func (r *loyaltyRepository) ListLoyalty(ctx context.Context) ([]model.LoyaltyRecord, error) {
	const query = `SELECT loyalty_number, enrollment_year, enrollment_month,
                          cancellation_year, cancellation_month,
                          gender, education, marital_status
                   FROM customer_loyalty_history
                   ORDER BY loyalty_number`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query loyalty history: %w", err)
	}
	defer rows.Close()

	var result []model.LoyaltyRecord
	for rows.Next() {
		var (
			rec         model.LoyaltyRecord
			enrollYear  int32
			enrollMonth int32
			cancelYear  *int32
			cancelMonth *int32
		)
		if err := rows.Scan(&rec.LoyaltyNumber, &enrollYear, &enrollMonth, &cancelYear, &cancelMonth, &rec.Gender, &rec.Education, &rec.MaritalStatus); err != nil {
			return nil, fmt.Errorf("scan loyalty history: %w", err)
		}
		rec.EnrollmentYear = int(enrollYear)
		rec.EnrollmentMonth = int(enrollMonth)
		rec.CancellationYear = optionalInt(cancelYear)
		rec.CancellationMonth = optionalInt(cancelMonth)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read loyalty history: %w", err)
	}

	r.storage.logger.Info("table loaded", slog.String("table", "customer_loyalty_history"), slog.Int("rows", len(result)))
	return result, nil
}

// --- FlightRepository implementation ---

func (r *flightRepository) ListFlightActivity(ctx context.Context) ([]model.FlightActivity, error) {
	const query = `SELECT loyalty_number, year, month, total_flights
                   FROM customer_flight_activity
                   ORDER BY loyalty_number, year, month`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query flight activity: %w", err)
	}
	defer rows.Close()

	var result []model.FlightActivity
	for rows.Next() {
		var (
			rec                  model.FlightActivity
			year, month, flights int32
		)
		if err := rows.Scan(&rec.LoyaltyNumber, &year, &month, &flights); err != nil {
			return nil, fmt.Errorf("scan flight activity: %w", err)
		}
		rec.Year = int(year)
		rec.Month = int(month)
		rec.TotalFlights = int(flights)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read flight activity: %w", err)
	}

	r.storage.logger.Info("table loaded", slog.String("table", "customer_flight_activity"), slog.Int("rows", len(result)))
	return result, nil
}

func optionalInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
