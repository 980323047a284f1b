package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/loyaltycampaign/internal/domain/errors"
	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
	"github.com/polkiloo/loyaltycampaign/internal/domain/repository"
)

// Column names of the loyalty history file.
const (
	ColumnLoyaltyNumber     = "Loyalty Number"
	ColumnEnrollmentYear    = "Enrollment Year"
	ColumnEnrollmentMonth   = "Enrollment Month"
	ColumnCancellationYear  = "Cancellation Year"
	ColumnCancellationMonth = "Cancellation Month"
	ColumnGender            = "Gender"
	ColumnEducation         = "Education"
	ColumnMaritalStatus     = "Marital Status"
)

// Column names of the flight activity file.
const (
	ColumnYear         = "Year"
	ColumnMonth        = "Month"
	ColumnTotalFlights = "Total Flights"
)

// Storage serves both input tables from delimited files.
type Storage struct {
	loyaltyPath string
	flightsPath string
	logger      *slog.Logger
}

type loyaltyRepository struct {
	storage *Storage
}

type flightRepository struct {
	storage *Storage
}

// New creates file backed storage. Files are opened lazily on each listing.
func New(loyaltyPath, flightsPath string, logger *slog.Logger) *Storage {
	return &Storage{loyaltyPath: loyaltyPath, flightsPath: flightsPath, logger: logger}
}

// Loyalty returns the loyalty history repository.
func (s *Storage) Loyalty() repository.LoyaltyRepository {
	return &loyaltyRepository{storage: s}
}

// Flights returns the flight activity repository.
func (s *Storage) Flights() repository.FlightRepository {
	return &flightRepository{storage: s}
}

// Close is a no-op; files are closed after every read.
func (s *Storage) Close() {}

func (r *loyaltyRepository) ListLoyalty(ctx context.Context) ([]model.LoyaltyRecord, error) {
	var records []model.LoyaltyRecord
	err := r.storage.readTable(ctx, r.storage.loyaltyPath, []string{
		ColumnLoyaltyNumber,
		ColumnEnrollmentYear,
		ColumnEnrollmentMonth,
		ColumnCancellationYear,
		ColumnCancellationMonth,
		ColumnGender,
		ColumnEducation,
		ColumnMaritalStatus,
	}, func(row *row) error {
		rec := model.LoyaltyRecord{
			Gender:        row.text(ColumnGender),
			Education:     row.text(ColumnEducation),
			MaritalStatus: row.text(ColumnMaritalStatus),
		}
		var err error
		if rec.LoyaltyNumber, err = row.int64(ColumnLoyaltyNumber); err != nil {
			return err
		}
		if rec.EnrollmentYear, err = row.int(ColumnEnrollmentYear); err != nil {
			return err
		}
		if rec.EnrollmentMonth, err = row.int(ColumnEnrollmentMonth); err != nil {
			return err
		}
		if rec.CancellationYear, err = row.optionalInt(ColumnCancellationYear); err != nil {
			return err
		}
		if rec.CancellationMonth, err = row.optionalInt(ColumnCancellationMonth); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *flightRepository) ListFlightActivity(ctx context.Context) ([]model.FlightActivity, error) {
	var records []model.FlightActivity
	err := r.storage.readTable(ctx, r.storage.flightsPath, []string{
		ColumnLoyaltyNumber,
		ColumnYear,
		ColumnMonth,
		ColumnTotalFlights,
	}, func(row *row) error {
		var (
			rec model.FlightActivity
			err error
		)
		if rec.LoyaltyNumber, err = row.int64(ColumnLoyaltyNumber); err != nil {
			return err
		}
		if rec.Year, err = row.int(ColumnYear); err != nil {
			return err
		}
		if rec.Month, err = row.int(ColumnMonth); err != nil {
			return err
		}
		if rec.TotalFlights, err = row.int(ColumnTotalFlights); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Storage) readTable(ctx context.Context, path string, required []string, fn func(*row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := parse(ctx, f, required, fn)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	s.logger.Info("table loaded", slog.String("path", path), slog.Int("rows", n))
	return nil
}

// parse maps the header by column name and hands every data row to fn.
// Columns not listed in required are ignored.
func parse(ctx context.Context, src io.Reader, required []string, fn func(*row) error) (int, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: header: %v", domainErrors.ErrMalformedRecord, err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("%w: %q", domainErrors.ErrMissingColumn, col)
		}
	}

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("%w: %v", domainErrors.ErrMalformedRecord, err)
		}

		line, _ := reader.FieldPos(0)
		if err := fn(&row{line: line, index: index, values: values}); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

type row struct {
	line   int
	index  map[string]int
	values []string
}

func (r *row) text(col string) string {
	i := r.index[col]
	if i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

func (r *row) malformed(col, value string) error {
	return fmt.Errorf("%w: line %d column %q: %q is not an integer", domainErrors.ErrMalformedRecord, r.line, col, value)
}

func (r *row) int64(col string) (int64, error) {
	value := r.text(col)
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}
	// Spreadsheet exports write integer columns containing blanks as floats.
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, r.malformed(col, value)
	}
	return int64(f), nil
}

func (r *row) int(col string) (int, error) {
	n, err := r.int64(col)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, r.malformed(col, r.text(col))
	}
	return int(n), nil
}

func (r *row) optionalInt(col string) (*int, error) {
	value := r.text(col)
	if value == "" || strings.EqualFold(value, "nan") {
		return nil, nil
	}
	n, err := r.int(col)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
