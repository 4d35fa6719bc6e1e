package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ananyev/airtravel/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, from, to, date string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	ReserveSeat(ctx context.Context, flightID int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.flight_id, f.airline_id, COALESCE(a.name, ''), COALESCE(a.code, ''), f.flight_number, f.departure_airport, f.arrival_airport, f.departure_datetime, f.arrival_datetime, f.total_seats, f.seats_available, f.base_price`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	q := querierFrom(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+flightColumns+` FROM flights f LEFT JOIN airlines a ON f.airline_id = a.airline_id ORDER BY f.departure_datetime`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) Search(ctx context.Context, from, to, date string) ([]domain.Flight, error) {
	query, args := buildFlightSearch(from, to, date)
	q := querierFrom(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

// buildFlightSearch assembles the WHERE clause from whichever of the three
// filters are present. date matches the departure day (YYYY-MM-DD).
func buildFlightSearch(from, to, date string) (string, []any) {
	query := `SELECT ` + flightColumns + ` FROM flights f LEFT JOIN airlines a ON f.airline_id = a.airline_id WHERE 1=1`
	args := make([]any, 0, 3)
	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(" AND f.departure_airport = $%d", len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(" AND f.arrival_airport = $%d", len(args))
	}
	if date != "" {
		args = append(args, date)
		query += fmt.Sprintf(" AND f.departure_datetime::date = $%d", len(args))
	}
	query += " ORDER BY f.departure_datetime"
	return query, args
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	q := querierFrom(ctx, r.db)
	row := q.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights f LEFT JOIN airlines a ON f.airline_id = a.airline_id WHERE f.flight_id=$1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ReserveSeat locks the flight row, checks the remaining-seat counter and
// decrements it by exactly one. It must run inside a unit of work: the row
// lock taken by FOR UPDATE is held until that transaction commits or rolls
// back, so a concurrent booking for the same flight cannot observe the
// pre-decrement value. Bookings on other flights are unaffected.
func (r *PGFlightRepository) ReserveSeat(ctx context.Context, flightID int64) error {
	q := querierFrom(ctx, r.db)

	var available int
	err := q.QueryRow(ctx, `SELECT seats_available FROM flights WHERE flight_id=$1 FOR UPDATE`, flightID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrFlightNotFound
	}
	if err != nil {
		return err
	}
	if available <= 0 {
		return domain.ErrSoldOut
	}

	_, err = q.Exec(ctx, `UPDATE flights SET seats_available = seats_available - 1 WHERE flight_id=$1`, flightID)
	return err
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.AirlineID, &f.AirlineName, &f.AirlineCode, &f.FlightNumber, &f.DepartureAirport, &f.ArrivalAirport, &f.DepartureTime, &f.ArrivalTime, &f.TotalSeats, &f.SeatsAvailable, &f.BasePrice)
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
