package repository

import (
	"context"

	"github.com/ananyev/airtravel/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	List(ctx context.Context) ([]domain.ReservationView, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// Create inserts the reservation row. The referenced passenger and flight
// must already exist; foreign keys reject anything else.
func (r *PGReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	q := querierFrom(ctx, r.db)
	return q.QueryRow(ctx, `INSERT INTO reservations (reference, flight_id, passenger_id, seat_number, travel_class, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING reservation_id, created_at`,
		reservation.Reference, reservation.FlightID, reservation.PassengerID, reservation.SeatNumber, string(reservation.TravelClass), reservation.Price).
		Scan(&reservation.ID, &reservation.CreatedAt)
}

func (r *PGReservationRepository) List(ctx context.Context) ([]domain.ReservationView, error) {
	q := querierFrom(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT r.reservation_id, r.reference, r.flight_id, r.passenger_id, r.seat_number, r.travel_class, r.price, r.created_at, p.full_name, f.flight_number
		FROM reservations r
		JOIN passengers p ON r.passenger_id = p.passenger_id
		JOIN flights f ON r.flight_id = f.flight_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]domain.ReservationView, 0)
	for rows.Next() {
		var v domain.ReservationView
		if err := rows.Scan(&v.ID, &v.Reference, &v.FlightID, &v.PassengerID, &v.SeatNumber, &v.TravelClass, &v.Price, &v.CreatedAt, &v.PassengerName, &v.FlightNumber); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
