package repository

import (
	"context"

	"github.com/ananyev/airtravel/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *domain.Passenger) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	q := querierFrom(ctx, r.db)
	return q.QueryRow(ctx, `INSERT INTO passengers (full_name, age, gender, email)
		VALUES ($1, $2, $3, $4)
		RETURNING passenger_id`, passenger.FullName, passenger.Age, passenger.Gender, passenger.Email).
		Scan(&passenger.ID)
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
