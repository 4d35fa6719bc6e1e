package booking

import (
	"context"
	"sync"
	"time"

	"github.com/ananyev/airtravel/internal/domain"
	"github.com/ananyev/airtravel/internal/repository"
)

// memBackend is an in-memory stand-in for the database used by the
// concurrency tests. WithinTransaction holds the lock for the whole unit of
// work, mirroring the row lock the real ledger takes, and restores a
// snapshot when the function fails, mirroring rollback.
type memBackend struct {
	mu              sync.Mutex
	seats           map[int64]int
	nextPassengerID int64
	passengers      map[int64]domain.Passenger
	nextResID       int64
	reservations    []domain.Reservation
}

func newMemBackend(seats map[int64]int) *memBackend {
	copied := make(map[int64]int, len(seats))
	for id, n := range seats {
		copied[id] = n
	}
	return &memBackend{
		seats:      copied,
		passengers: make(map[int64]domain.Passenger),
	}
}

type memSnapshot struct {
	seats           map[int64]int
	nextPassengerID int64
	passengers      map[int64]domain.Passenger
	nextResID       int64
	reservations    []domain.Reservation
}

func (b *memBackend) snapshot() memSnapshot {
	seats := make(map[int64]int, len(b.seats))
	for id, n := range b.seats {
		seats[id] = n
	}
	passengers := make(map[int64]domain.Passenger, len(b.passengers))
	for id, p := range b.passengers {
		passengers[id] = p
	}
	reservations := make([]domain.Reservation, len(b.reservations))
	copy(reservations, b.reservations)
	return memSnapshot{
		seats:           seats,
		nextPassengerID: b.nextPassengerID,
		passengers:      passengers,
		nextResID:       b.nextResID,
		reservations:    reservations,
	}
}

func (b *memBackend) restore(s memSnapshot) {
	b.seats = s.seats
	b.nextPassengerID = s.nextPassengerID
	b.passengers = s.passengers
	b.nextResID = s.nextResID
	b.reservations = s.reservations
}

func (b *memBackend) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := b.snapshot()
	if err := fn(ctx); err != nil {
		b.restore(before)
		return err
	}
	return nil
}

func (b *memBackend) SeatsAvailable(flightID int64) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seats[flightID]
}

func (b *memBackend) ReservationCount(flightID int64) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.reservations {
		if r.FlightID == flightID {
			n++
		}
	}
	return n
}

func (b *memBackend) PassengerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.passengers)
}

// The repo adapters below run only inside WithinTransaction, so the lock is
// already held.

type memPassengers struct{ b *memBackend }

func (b *memBackend) Passengers() repository.PassengerRepository { return memPassengers{b} }

func (m memPassengers) Create(ctx context.Context, passenger *domain.Passenger) error {
	m.b.nextPassengerID++
	passenger.ID = m.b.nextPassengerID
	m.b.passengers[passenger.ID] = *passenger
	return nil
}

type memFlights struct{ b *memBackend }

func (b *memBackend) Flights() repository.FlightRepository { return memFlights{b} }

func (m memFlights) List(ctx context.Context) ([]domain.Flight, error) { return nil, nil }

func (m memFlights) Search(ctx context.Context, from, to, date string) ([]domain.Flight, error) {
	return nil, nil
}

func (m memFlights) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if _, ok := m.b.seats[id]; !ok {
		return nil, domain.ErrFlightNotFound
	}
	return &domain.Flight{ID: id, SeatsAvailable: m.b.seats[id]}, nil
}

func (m memFlights) ReserveSeat(ctx context.Context, flightID int64) error {
	available, ok := m.b.seats[flightID]
	if !ok {
		return domain.ErrFlightNotFound
	}
	if available <= 0 {
		return domain.ErrSoldOut
	}
	m.b.seats[flightID] = available - 1
	return nil
}

type memReservations struct{ b *memBackend }

func (b *memBackend) Reservations() repository.ReservationRepository { return memReservations{b} }

func (m memReservations) Create(ctx context.Context, reservation *domain.Reservation) error {
	m.b.nextResID++
	reservation.ID = m.b.nextResID
	reservation.CreatedAt = time.Now()
	m.b.reservations = append(m.b.reservations, *reservation)
	return nil
}

func (m memReservations) List(ctx context.Context) ([]domain.ReservationView, error) {
	return nil, nil
}
