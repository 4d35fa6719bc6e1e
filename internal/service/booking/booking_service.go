package booking

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ananyev/airtravel/internal/domain"
	"github.com/ananyev/airtravel/internal/kafka"
	"github.com/ananyev/airtravel/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.ReservationView, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Cache is the slice of the flights cache a committed booking needs: the
// cached listing carries seat counts, so it is dropped after every decrement.
type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type BookingService struct {
	tx                 repository.Transactor
	passengers         repository.PassengerRepository
	flights            repository.FlightRepository
	reservations       repository.ReservationRepository
	producer           Producer
	cache              Cache
	bookingTopic       string
	notificationsTopic string
}

type PassengerInput struct {
	FullName string  `json:"full_name"`
	Age      *int    `json:"age"`
	Gender   *string `json:"gender"`
	Email    *string `json:"email"`
}

type BookTicketInput struct {
	Passenger   PassengerInput `json:"passenger"`
	FlightID    int64          `json:"flight_id"`
	SeatNumber  string         `json:"seat_number"`
	TravelClass string         `json:"travel_class"`
	Price       float64        `json:"price"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func NewBookingService(
	tx repository.Transactor,
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	reservations repository.ReservationRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		tx:           tx,
		passengers:   passengers,
		flights:      flights,
		reservations: reservations,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookTicket runs the whole booking as one unit of work: create the
// passenger, take a seat on the flight, write the reservation. Either all
// three land or none of them do; the seat counter is never decremented
// without a matching reservation row.
func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (*domain.Reservation, error) {
	if strings.TrimSpace(input.Passenger.FullName) == "" {
		return nil, fmt.Errorf("%w: passenger full_name is required", domain.ErrValidation)
	}
	if input.FlightID <= 0 {
		return nil, fmt.Errorf("%w: flight_id is required", domain.ErrValidation)
	}

	class := domain.TravelClass(input.TravelClass)
	if class == "" {
		class = domain.ClassEconomy
	}
	if !class.Valid() {
		return nil, fmt.Errorf("%w: unknown travel_class %q", domain.ErrValidation, input.TravelClass)
	}

	price := input.Price
	if price < 0 {
		price = 0
	}

	var reservation *domain.Reservation
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		passenger := &domain.Passenger{
			FullName: input.Passenger.FullName,
			Age:      input.Passenger.Age,
			Gender:   input.Passenger.Gender,
			Email:    input.Passenger.Email,
		}
		if err := s.passengers.Create(ctx, passenger); err != nil {
			return fmt.Errorf("create passenger: %w", err)
		}

		if err := s.flights.ReserveSeat(ctx, input.FlightID); err != nil {
			return err
		}

		r := &domain.Reservation{
			Reference:   uuid.NewString(),
			FlightID:    input.FlightID,
			PassengerID: passenger.ID,
			SeatNumber:  input.SeatNumber,
			TravelClass: class,
			Price:       price,
		}
		if err := s.reservations.Create(ctx, r); err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		reservation = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}

	// Events go out only after the transaction committed. A publish failure
	// does not un-book the ticket.
	if err := s.publish(ctx, "ticket_booked", reservation, input.Passenger); err != nil {
		log.Printf("WARNING: failed to publish ticket_booked event for reservation %s: %v", reservation.Reference, err)
	}
	return reservation, nil
}

func (s *BookingService) ListReservations(ctx context.Context) ([]domain.ReservationView, error) {
	return s.reservations.List(ctx)
}

func (s *BookingService) publish(ctx context.Context, eventType string, reservation *domain.Reservation, passenger PassengerInput) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.TicketEvent{
		Type:          eventType,
		Reference:     reservation.Reference,
		FlightID:      reservation.FlightID,
		PassengerName: passenger.FullName,
		SeatNumber:    reservation.SeatNumber,
		TravelClass:   string(reservation.TravelClass),
		Price:         reservation.Price,
		CreatedAt:     reservation.CreatedAt,
	}
	if passenger.Email != nil {
		event.Email = *passenger.Email
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, reservation.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, reservation.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
