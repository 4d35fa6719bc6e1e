package domain

import "time"

type TravelClass string

const (
	ClassEconomy  TravelClass = "Economy"
	ClassBusiness TravelClass = "Business"
	ClassFirst    TravelClass = "First"
)

// Valid reports whether c is one of the supported travel classes.
func (c TravelClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

type Reservation struct {
	ID          int64       `json:"reservation_id"`
	Reference   string      `json:"reference"`
	FlightID    int64       `json:"flight_id"`
	PassengerID int64       `json:"passenger_id"`
	SeatNumber  string      `json:"seat_number"`
	TravelClass TravelClass `json:"travel_class"`
	Price       float64     `json:"price"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ReservationView is the reporting row returned by the reservations listing:
// a reservation joined with the passenger's name and the flight number.
type ReservationView struct {
	Reservation
	PassengerName string `json:"passenger_name"`
	FlightNumber  string `json:"flight_number"`
}
