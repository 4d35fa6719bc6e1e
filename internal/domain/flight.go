package domain

import "time"

type Flight struct {
	ID               int64     `json:"flight_id"`
	AirlineID        int64     `json:"airline_id"`
	AirlineName      string    `json:"airline_name"`
	AirlineCode      string    `json:"airline_code"`
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_datetime"`
	ArrivalTime      time.Time `json:"arrival_datetime"`
	TotalSeats       int       `json:"total_seats"`
	SeatsAvailable   int       `json:"seats_available"`
	BasePrice        float64   `json:"base_price"`
}
