package api

import (
	"net/http"
	"time"

	"github.com/ananyev/airtravel/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type passengerRequest struct {
	FullName string  `json:"full_name"`
	Age      *int    `json:"age"`
	Gender   *string `json:"gender"`
	Email    *string `json:"email"`
}

type bookTicketRequest struct {
	Passenger   passengerRequest `json:"passenger"`
	FlightID    int64            `json:"flight_id"`
	SeatNumber  string           `json:"seat_number"`
	TravelClass string           `json:"travel_class"`
	Price       float64          `json:"price"`
}

type bookTicketResponse struct {
	ReservationID int64   `json:"reservation_id"`
	Reference     string  `json:"reference"`
	Status        string  `json:"status"`
	FlightID      int64   `json:"flight_id"`
	PassengerID   int64   `json:"passenger_id"`
	SeatNumber    string  `json:"seat_number"`
	TravelClass   string  `json:"travel_class"`
	Price         float64 `json:"price"`
	CreatedAt     string  `json:"created_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/book", h.book)
	router.GET("/reservations", h.reservations)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.service.BookTicket(c.Request.Context(), booking.BookTicketInput{
		Passenger: booking.PassengerInput{
			FullName: req.Passenger.FullName,
			Age:      req.Passenger.Age,
			Gender:   req.Passenger.Gender,
			Email:    req.Passenger.Email,
		},
		FlightID:    req.FlightID,
		SeatNumber:  req.SeatNumber,
		TravelClass: req.TravelClass,
		Price:       req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookTicketResponse{
		ReservationID: reservation.ID,
		Reference:     reservation.Reference,
		Status:        "booked",
		FlightID:      reservation.FlightID,
		PassengerID:   reservation.PassengerID,
		SeatNumber:    reservation.SeatNumber,
		TravelClass:   string(reservation.TravelClass),
		Price:         reservation.Price,
		CreatedAt:     reservation.CreatedAt.Format(time.RFC3339),
	})
}

func (h *BookingHandler) reservations(c *gin.Context) {
	views, err := h.service.ListReservations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
