package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ananyev/airtravel/internal/domain"
	"github.com/ananyev/airtravel/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubBookingService struct {
	reservation *domain.Reservation
	views       []domain.ReservationView
	err         error
	gotInput    booking.BookTicketInput
}

func (s *stubBookingService) BookTicket(ctx context.Context, input booking.BookTicketInput) (*domain.Reservation, error) {
	s.gotInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.reservation, nil
}

func (s *stubBookingService) ListReservations(ctx context.Context) ([]domain.ReservationView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

func newBookingRouter(service booking.BookingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(service).Register(router.Group("/api"))
	return router
}

func TestBookingHandler_Book_Created(t *testing.T) {
	stub := &stubBookingService{
		reservation: &domain.Reservation{
			ID:          101,
			Reference:   "ref-1",
			FlightID:    42,
			PassengerID: 7,
			SeatNumber:  "12A",
			TravelClass: domain.ClassBusiness,
			Price:       150,
			CreatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	router := newBookingRouter(stub)

	body := []byte(`{"passenger":{"full_name":"Jane Doe","age":30,"email":"jane@example.com"},"flight_id":42,"seat_number":"12A","travel_class":"Business","price":150.00}`)
	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp bookTicketResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ReservationID)
	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, "Business", resp.TravelClass)

	assert.Equal(t, "Jane Doe", stub.gotInput.Passenger.FullName)
	assert.Equal(t, int64(42), stub.gotInput.FlightID)
	if assert.NotNil(t, stub.gotInput.Passenger.Age) {
		assert.Equal(t, 30, *stub.gotInput.Passenger.Age)
	}
}

func TestBookingHandler_Book_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"not found", domain.ErrFlightNotFound, http.StatusNotFound},
		{"sold out", domain.ErrSoldOut, http.StatusConflict},
		{"storage", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newBookingRouter(&stubBookingService{err: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader([]byte(`{"passenger":{"full_name":"x"},"flight_id":1}`)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusInternalServerError {
				// storage causes are not surfaced to callers
				assert.NotContains(t, rec.Body.String(), "connection reset")
			}
		})
	}
}

func TestBookingHandler_Book_BadJSON(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader([]byte(`{"flight_id":`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_Reservations(t *testing.T) {
	stub := &stubBookingService{
		views: []domain.ReservationView{
			{
				Reservation:   domain.Reservation{ID: 1, FlightID: 42},
				PassengerName: "Jane Doe",
				FlightNumber:  "AT-42",
			},
		},
	}
	router := newBookingRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.Contains(t, rec.Body.String(), "AT-42")
}
