package email

import (
	"context"
	"fmt"

	"github.com/ananyev/airtravel/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	if event.Email == "" {
		return nil
	}
	fmt.Printf("send email to %s: %s confirmed for flight %d, seat %s (%s), ref %s\n",
		event.Email, event.Type, event.FlightID, event.SeatNumber, event.TravelClass, event.Reference)
	return nil
}
