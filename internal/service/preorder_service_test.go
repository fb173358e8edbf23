package service

import (
	"testing"

	"github.com/google/uuid"
)

func validBooking() BookingInput {
	return BookingInput{
		CustomerName:  "Aigerim S.",
		CustomerPhone: "+7 701 000 0000",
		RouteID:       uuid.New(),
		ScheduledDate: "2026-09-15",
		ScheduledTime: "08:30",
	}
}

func TestValidateBooking(t *testing.T) {
	if err := ValidateBooking(validBooking()); err != nil {
		t.Fatalf("ValidateBooking: %v", err)
	}
}

func TestValidateBookingMissingFields(t *testing.T) {
	cases := map[string]func(*BookingInput){
		"name":  func(b *BookingInput) { b.CustomerName = "  " },
		"phone": func(b *BookingInput) { b.CustomerPhone = "" },
		"route": func(b *BookingInput) { b.RouteID = uuid.Nil },
		"date":  func(b *BookingInput) { b.ScheduledDate = "" },
		"time":  func(b *BookingInput) { b.ScheduledTime = " " },
	}

	for name, mutate := range cases {
		booking := validBooking()
		mutate(&booking)
		if err := ValidateBooking(booking); err != ErrInvalidInput {
			t.Fatalf("case %s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}
