package domain

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomeBooked                Outcome = "booked"
	OutcomeRejectedInvalidNumber Outcome = "rejected-invalid-number"
	OutcomeRejectedAlreadyBooked Outcome = "rejected-already-booked"
	// OutcomeFailed is recorded by a worker that panicked before the registry
	// answered. The registry itself never returns it.
	OutcomeFailed Outcome = "failed"
)

// Err maps a rejection to its sentinel error. Booked maps to nil.
func (o Outcome) Err() error {
	switch o {
	case OutcomeBooked:
		return nil
	case OutcomeRejectedInvalidNumber:
		return ErrInvalidSeatNumber
	case OutcomeRejectedAlreadyBooked:
		return ErrSeatUnavailable
	default:
		return fmt.Errorf("booking outcome %q", string(o))
	}
}

type BookingRequest struct {
	SeatNumber int    `json:"seat_number" yaml:"seat"`
	Requester  string `json:"requester" yaml:"requester"`
}

type BookingAttempt struct {
	Request     BookingRequest
	Outcome     Outcome
	Err         error
	CompletedAt time.Time
}

func (a BookingAttempt) Message() string {
	switch a.Outcome {
	case OutcomeBooked:
		return fmt.Sprintf("%s: Seat %d booked successfully.", a.Request.Requester, a.Request.SeatNumber)
	case OutcomeRejectedInvalidNumber:
		return fmt.Sprintf("%s: Invalid seat number.", a.Request.Requester)
	case OutcomeRejectedAlreadyBooked:
		return fmt.Sprintf("%s: Seat %d is already booked.", a.Request.Requester, a.Request.SeatNumber)
	default:
		return fmt.Sprintf("%s: Booking of seat %d failed: %v", a.Request.Requester, a.Request.SeatNumber, a.Err)
	}
}
