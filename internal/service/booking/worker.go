package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/kafka"
)

// SeatBooker is the write side of a seat registry.
type SeatBooker interface {
	BookSeat(seatNumber int, requester string) domain.Outcome
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Worker performs one booking attempt per call. It never retries and never
// falls back to a different seat.
type Worker struct {
	producer Producer
	topic    string
}

func NewWorker(producer Producer, topic string) *Worker {
	return &Worker{producer: producer, topic: topic}
}

// Book calls BookSeat exactly once. A panic inside the call is recovered
// into an OutcomeFailed attempt so callers waiting on the worker still
// get a result.
func (w *Worker) Book(ctx context.Context, seats SeatBooker, runID string, req domain.BookingRequest) (attempt domain.BookingAttempt) {
	attempt.Request = req

	defer func() {
		if r := recover(); r != nil {
			attempt.Outcome = domain.OutcomeFailed
			attempt.Err = fmt.Errorf("booking worker panic: %v", r)
		}
		attempt.CompletedAt = time.Now()
		log.Println(attempt.Message())
		w.publish(ctx, runID, attempt)
	}()

	attempt.Outcome = seats.BookSeat(req.SeatNumber, req.Requester)
	attempt.Err = attempt.Outcome.Err()
	return attempt
}

func (w *Worker) publish(ctx context.Context, runID string, attempt domain.BookingAttempt) {
	if w == nil || w.producer == nil || w.topic == "" {
		return
	}

	event := kafka.BookingEvent{
		Type:       eventType(attempt.Outcome),
		RunID:      runID,
		Requester:  attempt.Request.Requester,
		SeatNumber: attempt.Request.SeatNumber,
		Outcome:    string(attempt.Outcome),
		Message:    attempt.Message(),
		At:         attempt.CompletedAt,
	}
	key := runID
	if key == "" {
		key = attempt.Request.Requester
	}
	if err := w.producer.Publish(ctx, w.topic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for %s: %v", event.Type, attempt.Request.Requester, err)
	}
}

func eventType(o domain.Outcome) string {
	switch o {
	case domain.OutcomeBooked:
		return "seat_booked"
	case domain.OutcomeFailed:
		return "seat_booking_failed"
	default:
		return "seat_rejected"
	}
}
