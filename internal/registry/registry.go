// Package registry holds the seats of one venue behind a single mutex.
package registry

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/seatbooking/internal/domain"
)

// SeatRegistry owns every Seat of a venue. All reads and writes of seat
// state go through mu; there is no per-seat locking.
type SeatRegistry struct {
	mu    sync.Mutex
	seats []domain.Seat // index = number - 1
}

func New(n int) (*SeatRegistry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seat count must be positive, got %d: %w", n, domain.ErrInvalidConfiguration)
	}

	seats := make([]domain.Seat, n)
	for i := range seats {
		seats[i] = domain.NewSeat(i + 1)
	}
	return &SeatRegistry{seats: seats}, nil
}

// TotalSeats never changes after New, so it is read without the lock.
func (r *SeatRegistry) TotalSeats() int {
	return len(r.seats)
}

// ListAvailable returns unbooked seat numbers in ascending order, taken as
// one snapshot under the booking lock.
func (r *SeatRegistry) ListAvailable() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	available := make([]int, 0, len(r.seats))
	for i := range r.seats {
		if !r.seats[i].IsBooked() {
			available = append(available, r.seats[i].Number)
		}
	}
	return available
}

// Seats returns a copy of every seat in number order.
func (r *SeatRegistry) Seats() []domain.Seat {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Seat, len(r.seats))
	copy(out, r.seats)
	return out
}

// BookSeat grants seatNumber to requester if nobody holds it yet. The
// check and the write happen under one lock acquisition, so among
// concurrent callers for the same seat exactly one sees OutcomeBooked.
func (r *SeatRegistry) BookSeat(seatNumber int, requester string) domain.Outcome {
	if seatNumber <= 0 || seatNumber > len(r.seats) {
		return domain.OutcomeRejectedInvalidNumber
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seat := &r.seats[seatNumber-1]
	if seat.IsBooked() {
		return domain.OutcomeRejectedAlreadyBooked
	}
	seat.Book()
	return domain.OutcomeBooked
}
