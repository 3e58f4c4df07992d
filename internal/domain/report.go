package domain

import "time"

// Report is the result of one coordinator run, read after every worker
// has returned.
type Report struct {
	ID         string           `json:"id"`
	TotalSeats int              `json:"total_seats"`
	Available  []int            `json:"available"`
	Attempts   []AttemptSummary `json:"attempts"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}

type AttemptSummary struct {
	SeatNumber int     `json:"seat_number"`
	Requester  string  `json:"requester"`
	Outcome    Outcome `json:"outcome"`
	Message    string  `json:"message"`
}

func SummarizeAttempt(a BookingAttempt) AttemptSummary {
	return AttemptSummary{
		SeatNumber: a.Request.SeatNumber,
		Requester:  a.Request.Requester,
		Outcome:    a.Outcome,
		Message:    a.Message(),
	}
}

// BookedSeats returns the distinct seat numbers that received OutcomeBooked.
func (r *Report) BookedSeats() []int {
	seen := make(map[int]struct{})
	var seats []int
	for _, a := range r.Attempts {
		if a.Outcome != OutcomeBooked {
			continue
		}
		if _, ok := seen[a.SeatNumber]; ok {
			continue
		}
		seen[a.SeatNumber] = struct{}{}
		seats = append(seats, a.SeatNumber)
	}
	return seats
}
