package domain

import "fmt"

// Seat is a single reservable unit. It carries no locking of its own; the
// registry that owns it serializes every read and write.
type Seat struct {
	Number int
	booked bool
}

func NewSeat(number int) Seat {
	return Seat{Number: number}
}

func (s *Seat) IsBooked() bool {
	return s.booked
}

// Book marks the seat as taken. Calling it twice is a no-op.
func (s *Seat) Book() {
	s.booked = true
}

func (s Seat) String() string {
	if s.booked {
		return fmt.Sprintf("Seat %d (Booked)", s.Number)
	}
	return fmt.Sprintf("Seat %d (Available)", s.Number)
}
