package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/seatbooking/internal/kafka"
)

// Printer delivers booking notifications by writing them to out.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

func (p *Printer) Send(ctx context.Context, event kafka.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.out, "notify %s about %s (seat %d): %s\n", event.Requester, event.Outcome, event.SeatNumber, event.Message)
	return err
}
