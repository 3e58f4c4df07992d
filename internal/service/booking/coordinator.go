package booking

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/registry"
	"github.com/google/uuid"
)

// Venue is what a coordinator run needs from a registry.
type Venue interface {
	SeatBooker
	ListAvailable() []int
	TotalSeats() int
}

type ReportCache interface {
	SetReport(ctx context.Context, report *domain.Report) error
	GetReport(ctx context.Context, id string) (*domain.Report, error)
}

// Coordinator runs one worker per request against a fresh registry and
// reports final occupancy once all of them have returned.
type Coordinator struct {
	worker *Worker
	cache  ReportCache
	newID  func() string
}

func NewCoordinator(worker *Worker, cache ReportCache) *Coordinator {
	if worker == nil {
		worker = NewWorker(nil, "")
	}
	return &Coordinator{worker: worker, cache: cache, newID: uuid.NewString}
}

func (c *Coordinator) Run(ctx context.Context, seats int, requests []domain.BookingRequest) (*domain.Report, error) {
	venue, err := registry.New(seats)
	if err != nil {
		return nil, err
	}

	report := c.run(ctx, venue, requests)

	if c.cache != nil {
		if err := c.cache.SetReport(ctx, report); err != nil {
			log.Printf("WARNING: failed to cache report %s: %v", report.ID, err)
		}
	}
	return report, nil
}

func (c *Coordinator) run(ctx context.Context, venue Venue, requests []domain.BookingRequest) *domain.Report {
	report := &domain.Report{
		ID:        c.newID(),
		StartedAt: time.Now(),
	}

	attempts := make([]domain.BookingAttempt, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req domain.BookingRequest) {
			defer wg.Done()
			attempts[i] = c.worker.Book(ctx, venue, report.ID, req)
		}(i, req)
	}
	wg.Wait()

	report.FinishedAt = time.Now()
	report.TotalSeats = venue.TotalSeats()
	report.Available = venue.ListAvailable()
	report.Attempts = make([]domain.AttemptSummary, len(attempts))
	for i, a := range attempts {
		report.Attempts[i] = domain.SummarizeAttempt(a)
	}
	return report
}

// DefaultRequesters labels n requesters User1..UserN.
func DefaultRequesters(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("User%d", i+1)
	}
	return labels
}
