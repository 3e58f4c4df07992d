package booking

import (
	"context"
	"errors"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/registry"
)

type BookingUseCase interface {
	BookSeat(ctx context.Context, input CreateBookingInput) (*domain.BookingAttempt, error)
	AvailableSeats(ctx context.Context) (*Availability, error)
	Seats(ctx context.Context) ([]domain.Seat, error)
	RunScenario(ctx context.Context, input RunScenarioInput) (*domain.Report, error)
	GetReport(ctx context.Context, id string) (*domain.Report, error)
}

type CreateBookingInput struct {
	SeatNumber int    `json:"seat_number"`
	Requester  string `json:"requester"`
}

type RunScenarioInput struct {
	Seats    int                     `json:"seats"`
	Requests []domain.BookingRequest `json:"requests"`
}

type Availability struct {
	TotalSeats int   `json:"total_seats"`
	Available  []int `json:"available"`
}

// BookingService serves a long-lived venue and runs isolated scenarios on
// fresh registries.
type BookingService struct {
	venue       *registry.SeatRegistry
	cache       ReportCache
	producer    Producer
	eventsTopic string
	worker      *Worker
	coordinator *Coordinator
}

type BookingServiceOption func(*BookingService)

func WithReportCache(cache ReportCache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewBookingService(venue *registry.SeatRegistry, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{venue: venue}
	for _, opt := range opts {
		opt(service)
	}
	service.worker = NewWorker(service.producer, service.eventsTopic)
	service.coordinator = NewCoordinator(service.worker, service.cache)
	return service
}

func (s *BookingService) BookSeat(ctx context.Context, input CreateBookingInput) (*domain.BookingAttempt, error) {
	if input.Requester == "" {
		return nil, errors.New("requester is required")
	}

	attempt := s.worker.Book(ctx, s.venue, "", domain.BookingRequest{
		SeatNumber: input.SeatNumber,
		Requester:  input.Requester,
	})
	return &attempt, nil
}

func (s *BookingService) AvailableSeats(ctx context.Context) (*Availability, error) {
	return &Availability{
		TotalSeats: s.venue.TotalSeats(),
		Available:  s.venue.ListAvailable(),
	}, nil
}

func (s *BookingService) Seats(ctx context.Context) ([]domain.Seat, error) {
	return s.venue.Seats(), nil
}

func (s *BookingService) RunScenario(ctx context.Context, input RunScenarioInput) (*domain.Report, error) {
	for _, req := range input.Requests {
		if req.Requester == "" {
			return nil, errors.New("requester is required")
		}
	}
	return s.coordinator.Run(ctx, input.Seats, input.Requests)
}

func (s *BookingService) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	if s.cache == nil {
		return nil, domain.ErrReportNotFound
	}
	return s.cache.GetReport(ctx, id)
}

var _ BookingUseCase = (*BookingService)(nil)
