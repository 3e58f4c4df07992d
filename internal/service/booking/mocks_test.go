package booking

import (
	"context"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) SetReport(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportCache) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// panickingVenue blows up when asked for one particular seat.
type panickingVenue struct {
	Venue
	seat int
}

func (v *panickingVenue) BookSeat(seatNumber int, requester string) domain.Outcome {
	if seatNumber == v.seat {
		panic("seat map corrupted")
	}
	return v.Venue.BookSeat(seatNumber, requester)
}
