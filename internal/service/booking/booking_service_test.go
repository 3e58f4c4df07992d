package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, seats int, opts ...BookingServiceOption) *BookingService {
	t.Helper()
	venue, err := registry.New(seats)
	require.NoError(t, err)
	return NewBookingService(venue, opts...)
}

func TestBookingService_BookSeat(t *testing.T) {
	producer := &MockProducer{}
	service := newTestService(t, 5, WithEvents(producer, "booking_events"))
	ctx := context.Background()

	producer.On("Publish", ctx, "booking_events", "alice", mock.Anything).Return(nil).Once()
	producer.On("Publish", ctx, "booking_events", "bob", mock.Anything).Return(nil).Once()

	attempt, err := service.BookSeat(ctx, CreateBookingInput{SeatNumber: 4, Requester: "alice"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeBooked, attempt.Outcome)

	attempt, err = service.BookSeat(ctx, CreateBookingInput{SeatNumber: 4, Requester: "bob"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejectedAlreadyBooked, attempt.Outcome)

	availability, err := service.AvailableSeats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, availability.TotalSeats)
	assert.Equal(t, []int{1, 2, 3, 5}, availability.Available)

	seats, err := service.Seats(ctx)
	require.NoError(t, err)
	assert.True(t, seats[3].IsBooked())
	assert.Equal(t, "Seat 4 (Booked)", seats[3].String())

	producer.AssertExpectations(t)
}

func TestBookingService_BookSeat_RequiresRequester(t *testing.T) {
	service := newTestService(t, 5)

	attempt, err := service.BookSeat(context.Background(), CreateBookingInput{SeatNumber: 1})

	assert.Nil(t, attempt)
	assert.EqualError(t, err, "requester is required")
}

func TestBookingService_RunScenario_DoesNotTouchVenue(t *testing.T) {
	service := newTestService(t, 4)
	ctx := context.Background()

	report, err := service.RunScenario(ctx, RunScenarioInput{
		Seats:    3,
		Requests: []domain.BookingRequest{{SeatNumber: 2, Requester: "User1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, report.Available)

	availability, err := service.AvailableSeats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, availability.Available)
}

func TestBookingService_RunScenario_Errors(t *testing.T) {
	service := newTestService(t, 4)
	ctx := context.Background()

	_, err := service.RunScenario(ctx, RunScenarioInput{Seats: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = service.RunScenario(ctx, RunScenarioInput{
		Seats:    3,
		Requests: []domain.BookingRequest{{SeatNumber: 1}},
	})
	assert.EqualError(t, err, "requester is required")
}

func TestBookingService_GetReport(t *testing.T) {
	cache := &MockReportCache{}
	service := newTestService(t, 4, WithReportCache(cache))
	ctx := context.Background()

	stored := &domain.Report{ID: "run-1", TotalSeats: 3, Available: []int{1}}
	cache.On("GetReport", ctx, "run-1").Return(stored, nil).Once()
	cache.On("GetReport", ctx, "missing").Return(nil, domain.ErrReportNotFound).Once()

	report, err := service.GetReport(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, stored, report)

	report, err = service.GetReport(ctx, "missing")
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domain.ErrReportNotFound))

	cache.AssertExpectations(t)
}

func TestBookingService_GetReport_NoCache(t *testing.T) {
	service := newTestService(t, 4)

	_, err := service.GetReport(context.Background(), "run-1")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}
