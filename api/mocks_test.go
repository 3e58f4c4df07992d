package api

import (
	"context"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) BookSeat(ctx context.Context, input booking.CreateBookingInput) (*domain.BookingAttempt, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingAttempt), args.Error(1)
}

func (m *MockBookingUseCase) AvailableSeats(ctx context.Context) (*booking.Availability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Availability), args.Error(1)
}

func (m *MockBookingUseCase) Seats(ctx context.Context) ([]domain.Seat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockBookingUseCase) RunScenario(ctx context.Context, input booking.RunScenarioInput) (*domain.Report, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockBookingUseCase) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}
