package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/seatbooking/internal/registry"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatHandler_list(t *testing.T) {
	reg, err := registry.New(3)
	require.NoError(t, err)
	reg.BookSeat(2, "User1")
	seats := reg.Seats()

	mockService := &MockBookingUseCase{}
	handler := NewSeatHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/seats", nil)

	mockService.On("Seats", c.Request.Context()).Return(seats, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []seatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)
	assert.False(t, response[0].Booked)
	assert.True(t, response[1].Booked)
	assert.Equal(t, "Seat 2 (Booked)", response[1].Label)

	mockService.AssertExpectations(t)
}

func TestSeatHandler_available(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewSeatHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/seats/available", nil)

	mockService.On("AvailableSeats", c.Request.Context()).Return(&booking.Availability{TotalSeats: 3, Available: []int{1, 3}}, nil)

	handler.available(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response booking.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 3, response.TotalSeats)
	assert.Equal(t, []int{1, 3}, response.Available)

	mockService.AssertExpectations(t)
}
