package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	SeatNumber int    `json:"seat_number"`
	Requester  string `json:"requester" binding:"required"`
}

type attemptResponse struct {
	SeatNumber  int    `json:"seat_number"`
	Requester   string `json:"requester"`
	Outcome     string `json:"outcome"`
	Message     string `json:"message"`
	CompletedAt string `json:"completed_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

// create answers with the attempt body for every outcome; only the status
// code tells the outcomes apart.
func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.service.BookSeat(c.Request.Context(), booking.CreateBookingInput{
		SeatNumber: req.SeatNumber,
		Requester:  req.Requester,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(statusFor(attempt.Outcome), attemptResponse{
		SeatNumber:  attempt.Request.SeatNumber,
		Requester:   attempt.Request.Requester,
		Outcome:     string(attempt.Outcome),
		Message:     attempt.Message(),
		CompletedAt: attempt.CompletedAt.Format(time.RFC3339Nano),
	})
}

func statusFor(o domain.Outcome) int {
	switch o {
	case domain.OutcomeBooked:
		return http.StatusCreated
	case domain.OutcomeRejectedAlreadyBooked:
		return http.StatusConflict
	case domain.OutcomeRejectedInvalidNumber:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
