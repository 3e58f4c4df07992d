package api

import (
	"net/http"

	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	service booking.BookingUseCase
}

type seatResponse struct {
	Number int    `json:"number"`
	Booked bool   `json:"booked"`
	Label  string `json:"label"`
}

func NewSeatHandler(service booking.BookingUseCase) *SeatHandler {
	return &SeatHandler{service: service}
}

func (h *SeatHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/available", h.available)
}

func (h *SeatHandler) list(c *gin.Context) {
	seats, err := h.service.Seats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]seatResponse, len(seats))
	for i := range seats {
		resp[i] = seatResponse{
			Number: seats[i].Number,
			Booked: seats[i].IsBooked(),
			Label:  seats[i].String(),
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SeatHandler) available(c *gin.Context) {
	availability, err := h.service.AvailableSeats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, availability)
}
