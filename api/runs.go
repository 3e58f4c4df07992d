package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type RunHandler struct {
	service booking.BookingUseCase
}

type runRequest struct {
	Seats    int                     `json:"seats"`
	Requests []domain.BookingRequest `json:"requests" binding:"required"`
}

func NewRunHandler(service booking.BookingUseCase) *RunHandler {
	return &RunHandler{service: service}
}

func (h *RunHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:id", h.get)
}

func (h *RunHandler) create(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.RunScenario(c.Request.Context(), booking.RunScenarioInput{
		Seats:    req.Seats,
		Requests: req.Requests,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *RunHandler) get(c *gin.Context) {
	report, err := h.service.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
