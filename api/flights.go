package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ananyev/airtravel/internal/liveflights"
	"github.com/ananyev/airtravel/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type LiveFlightsClient interface {
	Snapshot(ctx context.Context, filter liveflights.Filter) ([]liveflights.LiveFlight, error)
}

type FlightHandler struct {
	service flights.FlightUseCase
	live    LiveFlightsClient
}

func NewFlightHandler(service flights.FlightUseCase, live LiveFlightsClient) *FlightHandler {
	return &FlightHandler{service: service, live: live}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/live", h.liveSnapshot)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) search(c *gin.Context) {
	flights, err := h.service.Search(c.Request.Context(), c.Query("from"), c.Query("to"), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) liveSnapshot(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	snapshot, err := h.live.Snapshot(c.Request.Context(), liveflights.Filter{
		Country:  c.Query("country"),
		Callsign: c.Query("callsign"),
		Limit:    limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
