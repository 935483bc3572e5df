package api

import (
	"errors"
	"net/http"
	"time"

	resdto "venue-ops/internal/handler/dto/response"
	"venue-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{pricingQueries: pricingQueries}
}

// @Summary Quote table price
// @Description Preview the rule-adjusted minimum spend and deposit for a table on a date
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Param table_id query string true "Table ID"
// @Param date query string true "Booking date (RFC 3339)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	tableID, err := uuid.Parse(c.Query("table_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID format",
		})
		return
	}

	date, err := time.Parse(time.RFC3339, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.pricingQueries.Quote(c.Request.Context(), venueID, tableID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, queries.ErrTableNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Table not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
