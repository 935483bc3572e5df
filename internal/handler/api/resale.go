package api

import (
	"errors"
	"net/http"

	"venue-ops/internal/domain/resale"
	reqdto "venue-ops/internal/handler/dto/request"
	resdto "venue-ops/internal/handler/dto/response"
	"venue-ops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResaleHandler struct {
	resaleCommands commands.ResaleCommands
}

func NewResaleHandler(resaleCommands commands.ResaleCommands) *ResaleHandler {
	return &ResaleHandler{resaleCommands: resaleCommands}
}

// @Summary Publish resale offer
// @Description List a ticket for resale at or below the price cap
// @Tags resale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishOfferRequest true "Offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /resale/offers [post]
func (h *ResaleHandler) PublishOffer(c *gin.Context) {
	var req reqdto.PublishOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.resaleCommands.PublishOffer(c.Request.Context(), commands.PublishOfferParams{
		TicketID: req.TicketID,
		Price:    req.Price,
	})
	if err != nil {
		var capErr *resale.PriceAboveCapError
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		case errors.As(err, &capErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Price exceeds resale cap",
				"current": capErr.Current,
				"cap":     capErr.Cap,
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPublishOffer(result))
}

// @Summary Get resale price cap
// @Description Get the maximum allowed asking price for a ticket
// @Tags resale
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.PriceCapResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resale/tickets/{id}/cap [get]
func (h *ResaleHandler) GetPriceCap(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID format",
		})
		return
	}

	result, err := h.resaleCommands.PriceCap(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceCap(result))
}
