package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"venue-ops/internal/domain/booking"
	reqdto "venue-ops/internal/handler/dto/request"
	resdto "venue-ops/internal/handler/dto/response"
	"venue-ops/internal/handler/middleware"
	"venue-ops/internal/pkg/jwt"
	"venue-ops/internal/usecase/commands"
	"venue-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a table booking with a deposit hold
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingParams{
		UserID:  userID,
		VenueID: req.VenueID,
		TableID: req.TableID,
		Date:    req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, commands.ErrTableNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Table not found",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table already booked for this date",
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

	c.JSON(http.StatusCreated, resdto.FromBookingCreated(result))
}

// @Summary Capture payment
// @Description Capture the deposit and confirm the booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/capture [post]
func (h *BookingHandler) CapturePayment(c *gin.Context) {
	h.applyEvent(c, booking.EventPaymentCaptured)
}

// @Summary Cancel booking
// @Description Cancel a booking; staff cancellations are recorded as host-initiated
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation details"
// @Success 200 {object} resdto.BookingEventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}
	if req.Reason != nil {
		slog.Info("booking cancellation requested", "booking_id", c.Param("id"), "reason", *req.Reason)
	}

	event := booking.EventUserCancelled
	if role, ok := middleware.GetUserRole(c); ok && (role == jwt.RoleStaff || role == jwt.RoleManager) {
		event = booking.EventHostCancelled
	}

	h.applyEvent(c, event)
}

func (h *BookingHandler) applyEvent(c *gin.Context, event booking.Event) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.bookingCommands.ApplyEvent(c.Request.Context(), id, event)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingEvent(result))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List the current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of bookings to return"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = int32(parsed)
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}
