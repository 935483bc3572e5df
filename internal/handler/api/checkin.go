package api

import (
	"errors"
	"net/http"

	reqdto "venue-ops/internal/handler/dto/request"
	resdto "venue-ops/internal/handler/dto/response"
	"venue-ops/internal/handler/middleware"
	"venue-ops/internal/infra/syncclient"
	"venue-ops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	checkInCommands commands.CheckInCommands
	reachability    *syncclient.Reachability
}

func NewCheckInHandler(checkInCommands commands.CheckInCommands, reachability *syncclient.Reachability) *CheckInHandler {
	return &CheckInHandler{
		checkInCommands: checkInCommands,
		reachability:    reachability,
	}
}

// @Summary Record scan
// @Description Record a door scan; queued locally when the backend is unreachable
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordScanRequest true "Scan request"
// @Success 201 {object} resdto.ScanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /checkin/scans [post]
func (h *CheckInHandler) RecordScan(c *gin.Context) {
	var req reqdto.RecordScanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	event, err := h.checkInCommands.RecordScan(c.Request.Context(), commands.RecordScanParams{
		Code:       req.Code,
		VenueID:    req.VenueID,
		EntranceID: req.EntranceID,
		GuestName:  req.GuestName,
		PartySize:  req.PartySize,
	})

	durable := true
	if err != nil {
		if !errors.Is(err, commands.ErrScanPersistFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		// The scan was recorded in memory but the offline store write
		// failed; report it so the device can warn the operator.
		durable = false
	}

	c.JSON(http.StatusCreated, resdto.FromScanEvent(event, durable))
}

// @Summary Flush offline scans
// @Description Deliver queued offline scans to the backend
// @Tags checkin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FlushResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkin/flush [post]
func (h *CheckInHandler) FlushOffline(c *gin.Context) {
	result, err := h.checkInCommands.FlushOffline(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFlushFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to flush offline scans",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlushResult(result))
}

// @Summary Bind device
// @Description Bind this scanner to a staff member and venue for a shift
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BindDeviceRequest true "Binding request"
// @Success 200 {object} resdto.BindingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /checkin/bind [post]
func (h *CheckInHandler) BindDevice(c *gin.Context) {
	var req reqdto.BindDeviceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, ok := middleware.GetUserID(c); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	binding := h.checkInCommands.BindDevice(req.StaffUserID, req.VenueID)
	c.JSON(http.StatusOK, resdto.FromDeviceBinding(binding))
}

// @Summary Recent scans
// @Description Recent scan history for this device, newest first
// @Tags checkin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RecentScansResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /checkin/recent [get]
func (h *CheckInHandler) RecentScans(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromRecentScans(h.checkInCommands.RecentScans()))
}

// @Summary Set reachability
// @Description Set the connectivity signal used to decide between live verify and offline queueing
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReachabilityRequest true "Reachability state"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /checkin/reachability [post]
func (h *CheckInHandler) SetReachability(c *gin.Context) {
	var req reqdto.ReachabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.reachability.SetOnline(*req.Online)
	c.JSON(http.StatusOK, gin.H{"online": h.reachability.Online()})
}
