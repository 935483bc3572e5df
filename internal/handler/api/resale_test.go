//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venue-ops/internal/domain/resale"
	"venue-ops/internal/handler/api"
	resdto "venue-ops/internal/handler/dto/response"
	"venue-ops/internal/pkg/errs"
	"venue-ops/internal/usecase/commands"
	"venue-ops/tests/common/httptest"
	commandsmock "venue-ops/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResaleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockResaleCommands
	handler      *api.ResaleHandler
}

func (s *ResaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockResaleCommands(s.mockCtrl)
	s.handler = api.NewResaleHandler(s.mockCommands)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/resale/offers", authMiddleware, s.handler.PublishOffer)
	s.router.GET("/resale/tickets/:id/cap", authMiddleware, s.handler.GetPriceCap)
}

func (s *ResaleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResaleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResaleHandlerTestSuite))
}

func (s *ResaleHandlerTestSuite) TestPublishOffer() {
	url := "/resale/offers"
	ticketID := uuid.New()
	body := map[string]any{"ticket_id": ticketID.String(), "price": 800}

	s.Run("success: returns 201 with the pending offer", func() {
		result := &commands.PublishOfferResult{
			OfferID:   uuid.New(),
			TicketID:  ticketID,
			Price:     800,
			Status:    resale.OfferPending,
			CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		}
		s.mockCommands.EXPECT().PublishOffer(gomock.Any(), commands.PublishOfferParams{TicketID: ticketID, Price: 800}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(result.OfferID, resp.OfferID)
		s.Equal("pending", resp.Status)
	})

	s.Run("error: 422 with the cap figures when the price is too high", func() {
		capErr := errs.Mark(
			&resale.PriceAboveCapError{Current: 860, Cap: 850},
			commands.ErrPriceAboveCap,
		)
		s.mockCommands.EXPECT().PublishOffer(gomock.Any(), gomock.Any()).
			Return(nil, capErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "\"current\":860")
		s.Contains(rec.Body.String(), "\"cap\":850")
	})

	s.Run("error: 404 on unknown ticket", func() {
		s.mockCommands.EXPECT().PublishOffer(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrTicketNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
	})

	s.Run("error: 400 on non-positive price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"ticket_id": ticketID.String(), "price": 0}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ResaleHandlerTestSuite) TestGetPriceCap() {
	ticketID := uuid.New()
	url := "/resale/tickets/" + ticketID.String() + "/cap"

	s.Run("success: returns the cap", func() {
		s.mockCommands.EXPECT().PriceCap(gomock.Any(), ticketID).
			Return(&commands.PriceCapResult{TicketID: ticketID, FaceValue: 800, Cap: 850}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.PriceCapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(ticketID, resp.TicketID)
		s.InDelta(850, resp.Cap, 1e-9)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resale/tickets/nope/cap", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ticket ID")
	})

	s.Run("error: 404 on unknown ticket", func() {
		s.mockCommands.EXPECT().PriceCap(gomock.Any(), ticketID).
			Return(nil, commands.ErrTicketNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
	})
}
