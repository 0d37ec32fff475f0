//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"bidroom/internal/handler/api"
	resdto "bidroom/internal/handler/dto/response"
	"bidroom/internal/usecase/commands"
	"bidroom/internal/usecase/queries"
	"bidroom/tests/common/builder"
	"bidroom/tests/common/httptest"
	"bidroom/tests/common/testutil"
	commandsmock "bidroom/tests/mock/commands"
	queriesmock "bidroom/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NegotiationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNegotiationCommands
	mockQueries  *queriesmock.MockNegotiationQueries
	handler      *api.NegotiationHandler
	partyID      uuid.UUID
}

func (s *NegotiationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNegotiationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNegotiationQueries(s.mockCtrl)
	s.handler = api.NewNegotiationHandler(s.mockCommands, s.mockQueries)
	s.partyID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("party_id", s.partyID)
		c.Next()
	}

	sessions := s.router.Group("/api/sessions", authMiddleware)
	sessions.POST("", s.handler.OpenSessions)
	sessions.GET("", s.handler.ListSessions)
	sessions.GET("/summary", s.handler.Summary)
	sessions.GET("/:id", s.handler.GetSession)
	sessions.GET("/:id/offers", s.handler.ListOffers)
	sessions.POST("/:id/offers", s.handler.SubmitOffer)
	sessions.POST("/:id/accept", s.handler.Accept)
	sessions.POST("/:id/decline", s.handler.Decline)
	sessions.POST("/:id/extension", s.handler.RequestExtension)
}

func (s *NegotiationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNegotiationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NegotiationHandlerTestSuite))
}

type testCaseNegotiation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestOpenSessions
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestOpenSessions() {
	url := "/api/sessions"
	quoteID := uuid.New()
	reqBody := map[string]any{"quote_ids": []string{quoteID.String()}}

	s.Run("success: returns 201 Created with opened sessions", func() {
		opened := []commands.OpenedSession{{
			SessionID:  uuid.New(),
			QuoteID:    quoteID,
			Status:     "in_negotiation",
			ExpiryTime: time.Now().Add(7 * 24 * time.Hour),
		}}
		s.mockCommands.EXPECT().OpenSessions(gomock.Any(), []uuid.UUID{quoteID}).
			Return(opened, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body []resdto.OpenedSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Len(body, 1)
		s.Equal(quoteID, body[0].QuoteID)
		s.False(body[0].AlreadyExisted)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseNegotiation{
			{name: "missing quote_ids", mutate: testutil.Field("quote_ids", nil), expectCode: http.StatusBadRequest},
			{name: "empty quote_ids", mutate: testutil.Field("quote_ids", []string{}), expectCode: http.StatusBadRequest},
			{name: "malformed uuid", mutate: testutil.Field("quote_ids", []string{"not-a-uuid"}), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 Not Found for unknown quote", func() {
		s.mockCommands.EXPECT().OpenSessions(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrQuoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestListSessions / TestSummary
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestListSessions() {
	url := "/api/sessions"

	s.Run("success: returns the party's sessions", func() {
		items := []*queries.SessionListItem{
			builder.NewSessionBuilder().BuildListItem(),
			builder.NewSessionBuilder().BuildListItem(),
		}
		s.mockQueries.EXPECT().ListForParty(gomock.Any(), s.partyID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.SessionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(items[0].ID, body[0].ID)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListForParty(gomock.Any(), s.partyID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *NegotiationHandlerTestSuite) TestSummary() {
	url := "/api/sessions/summary"

	s.Run("success: returns the aggregate view", func() {
		best := builder.NewSessionBuilder().BuildListItem()
		best.LatestOffer = builder.NewOfferBuilder().WithSessionID(best.ID).BuildView()
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.partyID).
			Return(&queries.NegotiationSummary{BestPrice: best, FastestInstall: best}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.BestPrice)
		s.Equal(best.ID, body.BestPrice.ID)
		s.Nil(body.HighestRatedCounterparty)
	})

	s.Run("success: empty summary when nothing aggregates", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.partyID).
			Return(&queries.NegotiationSummary{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.BestPrice)
		s.Nil(body.FastestInstall)
	})
}

// ================================================================================
// TestGetSession / TestListOffers
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestGetSession() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String()

	s.Run("success: returns session detail", func() {
		b := builder.NewSessionBuilder()
		view := &queries.SessionView{
			ID:          sessionID,
			QuoteID:     b.QuoteID,
			HomeownerID: s.partyID,
			InstallerID: b.InstallerID,
			Status:      "in_negotiation",
			Baseline:    b.BuildQuoteTerms(),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.partyID, sessionID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(sessionID, body.ID)
		s.Equal("in_negotiation", body.Status)
		s.Nil(body.LatestOffer)
	})

	s.Run("error: 400 on malformed session id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sessions/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID format")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "session not found", queriesError: queries.ErrSessionNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Session not found"},
			{name: "not a participant", queriesError: queries.ErrNotParticipant, expectedStatus: http.StatusForbidden, expectedMsg: "Not a participant"},
			{name: "internal error", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.partyID, sessionID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *NegotiationHandlerTestSuite) TestListOffers() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/offers"

	s.Run("success: returns the ledger", func() {
		offers := []*queries.OfferView{
			builder.NewOfferBuilder().WithSessionID(sessionID).WithRound(1).BuildView(),
			builder.NewOfferBuilder().WithSessionID(sessionID).WithRound(2).BuildView(),
		}
		s.mockQueries.EXPECT().ListOffers(gomock.Any(), s.partyID, sessionID).
			Return(offers, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(1, body[0].Round)
		s.Equal(2, body[1].Round)
	})

	s.Run("error: 403 for non-participant", func() {
		s.mockQueries.EXPECT().ListOffers(gomock.Any(), s.partyID, sessionID).
			Return(nil, queries.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not a participant")
	})
}

// ================================================================================
// TestSubmitOffer
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestSubmitOffer() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/offers"
	reqBody := builder.NewOfferBuilder().BuildSubmitRequestDTO()

	s.Run("success: returns 201 Created with the new offer", func() {
		result := &commands.SubmitOfferResult{OfferID: uuid.New(), Round: 1, RoundsCompleted: 1}
		s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), s.partyID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SubmitOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.OfferID, body.OfferID)
		s.Equal(1, body.Round)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseNegotiation{
			{name: "round boundary OK (1)", mutate: testutil.Field("round", 1), expectCode: http.StatusCreated},
			{name: "round boundary OK (3)", mutate: testutil.Field("round", 3), expectCode: http.StatusCreated},
			{name: "round boundary invalid (0)", mutate: testutil.Field("round", 0), expectCode: http.StatusBadRequest},
			{name: "round boundary invalid (4)", mutate: testutil.Field("round", 4), expectCode: http.StatusBadRequest},
			{name: "price must be positive", mutate: testutil.Field("price_cents", 0), expectCode: http.StatusBadRequest},
			{name: "negative price", mutate: testutil.Field("price_cents", -100), expectCode: http.StatusBadRequest},
			{name: "install count below 1", mutate: testutil.Field("install_count", 0), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseNegotiation{
			{name: "missing field: round (required)", mutate: testutil.Field("round", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: price_cents (required)", mutate: testutil.Field("price_cents", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: install_count (required)", mutate: testutil.Field("install_count", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: install_unit (required)", mutate: testutil.Field("install_unit", nil), expectCode: http.StatusBadRequest},
		}

		units := []testCaseNegotiation{
			{name: "install unit days OK", mutate: testutil.Field("install_unit", "days"), expectCode: http.StatusCreated},
			{name: "install unit weeks OK", mutate: testutil.Field("install_unit", "weeks"), expectCode: http.StatusCreated},
			{name: "install unit months invalid", mutate: testutil.Field("install_unit", "months"), expectCode: http.StatusBadRequest},
		}

		optional := []testCaseNegotiation{
			{name: "note is optional", mutate: testutil.Field("note", nil), expectCode: http.StatusCreated},
			{name: "long note passes binding", mutate: testutil.Field("note", strings.Repeat("a", 600)), expectCode: http.StatusCreated},
		}

		allValidationTestCases := [][]testCaseNegotiation{bound, missing, units, optional}

		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), s.partyID, gomock.Any()).
							Return(&commands.SubmitOfferResult{OfferID: uuid.New(), Round: 1, RoundsCompleted: 1}, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "session not found", commandsError: commands.ErrSessionNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Session not found"},
			{name: "not a participant", commandsError: commands.ErrNotParticipant, expectedStatus: http.StatusForbidden, expectedMsg: "Not a participant"},
			{name: "session expired", commandsError: commands.ErrSessionExpired, expectedStatus: http.StatusGone, expectedMsg: "Session has expired"},
			{name: "session closed", commandsError: commands.ErrSessionClosed, expectedStatus: http.StatusGone, expectedMsg: "Session is closed"},
			{name: "round limit", commandsError: commands.ErrRoundLimitExceeded, expectedStatus: http.StatusConflict, expectedMsg: "Round limit reached"},
			{name: "out of turn", commandsError: commands.ErrOutOfTurn, expectedStatus: http.StatusConflict, expectedMsg: "Not your turn"},
			{name: "stale round", commandsError: commands.ErrInvalidRound, expectedStatus: http.StatusConflict, expectedMsg: "Offer round does not match"},
			{name: "invalid terms", commandsError: commands.ErrInvalidOfferTerms, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid offer terms"},
			{name: "internal error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), s.partyID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestAccept / TestDecline / TestRequestExtension
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestAccept() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/accept"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), s.partyID, sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no offers to accept", commandsError: commands.ErrNoOffers, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "No offers to accept"},
			{name: "session expired", commandsError: commands.ErrSessionExpired, expectedStatus: http.StatusGone, expectedMsg: "Session has expired"},
			{name: "session closed", commandsError: commands.ErrSessionClosed, expectedStatus: http.StatusGone, expectedMsg: "Session is closed"},
			{name: "session not found", commandsError: commands.ErrSessionNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Session not found"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Accept(gomock.Any(), s.partyID, sessionID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *NegotiationHandlerTestSuite) TestDecline() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/decline"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Decline(gomock.Any(), s.partyID, sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 410 on a closed session", func() {
		s.mockCommands.EXPECT().Decline(gomock.Any(), s.partyID, sessionID).
			Return(commands.ErrSessionClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "Session is closed")
	})
}

func (s *NegotiationHandlerTestSuite) TestRequestExtension() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/extension"

	s.Run("success: returns the new expiry", func() {
		newExpiry := time.Now().Add(9 * 24 * time.Hour).UTC().Truncate(time.Second)
		s.mockCommands.EXPECT().RequestExtension(gomock.Any(), s.partyID, sessionID).
			Return(newExpiry, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ExtensionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(newExpiry.Equal(body.ExpiryTime))
	})

	s.Run("error: 409 when already extended", func() {
		s.mockCommands.EXPECT().RequestExtension(gomock.Any(), s.partyID, sessionID).
			Return(time.Time{}, commands.ErrAlreadyExtended).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Extension already granted")
	})

	s.Run("error: 400 on malformed session id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sessions/bad-id/extension", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID format")
	})
}
