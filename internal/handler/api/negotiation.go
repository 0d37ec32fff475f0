package api

import (
	"errors"
	"net/http"

	reqdto "bidroom/internal/handler/dto/request"
	resdto "bidroom/internal/handler/dto/response"
	"bidroom/internal/handler/middleware"
	"bidroom/internal/usecase/commands"
	"bidroom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NegotiationHandler struct {
	negotiationCommands commands.NegotiationCommands
	negotiationQueries  queries.NegotiationQueries
}

func NewNegotiationHandler(negotiationCommands commands.NegotiationCommands, negotiationQueries queries.NegotiationQueries) *NegotiationHandler {
	return &NegotiationHandler{
		negotiationCommands: negotiationCommands,
		negotiationQueries:  negotiationQueries,
	}
}

// @Summary Open negotiation sessions
// @Description Open a negotiation session for each quote; quotes that already have one are returned unchanged
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenSessionsRequest true "Quote ids to open sessions for"
// @Success 201 {array} resdto.OpenedSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions [post]
func (h *NegotiationHandler) OpenSessions(c *gin.Context) {
	var req reqdto.OpenSessionsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	opened, err := h.negotiationCommands.OpenSessions(c.Request.Context(), req.QuoteIDs)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Quote not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]resdto.OpenedSessionResponse, len(opened))
	for i, s := range opened {
		response[i] = resdto.FromOpenedSession(s)
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary List my sessions
// @Description List the current party's sessions, soonest-expiring first
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionListResponse
// @Failure 401 {object} map[string]string
// @Router /sessions [get]
func (h *NegotiationHandler) ListSessions(c *gin.Context) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.negotiationQueries.ListForParty(c.Request.Context(), partyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SessionListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromSessionListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Negotiation summary
// @Description Best price, fastest install and highest-rated counterparty across open sessions with at least one offer
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SummaryResponse
// @Failure 401 {object} map[string]string
// @Router /sessions/summary [get]
func (h *NegotiationHandler) Summary(c *gin.Context) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	summary, err := h.negotiationQueries.Summary(c.Request.Context(), partyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Get session
// @Description Session detail including effective status, time remaining and current terms
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *NegotiationHandler) GetSession(c *gin.Context) {
	partyID, sessionID, ok := h.partyAndSessionID(c)
	if !ok {
		return
	}

	view, err := h.negotiationQueries.GetByID(c.Request.Context(), partyID, sessionID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary List offers
// @Description The session's offer ledger in round order
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/offers [get]
func (h *NegotiationHandler) ListOffers(c *gin.Context) {
	partyID, sessionID, ok := h.partyAndSessionID(c)
	if !ok {
		return
	}

	offers, err := h.negotiationQueries.ListOffers(c.Request.Context(), partyID, sessionID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	response := make([]*resdto.OfferResponse, len(offers))
	for i, offer := range offers {
		response[i] = resdto.FromOfferView(offer)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Submit counter-offer
// @Description Append a counter-offer to the session ledger
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SubmitOfferRequest true "Offer terms"
// @Success 201 {object} resdto.SubmitOfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /sessions/{id}/offers [post]
func (h *NegotiationHandler) SubmitOffer(c *gin.Context) {
	partyID, sessionID, ok := h.partyAndSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.negotiationCommands.SubmitOffer(c.Request.Context(), partyID, commands.SubmitOfferInput{
		SessionID:    sessionID,
		Round:        req.Round,
		PriceCents:   req.PriceCents,
		InstallCount: req.InstallCount,
		InstallUnit:  req.InstallUnit,
		Note:         req.GetNote(),
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.SubmitOfferResponse{
		OfferID:         result.OfferID,
		Round:           result.Round,
		RoundsCompleted: result.RoundsCompleted,
	})
}

// @Summary Accept latest offer
// @Description Close the session in favor of the latest offer; the quote becomes a deal and contact details unlock
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sessions/{id}/accept [post]
func (h *NegotiationHandler) Accept(c *gin.Context) {
	partyID, sessionID, ok := h.partyAndSessionID(c)
	if !ok {
		return
	}

	if err := h.negotiationCommands.Accept(c.Request.Context(), partyID, sessionID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Decline negotiation
// @Description Close the session as declined
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /sessions/{id}/decline [post]
func (h *NegotiationHandler) Decline(c *gin.Context) {
	partyID, sessionID, ok := h.partyAndSessionID(c)
	if !ok {
		return
	}

	if err := h.negotiationCommands.Decline(c.Request.Context(), partyID, sessionID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Request extension
// @Description Push the session expiry out by 48 hours, once per session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.ExtensionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /sessions/{id}/extension [post]
func (h *NegotiationHandler) RequestExtension(c *gin.Context) {
	partyID, sessionID, ok := h.partyAndSessionID(c)
	if !ok {
		return
	}

	newExpiry, err := h.negotiationCommands.RequestExtension(c.Request.Context(), partyID, sessionID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ExtensionResponse{ExpiryTime: newExpiry})
}

func (h *NegotiationHandler) partyAndSessionID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return partyID, sessionID, true
}

func (h *NegotiationHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found",
		})
	case errors.Is(err, commands.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not a participant of this session",
		})
	case errors.Is(err, commands.ErrSessionExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Session has expired",
		})
	case errors.Is(err, commands.ErrSessionClosed):
		c.JSON(http.StatusGone, gin.H{
			"error": "Session is closed",
		})
	case errors.Is(err, commands.ErrRoundLimitExceeded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Round limit reached",
		})
	case errors.Is(err, commands.ErrOutOfTurn):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Not your turn",
		})
	case errors.Is(err, commands.ErrInvalidRound):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Offer round does not match session state",
		})
	case errors.Is(err, commands.ErrAlreadyExtended):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Extension already granted",
		})
	case errors.Is(err, commands.ErrNoOffers):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No offers to accept",
		})
	case errors.Is(err, commands.ErrInvalidOfferTerms):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer terms",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *NegotiationHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found",
		})
	case errors.Is(err, queries.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not a participant of this session",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
