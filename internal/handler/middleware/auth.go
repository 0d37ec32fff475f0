package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/handler/httperr"
	"bidroom/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware resolves the acting party from the Authorization
// header. There is no account system behind it; the token itself is
// the party's credential.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPartyIDKey   = "party_id"
	ctxPartyRoleKey = "party_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireParty() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		partyID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxPartyIDKey, partyID)
		c.Set(ctxPartyRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"party_id": partyID.String(),
			"role":     role.String(),
		})
		c.Next()
	}
}

func GetPartyID(c *gin.Context) (uuid.UUID, bool) {
	partyID, exists := c.Get(ctxPartyIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := partyID.(uuid.UUID)
	return id, ok
}

func GetPartyRole(c *gin.Context) (negotiation.Role, bool) {
	partyRole, exists := c.Get(ctxPartyRoleKey)
	if !exists {
		return "", false
	}

	role, ok := partyRole.(negotiation.Role)
	return role, ok
}
