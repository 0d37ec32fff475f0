package usecase

import (
	"bidroom/internal/domain/negotiation"
	"bidroom/internal/pkg/errs"
	"bidroom/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidPartyToken = errs.New("invalid party token")

// TokenValidator resolves the acting party from a bearer token.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, negotiation.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, negotiation.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidPartyToken)
	}

	role := negotiation.Role(claims.Role)
	if !role.IsValid() {
		return uuid.Nil, "", ErrInvalidPartyToken
	}
	return claims.PartyID, role, nil
}
