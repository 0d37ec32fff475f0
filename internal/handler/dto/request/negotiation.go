package request

import (
	"strings"

	"github.com/google/uuid"
)

type OpenSessionsRequest struct {
	QuoteIDs []uuid.UUID `json:"quote_ids" binding:"required,min=1,max=50"`
}

type SubmitOfferRequest struct {
	Round        int     `json:"round" binding:"required,min=1,max=3"`
	PriceCents   int64   `json:"price_cents" binding:"required,gt=0"`
	InstallCount int     `json:"install_count" binding:"required,min=1"`
	InstallUnit  string  `json:"install_unit" binding:"required,oneof=days weeks"`
	Note         *string `json:"note,omitempty"`
}

func (r SubmitOfferRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}
