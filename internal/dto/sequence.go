package dto

import (
	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// CreateSequenceRequest registers a numbering scheme.
type CreateSequenceRequest struct {
	Type                string `json:"type" binding:"required"`
	Prefix              string `json:"prefix" binding:"required"`
	NextAvailableNumber int    `json:"nextAvailableNumber" binding:"min=0"`
	CreatedBy           string `json:"createdBy"`
}

func (r CreateSequenceRequest) ToDomain() domain.SequenceNumber {
	return domain.SequenceNumber{
		Type:                r.Type,
		Prefix:              r.Prefix,
		NextAvailableNumber: r.NextAvailableNumber,
		CreatedBy:           r.CreatedBy,
	}
}

// CreateSequenceResponse returns the new registry entry id.
type CreateSequenceResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
