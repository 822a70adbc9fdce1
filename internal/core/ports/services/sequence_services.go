package services

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// SequenceSvcFacade manages the sequence-number registry.
type SequenceSvcFacade interface {
	CreateSequence(ctx context.Context, seq domain.SequenceNumber) (string, error)
	ListSequences(ctx context.Context) ([]domain.SequenceNumber, error)
}
