package repositories

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// SequenceRepository is the store-facing contract for the sequenceNumbers
// registry.
type SequenceRepository interface {
	CreateSequence(ctx context.Context, seq domain.SequenceNumber) (string, error)
	ListSequences(ctx context.Context) ([]domain.SequenceNumber, error)
}
