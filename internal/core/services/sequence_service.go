package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
)

type sequenceService struct {
	seqRepo portsrepo.SequenceRepository
}

// NewSequenceService creates the sequence-number registry service.
func NewSequenceService(seqRepo portsrepo.SequenceRepository) *sequenceService {
	return &sequenceService{seqRepo: seqRepo}
}

func (s *sequenceService) CreateSequence(ctx context.Context, seq domain.SequenceNumber) (string, error) {
	seq.Type = strings.TrimSpace(seq.Type)
	seq.Prefix = strings.TrimSpace(seq.Prefix)
	if seq.Type == "" || seq.Prefix == "" {
		return "", fmt.Errorf("%w: type and prefix are required", apperrors.ErrValidation)
	}
	seq.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	id, err := s.seqRepo.CreateSequence(ctx, seq)
	if err != nil {
		return "", fmt.Errorf("failed to create sequence: %w", err)
	}
	return id, nil
}

func (s *sequenceService) ListSequences(ctx context.Context) ([]domain.SequenceNumber, error) {
	seqs, err := s.seqRepo.ListSequences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sequences: %w", err)
	}
	return seqs, nil
}
