package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

type sequenceRepository struct {
	client *firestore.Client
}

// NewSequenceRepository creates the Firestore-backed sequence registry store.
func NewSequenceRepository(client *firestore.Client) *sequenceRepository {
	return &sequenceRepository{client: client}
}

func (r *sequenceRepository) CreateSequence(ctx context.Context, seq domain.SequenceNumber) (string, error) {
	ref := r.client.Collection(sequenceCollection).NewDoc()
	if _, err := ref.Set(ctx, seq); err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *sequenceRepository) ListSequences(ctx context.Context) ([]domain.SequenceNumber, error) {
	snaps, err := r.client.Collection(sequenceCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	seqs := make([]domain.SequenceNumber, 0, len(snaps))
	for _, snap := range snaps {
		var seq domain.SequenceNumber
		if err := snap.DataTo(&seq); err != nil {
			return nil, err
		}
		seq.ID = snap.Ref.ID
		seqs = append(seqs, seq)
	}
	return seqs, nil
}
