package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/peoplenest/payroll-backend/internal/utils/pagination"
)

// paginatedDocs reads one page of an ordered query using cursor emulation: a
// throwaway query reads the documents preceding the page to locate the
// cursor, then the real page starts just after that snapshot. Returns an
// empty page when the scan runs out before the requested page.
func paginatedDocs(ctx context.Context, q firestore.Query, limit, page int) ([]*firestore.DocumentSnapshot, error) {
	_, skip := pagination.Window(limit, page)
	if skip > 0 {
		ahead, err := q.Limit(skip).Documents(ctx).GetAll()
		if err != nil {
			return nil, err
		}
		if len(ahead) < skip {
			return nil, nil
		}
		q = q.StartAfter(ahead[len(ahead)-1])
	}
	return q.Limit(limit).Documents(ctx).GetAll()
}
