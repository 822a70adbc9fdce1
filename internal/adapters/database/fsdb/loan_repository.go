package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

type loanRepository struct {
	client *firestore.Client
}

// NewLoanRepository creates the Firestore-backed loan store.
func NewLoanRepository(client *firestore.Client) *loanRepository {
	return &loanRepository{client: client}
}

// CreateLoan writes the loan document and links it into the owning employee's
// loanId list in one atomic batch.
func (r *loanRepository) CreateLoan(ctx context.Context, employeeID string, loan domain.Loan) (string, error) {
	loanRef := r.client.Collection(loanCollection).NewDoc()
	loan.ID = loanRef.ID

	batch := r.client.Batch()
	batch.Set(loanRef, loan)
	batch.Update(r.client.Collection(employeeCollection).Doc(employeeID),
		[]firestore.Update{{Path: "loanId", Value: firestore.ArrayUnion(loanRef.ID)}})
	if _, err := batch.Commit(ctx); err != nil {
		return "", notFound(err, "employee", employeeID)
	}
	return loanRef.ID, nil
}

func (r *loanRepository) FindLoanByID(ctx context.Context, id string) (*domain.Loan, error) {
	snap, err := r.client.Collection(loanCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, "loan", id)
	}
	var loan domain.Loan
	if err := snap.DataTo(&loan); err != nil {
		return nil, err
	}
	loan.ID = snap.Ref.ID
	return &loan, nil
}

// ApproveLoan applies the approval in a single update: the approved amount
// seeds both the balance and the remaining payback, and the activity entry is
// appended via array union.
func (r *loanRepository) ApproveLoan(ctx context.Context, id string, approval domain.LoanApproval, activity string) error {
	_, err := r.client.Collection(loanCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.LoanApproved},
		{Path: "amountApp", Value: approval.AmountApp},
		{Path: "balance", Value: approval.AmountApp},
		{Path: "paybackTerm.installment", Value: approval.Installment},
		{Path: "paybackTerm.date", Value: approval.Date},
		{Path: "paybackTerm.remaining", Value: approval.AmountApp},
		{Path: "staffNote", Value: approval.StaffNote},
		{Path: "activity", Value: firestore.ArrayUnion(activity)},
	})
	return notFound(err, "loan", id)
}

func (r *loanRepository) CancelLoan(ctx context.Context, id, reason, activity string) error {
	_, err := r.client.Collection(loanCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.LoanDeclined},
		{Path: "cancelReason", Value: reason},
		{Path: "activity", Value: firestore.ArrayUnion(activity)},
	})
	return notFound(err, "loan", id)
}

func (r *loanRepository) UpdateLoan(ctx context.Context, id string, patch domain.LoanPatch) error {
	var ups []firestore.Update
	if patch.AmountApp != nil {
		ups = append(ups, firestore.Update{Path: "amountApp", Value: *patch.AmountApp})
	}
	if patch.StaffNote != nil {
		ups = append(ups, firestore.Update{Path: "staffNote", Value: *patch.StaffNote})
	}
	if patch.Installment != nil {
		ups = append(ups, firestore.Update{Path: "paybackTerm.installment", Value: *patch.Installment})
	}
	if patch.Date != nil {
		ups = append(ups, firestore.Update{Path: "paybackTerm.date", Value: *patch.Date})
	}
	if len(ups) == 0 {
		return nil
	}
	_, err := r.client.Collection(loanCollection).Doc(id).Update(ctx, ups)
	return notFound(err, "loan", id)
}

// ListLoans pages over loans ordered by payback date descending. Status
// membership and the inclusive date range are pushed down to the store query;
// the inequality field leads the ordering as the store requires.
func (r *loanRepository) ListLoans(ctx context.Context, limit, page int, filter domain.LoanFilter) ([]domain.Loan, error) {
	q := r.client.Collection(loanCollection).Query
	if len(filter.Statuses) > 0 {
		q = q.Where("status", "in", filter.Statuses)
	}
	if filter.StartDate != "" {
		q = q.Where("paybackTerm.date", ">=", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("paybackTerm.date", "<=", filter.EndDate)
	}
	q = q.OrderBy("paybackTerm.date", firestore.Desc)

	snaps, err := paginatedDocs(ctx, q, limit, page)
	if err != nil {
		return nil, err
	}
	loans := make([]domain.Loan, 0, len(snaps))
	for _, snap := range snaps {
		var loan domain.Loan
		if err := snap.DataTo(&loan); err != nil {
			return nil, err
		}
		loan.ID = snap.Ref.ID
		loans = append(loans, loan)
	}
	return loans, nil
}

// FindLoansByIDs batch-reads loans preserving list order, with nil holes for
// missing documents.
func (r *loanRepository) FindLoansByIDs(ctx context.Context, ids []string) ([]*domain.Loan, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = r.client.Collection(loanCollection).Doc(id)
	}
	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	loans := make([]*domain.Loan, len(snaps))
	for i, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var loan domain.Loan
		if err := snap.DataTo(&loan); err != nil {
			return nil, err
		}
		loan.ID = snap.Ref.ID
		loans[i] = &loan
	}
	return loans, nil
}
