package repositories

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// LoanRepository is the store-facing contract for the loanDetails collection.
type LoanRepository interface {
	// CreateLoan creates the loan document and unions its id into the owning
	// employee's loanId list in one batched write, returning the new loan id.
	CreateLoan(ctx context.Context, employeeID string, loan domain.Loan) (string, error)

	FindLoanByID(ctx context.Context, id string) (*domain.Loan, error)

	// ApproveLoan applies the approval fields, flips status to APPROVED, sets
	// balance and payback term from the approved amount and appends the
	// activity entry, all in one update.
	ApproveLoan(ctx context.Context, id string, approval domain.LoanApproval, activity string) error

	// CancelLoan flips status to DECLINED, records the cancellation reason
	// and appends the activity entry.
	CancelLoan(ctx context.Context, id, reason, activity string) error

	// UpdateLoan applies a sparse edit; nested payback fields go through
	// dotted-path updates.
	UpdateLoan(ctx context.Context, id string, patch domain.LoanPatch) error

	// ListLoans returns one page ordered by payback date descending, with the
	// optional status/date-range filters applied by the store query.
	ListLoans(ctx context.Context, limit, page int, filter domain.LoanFilter) ([]domain.Loan, error)

	// FindLoansByIDs batch-reads loans position-preserving: a missing
	// document stays in place as a nil entry.
	FindLoansByIDs(ctx context.Context, ids []string) ([]*domain.Loan, error)
}
