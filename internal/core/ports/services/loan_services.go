package services

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// LoanSvcFacade owns the loan lifecycle: PENDING -> APPROVED | DECLINED,
// with edits permitted in any state.
type LoanSvcFacade interface {
	// CreateLoan validates name/amount, checks the employee exists and
	// creates the PENDING loan linked into the employee's loanId list.
	CreateLoan(ctx context.Context, employeeID string, loan domain.Loan) (string, error)

	// ApproveLoan validates the numeric fields (decimal amounts,
	// installment > 0) before any state change.
	ApproveLoan(ctx context.Context, id string, approval domain.LoanApproval) error

	CancelLoan(ctx context.Context, id, reason string) error
	EditLoan(ctx context.Context, id string, patch domain.LoanPatch) error
	ListLoans(ctx context.Context, limit, page int, filter domain.LoanFilter) ([]domain.LoanSummary, error)
	GetLoanByID(ctx context.Context, id string) (*domain.Loan, error)
}
