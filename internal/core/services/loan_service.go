package services

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const activityDateLayout = "2006-01-02"

type loanService struct {
	loanRepo portsrepo.LoanRepository
	empRepo  portsrepo.EmployeeRepository
}

// NewLoanService creates the loan lifecycle manager.
func NewLoanService(loanRepo portsrepo.LoanRepository, empRepo portsrepo.EmployeeRepository) *loanService {
	return &loanService{loanRepo: loanRepo, empRepo: empRepo}
}

// CreateLoan creates a PENDING loan for an existing employee and links it
// into the employee's loanId list atomically.
func (s *loanService) CreateLoan(ctx context.Context, employeeID string, loan domain.Loan) (string, error) {
	if loan.EmpName == "" || loan.AmountReq == "" {
		return "", fmt.Errorf("%w: employee name and requested amount are required", apperrors.ErrValidation)
	}
	if _, err := s.empRepo.FindIndexByID(ctx, employeeID); err != nil {
		return "", fmt.Errorf("employee not found: %w", err)
	}

	reqDate := time.Now().UTC().Format(activityDateLayout)
	loan.ReqDate = reqDate
	loan.Status = domain.LoanPending
	loan.AmountApp = ""
	loan.Balance = ""
	loan.PaybackTerm = domain.PaybackTerm{}
	loan.ApprovedBy = ""
	loan.Activity = []string{fmt.Sprintf("Loan requested on %s", reqDate)}

	id, err := s.loanRepo.CreateLoan(ctx, employeeID, loan)
	if err != nil {
		return "", fmt.Errorf("failed to create loan for employee %s: %w", employeeID, err)
	}
	return id, nil
}

// ApproveLoan validates the numeric fields before any state change: both
// amounts must parse as decimals and the installment must be positive.
func (s *loanService) ApproveLoan(ctx context.Context, id string, approval domain.LoanApproval) error {
	if approval.AmountApp == "" || approval.Installment == "" || approval.Date == "" || approval.StaffNote == "" {
		return fmt.Errorf("%w: missing required approval details", apperrors.ErrValidation)
	}
	if _, err := s.loanRepo.FindLoanByID(ctx, id); err != nil {
		return fmt.Errorf("loan record not found: %w", err)
	}
	if _, err := decimal.NewFromString(approval.AmountApp); err != nil {
		return fmt.Errorf("%w: invalid approved amount or installment value", apperrors.ErrValidation)
	}
	installment, err := decimal.NewFromString(approval.Installment)
	if err != nil || installment.Sign() <= 0 {
		return fmt.Errorf("%w: invalid approved amount or installment value", apperrors.ErrValidation)
	}

	activity := fmt.Sprintf("Loan approved on %s", time.Now().UTC().Format(activityDateLayout))
	if err := s.loanRepo.ApproveLoan(ctx, id, approval, activity); err != nil {
		return fmt.Errorf("failed to approve loan %s: %w", id, err)
	}
	return nil
}

// CancelLoan declines the loan and records the reason. No numeric
// validation applies to cancellation.
func (s *loanService) CancelLoan(ctx context.Context, id, reason string) error {
	if _, err := s.loanRepo.FindLoanByID(ctx, id); err != nil {
		return fmt.Errorf("loan record not found: %w", err)
	}
	activity := fmt.Sprintf("Loan cancelled on %s", time.Now().UTC().Format(activityDateLayout))
	if err := s.loanRepo.CancelLoan(ctx, id, reason, activity); err != nil {
		return fmt.Errorf("failed to cancel loan %s: %w", id, err)
	}
	return nil
}

// EditLoan applies a sparse update regardless of the loan's current status.
func (s *loanService) EditLoan(ctx context.Context, id string, patch domain.LoanPatch) error {
	if _, err := s.loanRepo.FindLoanByID(ctx, id); err != nil {
		return fmt.Errorf("loan not found: %w", err)
	}
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no valid fields to update", apperrors.ErrValidation)
	}
	if err := s.loanRepo.UpdateLoan(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to edit loan %s: %w", id, err)
	}
	return nil
}

// ListLoans pages over loans ordered by payback date descending and projects
// each row to its summary, with empty-string defaults for unset fields.
func (s *loanService) ListLoans(ctx context.Context, limit, page int, filter domain.LoanFilter) ([]domain.LoanSummary, error) {
	loans, err := s.loanRepo.ListLoans(ctx, limit, page, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	summaries := make([]domain.LoanSummary, len(loans))
	for i, loan := range loans {
		summaries[i] = domain.LoanSummary{
			ID:          loan.ID,
			Name:        loan.EmpName,
			AmountReq:   loan.AmountReq,
			Status:      loan.Status,
			AmountApp:   loan.AmountApp,
			Installment: loan.PaybackTerm.Installment,
			Balance:     loan.Balance,
		}
	}
	return summaries, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, id string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loan not found: %w", err)
	}
	return loan, nil
}
