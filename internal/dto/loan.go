package dto

import (
	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// CreateLoanRequest opens a PENDING loan for the employee in the route path.
type CreateLoanRequest struct {
	EmpName   string `json:"empName" binding:"required"`
	AmountReq string `json:"amountReq" binding:"required"`
	Note      string `json:"note"`
}

func (r CreateLoanRequest) ToDomain() domain.Loan {
	return domain.Loan{
		EmpName:   r.EmpName,
		AmountReq: r.AmountReq,
		Note:      r.Note,
	}
}

// ApproveLoanRequest carries the approval decision.
type ApproveLoanRequest struct {
	AmountApp   string `json:"amountApp" binding:"required"`
	Installment string `json:"installment" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StaffNote   string `json:"staffNote" binding:"required"`
}

func (r ApproveLoanRequest) ToDomain() domain.LoanApproval {
	return domain.LoanApproval{
		AmountApp:   r.AmountApp,
		Installment: r.Installment,
		Date:        r.Date,
		StaffNote:   r.StaffNote,
	}
}

// CancelLoanRequest declines a loan with a reason.
type CancelLoanRequest struct {
	Reason string `json:"cancelReason" binding:"required"`
}

// EditLoanRequest defines the data allowed for a sparse loan edit.
type EditLoanRequest struct {
	AmountApp   *string `json:"amountApp"`
	StaffNote   *string `json:"staffNote"`
	Installment *string `json:"installment"`
	Date        *string `json:"date"`
}

func (r EditLoanRequest) ToPatch() domain.LoanPatch {
	return domain.LoanPatch{
		AmountApp:   r.AmountApp,
		StaffNote:   r.StaffNote,
		Installment: r.Installment,
		Date:        r.Date,
	}
}

// ListLoansParams defines query parameters for the loan listing. Status may
// repeat to select multiple lifecycle states.
type ListLoansParams struct {
	Limit     int      `form:"limit,default=10"`
	Page      int      `form:"page,default=1"`
	Status    []string `form:"status"`
	StartDate string   `form:"startDate"`
	EndDate   string   `form:"endDate"`
}

func (p ListLoansParams) ToFilter() domain.LoanFilter {
	statuses := make([]domain.LoanStatus, 0, len(p.Status))
	for _, s := range p.Status {
		statuses = append(statuses, domain.LoanStatus(s))
	}
	return domain.LoanFilter{
		Statuses:  statuses,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}
