package services

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// EmployeeSvcFacade owns the consistency discipline for the employee
// aggregate (general, professional, index, bank, login mirror) plus the
// aggregation reader.
type EmployeeSvcFacade interface {
	// CreateEmployee validates the full required-field set, allocates an
	// employee code for the department and writes the three-document
	// aggregate atomically.
	CreateEmployee(ctx context.Context, general domain.GeneralInfo, professional domain.ProfessionalInfo) (*domain.EmployeeIndex, *domain.GeneralInfo, error)

	ListEmployees(ctx context.Context, limit, page int) ([]domain.EmployeeSummary, error)
	GetEmployeeByID(ctx context.Context, id string) (*domain.EmployeeIndex, error)
	ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.EmployeeSummary, error)
	DeleteEmployee(ctx context.Context, id string) (int, error)

	EditGeneral(ctx context.Context, generalID string, patch domain.GeneralPatch) error
	EditProfessional(ctx context.Context, professionalID string, patch domain.ProfessionalPatch) error

	// AddLoginDetails merges credentials into the general record and then
	// provisions the identity; it returns the role copied from the
	// professional record. The two writes are not atomic with each other.
	AddLoginDetails(ctx context.Context, generalID string, details domain.LoginDetails) (string, error)
	EditLoginDetails(ctx context.Context, generalID string, patch domain.LoginPatch) error

	// AddBankDetails is idempotent: when the employee already has a linked
	// bank record its id is returned with existed=true.
	AddBankDetails(ctx context.Context, employeeID string, bank domain.BankDetails) (bankDetailID string, existed bool, err error)
	EditBankDetails(ctx context.Context, bankID string, patch domain.BankPatch) error

	AddPreviousJob(ctx context.Context, employeeID string, job domain.PreviousJob) (*domain.PreviousJob, error)
	EditPreviousJob(ctx context.Context, jobID string, patch domain.PreviousJobPatch) error

	GetCompleteDetailsByCode(ctx context.Context, empCode string) (*domain.CompleteEmployee, error)
}
