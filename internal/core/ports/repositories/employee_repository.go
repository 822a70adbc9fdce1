package repositories

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// EmployeeRepository is the store-facing contract for the employee aggregate:
// the GeneralInfo, ProfessionalInfo, EmployeeIndex, BankDetails, PreviousJob
// and resource collections. Absent documents surface as errors wrapping
// apperrors.ErrNotFound.
type EmployeeRepository interface {
	// CreateAggregate allocates the next employee code for prefix and creates
	// the general, professional and index documents with backfilled ids, all
	// inside a single transaction. The returned index carries the generated
	// ids; the returned general carries the assigned code.
	CreateAggregate(ctx context.Context, prefix string, general domain.GeneralInfo, professional domain.ProfessionalInfo) (*domain.EmployeeIndex, *domain.GeneralInfo, error)

	FindIndexByID(ctx context.Context, id string) (*domain.EmployeeIndex, error)
	FindIndexByGeneralID(ctx context.Context, generalID string) (*domain.EmployeeIndex, error)
	FindGeneralByID(ctx context.Context, id string) (*domain.GeneralInfo, error)
	FindGeneralByCode(ctx context.Context, empCode string) (*domain.GeneralInfo, error)
	FindProfessionalByID(ctx context.Context, id string) (*domain.ProfessionalInfo, error)

	// ListIndexPage returns one page of non-deleted index rows ordered by
	// document id ascending.
	ListIndexPage(ctx context.Context, limit, page int) ([]domain.EmployeeIndex, error)

	UpdateGeneral(ctx context.Context, id string, patch domain.GeneralPatch) error
	UpdateProfessional(ctx context.Context, id string, patch domain.ProfessionalPatch) error

	// MergeLoginDetails writes the loginDetails sub-object onto a general
	// document, preserving unrelated fields.
	MergeLoginDetails(ctx context.Context, generalID string, details domain.LoginDetails) error
	UpdateLoginDetails(ctx context.Context, generalID string, patch domain.LoginPatch) error

	SetStatus(ctx context.Context, generalID string, status domain.Status) error

	// SoftDeleteAggregate flips isDeleted on the index row and on every
	// resource document tagged with empCode, returning the resource count.
	SoftDeleteAggregate(ctx context.Context, indexID, empCode string) (int, error)

	// CreateBankDetails creates the bank document and links it into the index
	// in one batched write, returning the new bank id.
	CreateBankDetails(ctx context.Context, indexID string, bank domain.BankDetails) (string, error)
	UpdateBankDetails(ctx context.Context, bankID string, patch domain.BankPatch) error
	FindBankByID(ctx context.Context, id string) (*domain.BankDetails, error)

	FindPFByID(ctx context.Context, id string) (*domain.PFDetails, error)

	// CreatePreviousJob creates the job document and unions its id into the
	// index's previousJobId list in one batched write.
	CreatePreviousJob(ctx context.Context, indexID string, job domain.PreviousJob) (*domain.PreviousJob, error)
	UpdatePreviousJob(ctx context.Context, jobID string, patch domain.PreviousJobPatch) error

	// FindPreviousJobsByIDs and FindProjectsByIDs batch-read referenced
	// documents. Previous jobs are position-preserving with nil entries for
	// missing documents; projects drop missing and soft-deleted ones.
	FindPreviousJobsByIDs(ctx context.Context, ids []string) ([]*domain.PreviousJob, error)
	FindProjectsByIDs(ctx context.Context, ids []string) ([]domain.Project, error)
}
