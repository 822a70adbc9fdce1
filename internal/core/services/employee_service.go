package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
	"github.com/peoplenest/payroll-backend/internal/core/ports/providers"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	"github.com/peoplenest/payroll-backend/internal/utils"
	"golang.org/x/sync/errgroup"
)

type employeeService struct {
	empRepo  portsrepo.EmployeeRepository
	loanRepo portsrepo.LoanRepository
	userRepo portsrepo.UserRepository
	identity providers.Identity
}

// NewEmployeeService creates the employee aggregate manager.
func NewEmployeeService(empRepo portsrepo.EmployeeRepository, loanRepo portsrepo.LoanRepository, userRepo portsrepo.UserRepository, identity providers.Identity) *employeeService {
	return &employeeService{
		empRepo:  empRepo,
		loanRepo: loanRepo,
		userRepo: userRepo,
		identity: identity,
	}
}

// CreateEmployee validates the full required-field set and writes the
// three-document aggregate in one transaction. The employee code is
// allocated from the department's counter inside that same transaction.
func (s *employeeService) CreateEmployee(ctx context.Context, general domain.GeneralInfo, professional domain.ProfessionalInfo) (*domain.EmployeeIndex, *domain.GeneralInfo, error) {
	if general.Name.First == "" || general.PrimaryEmail == "" || general.Gender == "" || general.PhoneNum.Num == "" ||
		professional.JoiningDate == "" || professional.Department == "" || professional.Designation == "" ||
		professional.Location == "" || professional.ReportingManager == "" || professional.WorkWeek == "" ||
		professional.HolidayGroup == "" || professional.CTCAnnual == "" || professional.PayslipComponent == "" ||
		professional.Role == "" {
		return nil, nil, fmt.Errorf("%w: missing required employee fields", apperrors.ErrValidation)
	}

	if general.Status == "" {
		general.Status = domain.StatusActive
	}

	prefix := domain.PrefixForDepartment(professional.Department)
	index, created, err := s.empRepo.CreateAggregate(ctx, prefix, general, professional)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create employee aggregate: %w", err)
	}
	return index, created, nil
}

// ListEmployees pages over non-deleted index rows and hydrates each row with
// its general and professional records, all rows in the page in parallel.
// Rows whose general or professional record is missing are dropped.
func (s *employeeService) ListEmployees(ctx context.Context, limit, page int) ([]domain.EmployeeSummary, error) {
	rows, err := s.empRepo.ListIndexPage(ctx, limit, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	results := make([]*domain.EmployeeSummary, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		g.Go(func() error {
			summary, err := s.loadSummary(gctx, row)
			if err != nil {
				return err
			}
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to hydrate employee page: %w", err)
	}

	summaries := make([]domain.EmployeeSummary, 0, len(rows))
	for _, r := range results {
		if r != nil {
			summaries = append(summaries, *r)
		}
	}
	return summaries, nil
}

// loadSummary reads the general and professional records concurrently and
// assembles the listing row. A missing record yields (nil, nil).
func (s *employeeService) loadSummary(ctx context.Context, row domain.EmployeeIndex) (*domain.EmployeeSummary, error) {
	var (
		general      *domain.GeneralInfo
		professional *domain.ProfessionalInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec, err := s.empRepo.FindGeneralByID(gctx, row.GeneralID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		general = rec
		return nil
	})
	g.Go(func() error {
		rec, err := s.empRepo.FindProfessionalByID(gctx, row.ProfessionalID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		professional = rec
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if general == nil || professional == nil {
		return nil, nil
	}
	summary := summarize(row.ID, general, professional)
	return &summary, nil
}

func summarize(employeeID string, general *domain.GeneralInfo, professional *domain.ProfessionalInfo) domain.EmployeeSummary {
	return domain.EmployeeSummary{
		ID:               employeeID,
		EmployeeCode:     general.EmpCode,
		EmployeeName:     strings.TrimSpace(general.Name.First + " " + general.Name.Last),
		JoiningDate:      professional.JoiningDate,
		Designation:      professional.Designation,
		Department:       professional.Department,
		Location:         professional.Location,
		Gender:           general.Gender,
		Status:           general.Status,
		PayslipComponent: professional.PayslipComponent,
	}
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, id string) (*domain.EmployeeIndex, error) {
	index, err := s.empRepo.FindIndexByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return index, nil
}

// ChangeStatus writes the new status onto the general record only; the
// professional record is re-read for the summary but never mutated.
func (s *employeeService) ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.EmployeeSummary, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", apperrors.ErrValidation)
	}
	index, err := s.empRepo.FindIndexByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to change status of employee %s: %w", id, err)
	}
	if err := s.empRepo.SetStatus(ctx, index.GeneralID, status); err != nil {
		return nil, fmt.Errorf("failed to change status of employee %s: %w", id, err)
	}
	summary, err := s.loadSummary(ctx, *index)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read employee %s after status change: %w", id, err)
	}
	if summary == nil {
		return nil, fmt.Errorf("employee %s records incomplete after status change: %w", id, apperrors.ErrNotFound)
	}
	return summary, nil
}

// DeleteEmployee soft-deletes the index row and every resource document
// carrying the employee's code.
func (s *employeeService) DeleteEmployee(ctx context.Context, id string) (int, error) {
	index, err := s.empRepo.FindIndexByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	general, err := s.empRepo.FindGeneralByID(ctx, index.GeneralID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if general.EmpCode == "" {
		return 0, fmt.Errorf("%w: employee %s does not have an empCode", apperrors.ErrValidation, id)
	}
	deleted, err := s.empRepo.SoftDeleteAggregate(ctx, id, general.EmpCode)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	return deleted, nil
}

func (s *employeeService) EditGeneral(ctx context.Context, generalID string, patch domain.GeneralPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no valid fields to update", apperrors.ErrValidation)
	}
	if _, err := s.empRepo.FindGeneralByID(ctx, generalID); err != nil {
		return fmt.Errorf("failed to edit general info %s: %w", generalID, err)
	}
	if err := s.empRepo.UpdateGeneral(ctx, generalID, patch); err != nil {
		return fmt.Errorf("failed to edit general info %s: %w", generalID, err)
	}
	return nil
}

func (s *employeeService) EditProfessional(ctx context.Context, professionalID string, patch domain.ProfessionalPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no valid fields to update", apperrors.ErrValidation)
	}
	if _, err := s.empRepo.FindProfessionalByID(ctx, professionalID); err != nil {
		return fmt.Errorf("failed to edit professional info %s: %w", professionalID, err)
	}
	if err := s.empRepo.UpdateProfessional(ctx, professionalID, patch); err != nil {
		return fmt.Errorf("failed to edit professional info %s: %w", professionalID, err)
	}
	return nil
}

// AddLoginDetails merges the credential payload into the general record and
// then provisions the identity with the professional record's role. The two
// writes are deliberately sequential and non-atomic: a provisioning failure
// leaves the general record updated without an identity.
func (s *employeeService) AddLoginDetails(ctx context.Context, generalID string, details domain.LoginDetails) (string, error) {
	if _, err := s.empRepo.FindGeneralByID(ctx, generalID); err != nil {
		return "", fmt.Errorf("general info not found: %w", err)
	}
	index, err := s.empRepo.FindIndexByGeneralID(ctx, generalID)
	if err != nil {
		return "", fmt.Errorf("employee record not found: %w", err)
	}
	if index.ProfessionalID == "" {
		return "", fmt.Errorf("%w: professionalId missing in employee document", apperrors.ErrValidation)
	}
	professional, err := s.empRepo.FindProfessionalByID(ctx, index.ProfessionalID)
	if err != nil {
		return "", fmt.Errorf("professional info not found: %w", err)
	}
	if details.Username == "" {
		return "", fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	if err := s.empRepo.MergeLoginDetails(ctx, generalID, details); err != nil {
		return "", fmt.Errorf("failed to merge login details for %s: %w", generalID, err)
	}

	// Username doubles as email and display name on the identity record.
	uid, err := s.identity.CreateIdentity(ctx, details.Username, details.Password, details.Username)
	if err != nil {
		return "", fmt.Errorf("failed to provision identity for %s: %w", details.Username, err)
	}
	hash, err := utils.HashPassword(details.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash mirrored credential: %w", err)
	}
	record := domain.UserRecord{
		UID:          uid,
		Email:        details.Username,
		DisplayName:  details.Username,
		Role:         domain.Role(professional.Role),
		PasswordHash: hash,
		LoginEnable:  details.LoginEnable,
		AccLocked:    details.AccLocked,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.userRepo.SaveUser(ctx, record); err != nil {
		return "", fmt.Errorf("failed to mirror identity record for %s: %w", uid, err)
	}
	return professional.Role, nil
}

// EditLoginDetails applies the patch to the general record's loginDetails
// sub-object and to the users mirror as two independent merge writes.
func (s *employeeService) EditLoginDetails(ctx context.Context, generalID string, patch domain.LoginPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no valid fields to update", apperrors.ErrValidation)
	}
	general, err := s.empRepo.FindGeneralByID(ctx, generalID)
	if err != nil {
		return fmt.Errorf("general info not found: %w", err)
	}
	if err := s.empRepo.UpdateLoginDetails(ctx, generalID, patch); err != nil {
		return fmt.Errorf("failed to update login details for %s: %w", generalID, err)
	}

	if general.LoginDetails == nil || general.LoginDetails.Username == "" {
		// No provisioned identity to mirror onto.
		return nil
	}
	user, err := s.userRepo.FindUserByEmail(ctx, general.LoginDetails.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up identity mirror for %s: %w", generalID, err)
	}
	var hash *string
	if patch.Password != nil {
		h, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return fmt.Errorf("failed to hash mirrored credential: %w", err)
		}
		hash = &h
	}
	if err := s.userRepo.UpdateUserLogin(ctx, user.UID, hash, patch); err != nil {
		return fmt.Errorf("failed to update identity mirror for %s: %w", generalID, err)
	}
	return nil
}

// AddBankDetails is idempotent by construction: a second call for the same
// employee returns the already-linked bank id without creating a duplicate.
func (s *employeeService) AddBankDetails(ctx context.Context, employeeID string, bank domain.BankDetails) (string, bool, error) {
	if bank.AccountType == "" || bank.AccountName == "" || bank.AccountNum == "" ||
		bank.IFSCCode == "" || bank.BankName == "" || bank.BranchName == "" {
		return "", false, fmt.Errorf("%w: missing required bank detail fields", apperrors.ErrValidation)
	}
	index, err := s.empRepo.FindIndexByID(ctx, employeeID)
	if err != nil {
		return "", false, fmt.Errorf("employee not found: %w", err)
	}
	if index.BankDetailID != "" {
		return index.BankDetailID, true, nil
	}
	bankID, err := s.empRepo.CreateBankDetails(ctx, employeeID, bank)
	if err != nil {
		return "", false, fmt.Errorf("failed to add bank details for employee %s: %w", employeeID, err)
	}
	return bankID, false, nil
}

func (s *employeeService) EditBankDetails(ctx context.Context, bankID string, patch domain.BankPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no valid fields to update", apperrors.ErrValidation)
	}
	if _, err := s.empRepo.FindBankByID(ctx, bankID); err != nil {
		return fmt.Errorf("bank details not found: %w", err)
	}
	if err := s.empRepo.UpdateBankDetails(ctx, bankID, patch); err != nil {
		return fmt.Errorf("failed to edit bank details %s: %w", bankID, err)
	}
	return nil
}

func (s *employeeService) AddPreviousJob(ctx context.Context, employeeID string, job domain.PreviousJob) (*domain.PreviousJob, error) {
	if _, err := s.empRepo.FindIndexByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}
	created, err := s.empRepo.CreatePreviousJob(ctx, employeeID, job)
	if err != nil {
		return nil, fmt.Errorf("failed to add previous job for employee %s: %w", employeeID, err)
	}
	return created, nil
}

func (s *employeeService) EditPreviousJob(ctx context.Context, jobID string, patch domain.PreviousJobPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no valid fields to update", apperrors.ErrValidation)
	}
	if err := s.empRepo.UpdatePreviousJob(ctx, jobID, patch); err != nil {
		return fmt.Errorf("previous job not found: %w", err)
	}
	return nil
}

// GetCompleteDetailsByCode assembles the full employee profile: general by
// code, index by general id, then a concurrent fan-out over the optional
// sub-records and the referenced id lists. Loans and previous jobs keep
// their list positions; missing entries stay nil.
func (s *employeeService) GetCompleteDetailsByCode(ctx context.Context, empCode string) (*domain.CompleteEmployee, error) {
	general, err := s.empRepo.FindGeneralByCode(ctx, empCode)
	if err != nil {
		return nil, fmt.Errorf("no employee found with this employee code: %w", err)
	}
	index, err := s.empRepo.FindIndexByGeneralID(ctx, general.ID)
	if err != nil {
		return nil, fmt.Errorf("employee record not found: %w", err)
	}

	complete := &domain.CompleteEmployee{General: *general}
	g, gctx := errgroup.WithContext(ctx)

	if index.ProfessionalID != "" {
		g.Go(func() error {
			rec, err := s.empRepo.FindProfessionalByID(gctx, index.ProfessionalID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			complete.Professional = rec
			return nil
		})
	}
	if index.BankDetailID != "" {
		g.Go(func() error {
			rec, err := s.empRepo.FindBankByID(gctx, index.BankDetailID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			complete.Bank = rec
			return nil
		})
	}
	if index.PFID != "" {
		g.Go(func() error {
			rec, err := s.empRepo.FindPFByID(gctx, index.PFID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			complete.PF = rec
			return nil
		})
	}
	g.Go(func() error {
		loans, err := s.loanRepo.FindLoansByIDs(gctx, index.LoanIDs)
		if err != nil {
			return err
		}
		complete.Loans = loans
		return nil
	})
	g.Go(func() error {
		jobs, err := s.empRepo.FindPreviousJobsByIDs(gctx, index.PreviousJobIDs)
		if err != nil {
			return err
		}
		complete.PreviousJobs = jobs
		return nil
	})
	g.Go(func() error {
		projects, err := s.empRepo.FindProjectsByIDs(gctx, index.ProjectIDs)
		if err != nil {
			return err
		}
		complete.Projects = projects
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble employee %s: %w", empCode, err)
	}
	return complete, nil
}
