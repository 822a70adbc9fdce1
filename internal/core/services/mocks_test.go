package services_test

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
	"github.com/peoplenest/payroll-backend/internal/core/ports/providers"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) CreateAggregate(ctx context.Context, prefix string, general domain.GeneralInfo, professional domain.ProfessionalInfo) (*domain.EmployeeIndex, *domain.GeneralInfo, error) {
	args := m.Called(ctx, prefix, general, professional)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.EmployeeIndex), args.Get(1).(*domain.GeneralInfo), args.Error(2)
}

func (m *MockEmployeeRepository) FindIndexByID(ctx context.Context, id string) (*domain.EmployeeIndex, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeIndex), args.Error(1)
}

func (m *MockEmployeeRepository) FindIndexByGeneralID(ctx context.Context, generalID string) (*domain.EmployeeIndex, error) {
	args := m.Called(ctx, generalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeIndex), args.Error(1)
}

func (m *MockEmployeeRepository) FindGeneralByID(ctx context.Context, id string) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}

func (m *MockEmployeeRepository) FindGeneralByCode(ctx context.Context, empCode string) (*domain.GeneralInfo, error) {
	args := m.Called(ctx, empCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralInfo), args.Error(1)
}

func (m *MockEmployeeRepository) FindProfessionalByID(ctx context.Context, id string) (*domain.ProfessionalInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfessionalInfo), args.Error(1)
}

func (m *MockEmployeeRepository) ListIndexPage(ctx context.Context, limit, page int) ([]domain.EmployeeIndex, error) {
	args := m.Called(ctx, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeIndex), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateGeneral(ctx context.Context, id string, patch domain.GeneralPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateProfessional(ctx context.Context, id string, patch domain.ProfessionalPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockEmployeeRepository) MergeLoginDetails(ctx context.Context, generalID string, details domain.LoginDetails) error {
	args := m.Called(ctx, generalID, details)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateLoginDetails(ctx context.Context, generalID string, patch domain.LoginPatch) error {
	args := m.Called(ctx, generalID, patch)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SetStatus(ctx context.Context, generalID string, status domain.Status) error {
	args := m.Called(ctx, generalID, status)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SoftDeleteAggregate(ctx context.Context, indexID, empCode string) (int, error) {
	args := m.Called(ctx, indexID, empCode)
	return args.Int(0), args.Error(1)
}

func (m *MockEmployeeRepository) CreateBankDetails(ctx context.Context, indexID string, bank domain.BankDetails) (string, error) {
	args := m.Called(ctx, indexID, bank)
	return args.String(0), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateBankDetails(ctx context.Context, bankID string, patch domain.BankPatch) error {
	args := m.Called(ctx, bankID, patch)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindBankByID(ctx context.Context, id string) (*domain.BankDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankDetails), args.Error(1)
}

func (m *MockEmployeeRepository) FindPFByID(ctx context.Context, id string) (*domain.PFDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PFDetails), args.Error(1)
}

func (m *MockEmployeeRepository) CreatePreviousJob(ctx context.Context, indexID string, job domain.PreviousJob) (*domain.PreviousJob, error) {
	args := m.Called(ctx, indexID, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreviousJob), args.Error(1)
}

func (m *MockEmployeeRepository) UpdatePreviousJob(ctx context.Context, jobID string, patch domain.PreviousJobPatch) error {
	args := m.Called(ctx, jobID, patch)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindPreviousJobsByIDs(ctx context.Context, ids []string) ([]*domain.PreviousJob, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PreviousJob), args.Error(1)
}

func (m *MockEmployeeRepository) FindProjectsByIDs(ctx context.Context, ids []string) ([]domain.Project, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) CreateLoan(ctx context.Context, employeeID string, loan domain.Loan) (string, error) {
	args := m.Called(ctx, employeeID, loan)
	return args.String(0), args.Error(1)
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, id string) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ApproveLoan(ctx context.Context, id string, approval domain.LoanApproval, activity string) error {
	args := m.Called(ctx, id, approval, activity)
	return args.Error(0)
}

func (m *MockLoanRepository) CancelLoan(ctx context.Context, id, reason, activity string) error {
	args := m.Called(ctx, id, reason, activity)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoan(ctx context.Context, id string, patch domain.LoanPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, limit, page int, filter domain.LoanFilter) ([]domain.Loan, error) {
	args := m.Called(ctx, limit, page, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindLoansByIDs(ctx context.Context, ids []string) ([]*domain.Loan, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.UserRecord) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRecord), args.Error(1)
}

func (m *MockUserRepository) SuperAdminExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUserLogin(ctx context.Context, uid string, passwordHash *string, patch domain.LoginPatch) error {
	args := m.Called(ctx, uid, passwordHash, patch)
	return args.Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) CreateSequence(ctx context.Context, seq domain.SequenceNumber) (string, error) {
	args := m.Called(ctx, seq)
	return args.String(0), args.Error(1)
}

func (m *MockSequenceRepository) ListSequences(ctx context.Context) ([]domain.SequenceNumber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SequenceNumber), args.Error(1)
}

// --- Mock Identity provider ---
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.String(0), args.Error(1)
}

func (m *MockIdentity) VerifyToken(ctx context.Context, idToken string) (string, error) {
	args := m.Called(ctx, idToken)
	return args.String(0), args.Error(1)
}

func (m *MockIdentity) RevokeSessions(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockIdentity) SignInWithPassword(ctx context.Context, email, password string) (*providers.SignInResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.SignInResult), args.Error(1)
}
