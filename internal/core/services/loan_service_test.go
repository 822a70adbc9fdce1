package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
	"github.com/peoplenest/payroll-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type LoanServiceTestSuite struct {
	suite.Suite
	mockLoanRepo *MockLoanRepository
	mockEmpRepo  *MockEmployeeRepository
	service      portssvc.LoanSvcFacade
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockEmpRepo = new(MockEmployeeRepository)
	repos := portsrepo.Provider{
		Employee: suite.mockEmpRepo,
		Loan:     suite.mockLoanRepo,
		User:     new(MockUserRepository),
		Sequence: new(MockSequenceRepository),
	}
	suite.service = services.NewServiceContainer(repos, new(MockIdentity)).Loan
}

// --- CreateLoan ---

func (suite *LoanServiceTestSuite) TestCreateLoan_ResetsLifecycleFields() {
	ctx := context.Background()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1"}
	request := domain.Loan{
		EmpName:   "Asha Nair",
		AmountReq: "50000",
		Note:      "Medical emergency",
		// Client-supplied lifecycle fields must be discarded
		Status:    domain.LoanApproved,
		AmountApp: "99999",
		Balance:   "99999",
	}

	suite.mockEmpRepo.On("FindIndexByID", ctx, "emp-1").Return(index, nil).Once()
	suite.mockLoanRepo.On("CreateLoan", ctx, "emp-1", mock.MatchedBy(func(l domain.Loan) bool {
		return l.Status == domain.LoanPending &&
			l.AmountApp == "" && l.Balance == "" &&
			l.PaybackTerm == (domain.PaybackTerm{}) &&
			l.ReqDate != "" &&
			len(l.Activity) == 1 && strings.HasPrefix(l.Activity[0], "Loan requested on ")
	})).Return("loan-1", nil).Once()

	id, err := suite.service.CreateLoan(ctx, "emp-1", request)

	suite.NoError(err)
	suite.Equal("loan-1", id)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_MissingNameOrAmount() {
	_, err := suite.service.CreateLoan(context.Background(), "emp-1", domain.Loan{EmpName: "Asha"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmpRepo.AssertNotCalled(suite.T(), "FindIndexByID", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestCreateLoan_UnknownEmployee() {
	ctx := context.Background()
	suite.mockEmpRepo.On("FindIndexByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateLoan(ctx, "ghost", domain.Loan{EmpName: "Asha", AmountReq: "1000"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ApproveLoan ---

func validApproval() domain.LoanApproval {
	return domain.LoanApproval{
		AmountApp:   "40000",
		Installment: "4000",
		Date:        "2025-01-05",
		StaffNote:   "Approved at reduced amount",
	}
}

func (suite *LoanServiceTestSuite) TestApproveLoan_Success() {
	ctx := context.Background()
	loan := &domain.Loan{ID: "loan-1", Status: domain.LoanPending}
	approval := validApproval()

	suite.mockLoanRepo.On("FindLoanByID", ctx, "loan-1").Return(loan, nil).Once()
	suite.mockLoanRepo.On("ApproveLoan", ctx, "loan-1", approval, mock.MatchedBy(func(activity string) bool {
		return strings.HasPrefix(activity, "Loan approved on ")
	})).Return(nil).Once()

	suite.NoError(suite.service.ApproveLoan(ctx, "loan-1", approval))
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestApproveLoan_MissingFields() {
	approval := validApproval()
	approval.StaffNote = ""

	err := suite.service.ApproveLoan(context.Background(), "loan-1", approval)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "ApproveLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestApproveLoan_NonNumericAmount() {
	ctx := context.Background()
	loan := &domain.Loan{ID: "loan-1"}
	approval := validApproval()
	approval.AmountApp = "forty thousand"

	suite.mockLoanRepo.On("FindLoanByID", ctx, "loan-1").Return(loan, nil).Once()

	err := suite.service.ApproveLoan(ctx, "loan-1", approval)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "ApproveLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestApproveLoan_NonPositiveInstallment() {
	ctx := context.Background()
	loan := &domain.Loan{ID: "loan-1"}
	approval := validApproval()
	approval.Installment = "0"

	suite.mockLoanRepo.On("FindLoanByID", ctx, "loan-1").Return(loan, nil).Once()

	err := suite.service.ApproveLoan(ctx, "loan-1", approval)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "ApproveLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- CancelLoan ---

func (suite *LoanServiceTestSuite) TestCancelLoan_Success() {
	ctx := context.Background()
	loan := &domain.Loan{ID: "loan-1", Status: domain.LoanPending}

	suite.mockLoanRepo.On("FindLoanByID", ctx, "loan-1").Return(loan, nil).Once()
	suite.mockLoanRepo.On("CancelLoan", ctx, "loan-1", "changed my mind", mock.MatchedBy(func(activity string) bool {
		return strings.HasPrefix(activity, "Loan cancelled on ")
	})).Return(nil).Once()

	suite.NoError(suite.service.CancelLoan(ctx, "loan-1", "changed my mind"))
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

// --- EditLoan ---

func (suite *LoanServiceTestSuite) TestEditLoan_EmptyPatch() {
	ctx := context.Background()
	loan := &domain.Loan{ID: "loan-1"}

	suite.mockLoanRepo.On("FindLoanByID", ctx, "loan-1").Return(loan, nil).Once()

	err := suite.service.EditLoan(ctx, "loan-1", domain.LoanPatch{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "UpdateLoan", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestEditLoan_AllowedAfterApproval() {
	ctx := context.Background()
	loan := &domain.Loan{ID: "loan-1", Status: domain.LoanApproved}
	note := "Revised note"
	patch := domain.LoanPatch{StaffNote: &note}

	suite.mockLoanRepo.On("FindLoanByID", ctx, "loan-1").Return(loan, nil).Once()
	suite.mockLoanRepo.On("UpdateLoan", ctx, "loan-1", patch).Return(nil).Once()

	suite.NoError(suite.service.EditLoan(ctx, "loan-1", patch))
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

// --- ListLoans ---

func (suite *LoanServiceTestSuite) TestListLoans_MapsToSummaries() {
	ctx := context.Background()
	filter := domain.LoanFilter{Statuses: []domain.LoanStatus{domain.LoanApproved}}
	loans := []domain.Loan{
		{
			ID: "loan-1", EmpName: "Asha Nair", AmountReq: "50000", Status: domain.LoanApproved,
			AmountApp: "40000", Balance: "36000",
			PaybackTerm: domain.PaybackTerm{Installment: "4000", Date: "2025-01-05"},
		},
		{ID: "loan-2", EmpName: "Ravi Kumar", AmountReq: "10000", Status: domain.LoanPending},
	}

	suite.mockLoanRepo.On("ListLoans", ctx, 10, 1, filter).Return(loans, nil).Once()

	summaries, err := suite.service.ListLoans(ctx, 10, 1, filter)

	suite.NoError(err)
	suite.Len(summaries, 2)
	suite.Equal("Asha Nair", summaries[0].Name)
	suite.Equal("4000", summaries[0].Installment)
	// Unset fields surface as empty strings, not omissions
	suite.Equal("", summaries[1].AmountApp)
	suite.Equal("", summaries[1].Installment)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
