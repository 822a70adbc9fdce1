package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
	"github.com/peoplenest/payroll-backend/internal/core/services"
	"github.com/peoplenest/payroll-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmpRepo  *MockEmployeeRepository
	mockLoanRepo *MockLoanRepository
	mockUserRepo *MockUserRepository
	mockIdentity *MockIdentity
	service      portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmpRepo = new(MockEmployeeRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockIdentity = new(MockIdentity)
	repos := portsrepo.Provider{
		Employee: suite.mockEmpRepo,
		Loan:     suite.mockLoanRepo,
		User:     suite.mockUserRepo,
		Sequence: new(MockSequenceRepository),
	}
	suite.service = services.NewServiceContainer(repos, suite.mockIdentity).Employee
}

func validGeneral() domain.GeneralInfo {
	return domain.GeneralInfo{
		Name:         domain.Name{Title: domain.TitleMs, First: "Asha", Last: "Nair"},
		PrimaryEmail: "asha.nair@example.com",
		Gender:       domain.GenderFemale,
		PhoneNum:     domain.Phone{Code: "+91", Num: "9876543210"},
	}
}

func validProfessional() domain.ProfessionalInfo {
	return domain.ProfessionalInfo{
		JoiningDate:      "2024-04-01",
		Department:       "Engineering",
		Designation:      "Software Engineer",
		Location:         "Bengaluru",
		ReportingManager: "Ravi Kumar",
		WorkWeek:         "Mon-Fri",
		HolidayGroup:     "IN-South",
		CTCAnnual:        "1200000",
		PayslipComponent: "Standard",
		Role:             "employee",
	}
}

// --- CreateEmployee ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	general := validGeneral()
	professional := validProfessional()

	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1", ProfessionalID: "prof-1"}
	created := validGeneral()
	created.ID = "gen-1"
	created.EmpCode = "EN0001"
	created.Status = domain.StatusActive

	suite.mockEmpRepo.On("CreateAggregate", ctx, "EN", mock.MatchedBy(func(g domain.GeneralInfo) bool {
		// Status defaults to ACTIVE before the write
		return g.Status == domain.StatusActive && g.PrimaryEmail == general.PrimaryEmail
	}), professional).Return(index, &created, nil).Once()

	gotIndex, gotGeneral, err := suite.service.CreateEmployee(ctx, general, professional)

	suite.NoError(err)
	suite.Equal("emp-1", gotIndex.ID)
	suite.Equal("EN0001", gotGeneral.EmpCode)
	suite.mockEmpRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_MissingFields() {
	ctx := context.Background()
	general := validGeneral()
	professional := validProfessional()
	professional.Department = ""

	_, _, err := suite.service.CreateEmployee(ctx, general, professional)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmpRepo.AssertNotCalled(suite.T(), "CreateAggregate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_UnknownDepartmentUsesFallbackPrefix() {
	ctx := context.Background()
	general := validGeneral()
	professional := validProfessional()
	professional.Department = "Astrology"

	index := &domain.EmployeeIndex{ID: "emp-9", GeneralID: "gen-9", ProfessionalID: "prof-9"}
	created := validGeneral()
	created.EmpCode = "UN0001"

	suite.mockEmpRepo.On("CreateAggregate", ctx, "UN", mock.Anything, mock.Anything).Return(index, &created, nil).Once()

	_, gotGeneral, err := suite.service.CreateEmployee(ctx, general, professional)

	suite.NoError(err)
	suite.Equal("UN0001", gotGeneral.EmpCode)
	suite.mockEmpRepo.AssertExpectations(suite.T())
}

// --- ListEmployees ---

func (suite *EmployeeServiceTestSuite) TestListEmployees_DropsRowsWithMissingRecords() {
	ctx := context.Background()
	rows := []domain.EmployeeIndex{
		{ID: "emp-1", GeneralID: "gen-1", ProfessionalID: "prof-1"},
		{ID: "emp-2", GeneralID: "gen-2", ProfessionalID: "prof-2"},
	}
	general := validGeneral()
	general.ID = "gen-1"
	general.EmpCode = "EN0001"
	general.Status = domain.StatusActive
	professional := validProfessional()
	professional.ID = "prof-1"

	suite.mockEmpRepo.On("ListIndexPage", ctx, 10, 1).Return(rows, nil).Once()
	suite.mockEmpRepo.On("FindGeneralByID", mock.Anything, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("FindProfessionalByID", mock.Anything, "prof-1").Return(&professional, nil).Once()
	// Second row has a dangling general reference
	suite.mockEmpRepo.On("FindGeneralByID", mock.Anything, "gen-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmpRepo.On("FindProfessionalByID", mock.Anything, "prof-2").Return(&professional, nil).Once()

	summaries, err := suite.service.ListEmployees(ctx, 10, 1)

	suite.NoError(err)
	suite.Len(summaries, 1)
	suite.Equal("emp-1", summaries[0].ID)
	suite.Equal("Asha Nair", summaries[0].EmployeeName)
	suite.Equal("EN0001", summaries[0].EmployeeCode)
}

// --- ChangeStatus ---

func (suite *EmployeeServiceTestSuite) TestChangeStatus_WritesGeneralOnly() {
	ctx := context.Background()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1", ProfessionalID: "prof-1"}
	general := validGeneral()
	general.ID = "gen-1"
	general.EmpCode = "EN0001"
	general.Status = domain.StatusOnNotice
	professional := validProfessional()

	suite.mockEmpRepo.On("FindIndexByID", ctx, "emp-1").Return(index, nil).Once()
	suite.mockEmpRepo.On("SetStatus", ctx, "gen-1", domain.StatusOnNotice).Return(nil).Once()
	suite.mockEmpRepo.On("FindGeneralByID", mock.Anything, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("FindProfessionalByID", mock.Anything, "prof-1").Return(&professional, nil).Once()

	summary, err := suite.service.ChangeStatus(ctx, "emp-1", domain.StatusOnNotice)

	suite.NoError(err)
	suite.Equal(domain.StatusOnNotice, summary.Status)
	suite.mockEmpRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestChangeStatus_EmptyStatus() {
	_, err := suite.service.ChangeStatus(context.Background(), "emp-1", "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- DeleteEmployee ---

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_ReturnsResourceCount() {
	ctx := context.Background()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1"}
	general := validGeneral()
	general.EmpCode = "EN0003"

	suite.mockEmpRepo.On("FindIndexByID", ctx, "emp-1").Return(index, nil).Once()
	suite.mockEmpRepo.On("FindGeneralByID", ctx, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("SoftDeleteAggregate", ctx, "emp-1", "EN0003").Return(4, nil).Once()

	deleted, err := suite.service.DeleteEmployee(ctx, "emp-1")

	suite.NoError(err)
	suite.Equal(4, deleted)
	suite.mockEmpRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_MissingEmpCode() {
	ctx := context.Background()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1"}
	general := validGeneral()

	suite.mockEmpRepo.On("FindIndexByID", ctx, "emp-1").Return(index, nil).Once()
	suite.mockEmpRepo.On("FindGeneralByID", ctx, "gen-1").Return(&general, nil).Once()

	_, err := suite.service.DeleteEmployee(ctx, "emp-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmpRepo.AssertNotCalled(suite.T(), "SoftDeleteAggregate", mock.Anything, mock.Anything, mock.Anything)
}

// --- Edits ---

func (suite *EmployeeServiceTestSuite) TestEditGeneral_EmptyPatch() {
	err := suite.service.EditGeneral(context.Background(), "gen-1", domain.GeneralPatch{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestEditProfessional_Success() {
	ctx := context.Background()
	professional := validProfessional()
	designation := "Senior Software Engineer"
	patch := domain.ProfessionalPatch{Designation: &designation}

	suite.mockEmpRepo.On("FindProfessionalByID", ctx, "prof-1").Return(&professional, nil).Once()
	suite.mockEmpRepo.On("UpdateProfessional", ctx, "prof-1", patch).Return(nil).Once()

	suite.NoError(suite.service.EditProfessional(ctx, "prof-1", patch))
	suite.mockEmpRepo.AssertExpectations(suite.T())
}

// --- AddLoginDetails ---

func (suite *EmployeeServiceTestSuite) TestAddLoginDetails_Success() {
	ctx := context.Background()
	general := validGeneral()
	general.ID = "gen-1"
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1", ProfessionalID: "prof-1"}
	professional := validProfessional()
	professional.Role = "admin"
	details := domain.LoginDetails{Username: "asha.nair@example.com", Password: "s3cret-pass", LoginEnable: true}

	suite.mockEmpRepo.On("FindGeneralByID", ctx, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("FindIndexByGeneralID", ctx, "gen-1").Return(index, nil).Once()
	suite.mockEmpRepo.On("FindProfessionalByID", ctx, "prof-1").Return(&professional, nil).Once()
	suite.mockEmpRepo.On("MergeLoginDetails", ctx, "gen-1", details).Return(nil).Once()
	suite.mockIdentity.On("CreateIdentity", ctx, details.Username, details.Password, details.Username).Return("uid-1", nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.UserRecord) bool {
		// The mirror stores a bcrypt hash, never the plaintext credential
		return u.UID == "uid-1" &&
			u.Role == domain.Role("admin") &&
			u.PasswordHash != details.Password &&
			utils.CheckPasswordHash(details.Password, u.PasswordHash)
	})).Return(nil).Once()

	role, err := suite.service.AddLoginDetails(ctx, "gen-1", details)

	suite.NoError(err)
	suite.Equal("admin", role)
	suite.mockEmpRepo.AssertExpectations(suite.T())
	suite.mockIdentity.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestAddLoginDetails_MissingProfessionalLink() {
	ctx := context.Background()
	general := validGeneral()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1"}

	suite.mockEmpRepo.On("FindGeneralByID", ctx, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("FindIndexByGeneralID", ctx, "gen-1").Return(index, nil).Once()

	_, err := suite.service.AddLoginDetails(ctx, "gen-1", domain.LoginDetails{Username: "x@y.com", Password: "p"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockIdentity.AssertNotCalled(suite.T(), "CreateIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestAddLoginDetails_IdentityFailureAfterMerge() {
	ctx := context.Background()
	general := validGeneral()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1", ProfessionalID: "prof-1"}
	professional := validProfessional()
	details := domain.LoginDetails{Username: "asha.nair@example.com", Password: "s3cret-pass"}

	suite.mockEmpRepo.On("FindGeneralByID", ctx, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("FindIndexByGeneralID", ctx, "gen-1").Return(index, nil).Once()
	suite.mockEmpRepo.On("FindProfessionalByID", ctx, "prof-1").Return(&professional, nil).Once()
	suite.mockEmpRepo.On("MergeLoginDetails", ctx, "gen-1", details).Return(nil).Once()
	suite.mockIdentity.On("CreateIdentity", ctx, details.Username, details.Password, details.Username).Return("", errors.New("email exists")).Once()

	_, err := suite.service.AddLoginDetails(ctx, "gen-1", details)

	suite.Error(err)
	// The merge already happened; only the mirror write is skipped
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- EditLoginDetails ---

func (suite *EmployeeServiceTestSuite) TestEditLoginDetails_SkipsMirrorWithoutIdentity() {
	ctx := context.Background()
	general := validGeneral()
	enable := true
	patch := domain.LoginPatch{LoginEnable: &enable}

	suite.mockEmpRepo.On("FindGeneralByID", ctx, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("UpdateLoginDetails", ctx, "gen-1", patch).Return(nil).Once()

	suite.NoError(suite.service.EditLoginDetails(ctx, "gen-1", patch))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestEditLoginDetails_MirrorsHashedPassword() {
	ctx := context.Background()
	general := validGeneral()
	general.LoginDetails = &domain.LoginDetails{Username: "asha.nair@example.com"}
	password := "new-s3cret"
	patch := domain.LoginPatch{Password: &password}
	user := &domain.UserRecord{UID: "uid-1", Email: "asha.nair@example.com"}

	suite.mockEmpRepo.On("FindGeneralByID", ctx, "gen-1").Return(&general, nil).Once()
	suite.mockEmpRepo.On("UpdateLoginDetails", ctx, "gen-1", patch).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha.nair@example.com").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUserLogin", ctx, "uid-1", mock.MatchedBy(func(hash *string) bool {
		return hash != nil && *hash != password && utils.CheckPasswordHash(password, *hash)
	}), patch).Return(nil).Once()

	suite.NoError(suite.service.EditLoginDetails(ctx, "gen-1", patch))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AddBankDetails ---

func (suite *EmployeeServiceTestSuite) TestAddBankDetails_Idempotent() {
	ctx := context.Background()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1", BankDetailID: "bank-7"}
	bank := domain.BankDetails{
		AccountType: "Savings", AccountName: "Asha Nair", AccountNum: "123456",
		IFSCCode: "HDFC0001", BankName: "HDFC", BranchName: "Indiranagar",
	}

	suite.mockEmpRepo.On("FindIndexByID", ctx, "emp-1").Return(index, nil).Once()

	bankID, existed, err := suite.service.AddBankDetails(ctx, "emp-1", bank)

	suite.NoError(err)
	suite.True(existed)
	suite.Equal("bank-7", bankID)
	suite.mockEmpRepo.AssertNotCalled(suite.T(), "CreateBankDetails", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestAddBankDetails_MissingFields() {
	_, _, err := suite.service.AddBankDetails(context.Background(), "emp-1", domain.BankDetails{AccountName: "only-name"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestAddBankDetails_CreatesAndLinks() {
	ctx := context.Background()
	index := &domain.EmployeeIndex{ID: "emp-1", GeneralID: "gen-1"}
	bank := domain.BankDetails{
		AccountType: "Savings", AccountName: "Asha Nair", AccountNum: "123456",
		IFSCCode: "HDFC0001", BankName: "HDFC", BranchName: "Indiranagar",
	}

	suite.mockEmpRepo.On("FindIndexByID", ctx, "emp-1").Return(index, nil).Once()
	suite.mockEmpRepo.On("CreateBankDetails", ctx, "emp-1", bank).Return("bank-1", nil).Once()

	bankID, existed, err := suite.service.AddBankDetails(ctx, "emp-1", bank)

	suite.NoError(err)
	suite.False(existed)
	suite.Equal("bank-1", bankID)
	suite.mockEmpRepo.AssertExpectations(suite.T())
}

// --- GetCompleteDetailsByCode ---

func (suite *EmployeeServiceTestSuite) TestGetCompleteDetailsByCode_AssemblesAggregate() {
	ctx := context.Background()
	general := validGeneral()
	general.ID = "gen-1"
	general.EmpCode = "EN0001"
	index := &domain.EmployeeIndex{
		ID: "emp-1", GeneralID: "gen-1", ProfessionalID: "prof-1",
		BankDetailID: "bank-1", LoanIDs: []string{"loan-1", "loan-2"},
		PreviousJobIDs: []string{"job-1"}, ProjectIDs: []string{"proj-1"},
	}
	professional := validProfessional()
	bank := domain.BankDetails{ID: "bank-1", BankName: "HDFC"}
	loans := []*domain.Loan{{ID: "loan-1"}, nil}
	jobs := []*domain.PreviousJob{{ID: "job-1", CompanyName: "Initech"}}
	projects := []domain.Project{{ID: "proj-1", Name: "Migration"}}

	suite.mockEmpRepo.On("FindGeneralByCode", ctx, "EN0001").Return(&general, nil).Once()
	suite.mockEmpRepo.On("FindIndexByGeneralID", ctx, "gen-1").Return(index, nil).Once()
	suite.mockEmpRepo.On("FindProfessionalByID", mock.Anything, "prof-1").Return(&professional, nil).Once()
	suite.mockEmpRepo.On("FindBankByID", mock.Anything, "bank-1").Return(&bank, nil).Once()
	suite.mockLoanRepo.On("FindLoansByIDs", mock.Anything, []string{"loan-1", "loan-2"}).Return(loans, nil).Once()
	suite.mockEmpRepo.On("FindPreviousJobsByIDs", mock.Anything, []string{"job-1"}).Return(jobs, nil).Once()
	suite.mockEmpRepo.On("FindProjectsByIDs", mock.Anything, []string{"proj-1"}).Return(projects, nil).Once()

	complete, err := suite.service.GetCompleteDetailsByCode(ctx, "EN0001")

	suite.NoError(err)
	suite.Equal("EN0001", complete.General.EmpCode)
	suite.NotNil(complete.Professional)
	suite.NotNil(complete.Bank)
	suite.Nil(complete.PF) // no pfId linked
	suite.Len(complete.Loans, 2)
	suite.Nil(complete.Loans[1]) // dangling reference keeps its position
	suite.Len(complete.PreviousJobs, 1)
	suite.Len(complete.Projects, 1)
}

func (suite *EmployeeServiceTestSuite) TestGetCompleteDetailsByCode_UnknownCode() {
	ctx := context.Background()
	suite.mockEmpRepo.On("FindGeneralByCode", ctx, "ZZ9999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCompleteDetailsByCode(ctx, "ZZ9999")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
