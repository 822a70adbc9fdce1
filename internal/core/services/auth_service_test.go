package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
	"github.com/peoplenest/payroll-backend/internal/core/ports/providers"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
	"github.com/peoplenest/payroll-backend/internal/core/services"
	"github.com/peoplenest/payroll-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockIdentity *MockIdentity
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockIdentity = new(MockIdentity)
	repos := portsrepo.Provider{
		Employee: new(MockEmployeeRepository),
		Loan:     new(MockLoanRepository),
		User:     suite.mockUserRepo,
		Sequence: new(MockSequenceRepository),
	}
	suite.service = services.NewServiceContainer(repos, suite.mockIdentity).Auth
}

// --- SignupSuperAdmin ---

func (suite *AuthServiceTestSuite) TestSignupSuperAdmin_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("SuperAdminExists", ctx).Return(false, nil).Once()
	suite.mockIdentity.On("CreateIdentity", ctx, "admin@example.com", "s3cret-pass", "Admin").Return("uid-1", nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.UserRecord) bool {
		return u.UID == "uid-1" &&
			u.Role == domain.RoleSuperAdmin &&
			u.LoginEnable &&
			u.PasswordHash != "s3cret-pass" &&
			utils.CheckPasswordHash("s3cret-pass", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.SignupSuperAdmin(ctx, "admin@example.com", "s3cret-pass", "Admin")

	suite.NoError(err)
	suite.Equal(domain.RoleSuperAdmin, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockIdentity.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestSignupSuperAdmin_AlreadyExists() {
	ctx := context.Background()
	suite.mockUserRepo.On("SuperAdminExists", ctx).Return(true, nil).Once()

	_, err := suite.service.SignupSuperAdmin(ctx, "admin@example.com", "s3cret-pass", "Admin")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockIdentity.AssertNotCalled(suite.T(), "CreateIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Login ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	result := &providers.SignInResult{UID: "uid-1", IDToken: "tok", RefreshToken: "ref", ExpiresIn: "3600"}

	suite.mockIdentity.On("SignInWithPassword", ctx, "admin@example.com", "s3cret-pass").Return(result, nil).Once()

	got, err := suite.service.Login(ctx, "admin@example.com", "s3cret-pass")

	suite.NoError(err)
	suite.Equal("tok", got.IDToken)
}

func (suite *AuthServiceTestSuite) TestLogin_BadCredentials() {
	ctx := context.Background()
	suite.mockIdentity.On("SignInWithPassword", ctx, "admin@example.com", "wrong").Return(nil, errors.New("INVALID_PASSWORD")).Once()

	_, err := suite.service.Login(ctx, "admin@example.com", "wrong")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Logout ---

func (suite *AuthServiceTestSuite) TestLogout_RevokesSessions() {
	ctx := context.Background()
	suite.mockIdentity.On("VerifyToken", ctx, "valid-token").Return("uid-1", nil).Once()
	suite.mockIdentity.On("RevokeSessions", ctx, "uid-1").Return(nil).Once()

	suite.NoError(suite.service.Logout(ctx, "valid-token"))
	suite.mockIdentity.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogout_InvalidToken() {
	ctx := context.Background()
	suite.mockIdentity.On("VerifyToken", ctx, "garbage").Return("", errors.New("token expired")).Once()

	err := suite.service.Logout(ctx, "garbage")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockIdentity.AssertNotCalled(suite.T(), "RevokeSessions", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
