package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/core/services"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/schergr/interiordesign/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *mockUserRepo
	service      portssvc.UserSvcFacade
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(mockUserRepo)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestRegister_DefaultRole() {
	suite.mockUserRepo.On("CreateUserWithRole", suite.ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "steph" && u.PasswordHash != "" && u.PasswordHash != "s3cret" &&
			utils.CheckPasswordHash("s3cret", u.PasswordHash)
	}), domain.DefaultRoleName).Return(int64(1), nil).Once()

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "steph", Password: "s3cret"})

	suite.Require().NoError(err)
	suite.Equal("steph", user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_NamedRole() {
	suite.mockUserRepo.On("CreateUserWithRole", suite.ctx, mock.AnythingOfType("*domain.User"), "Admin").
		Return(int64(2), nil).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "dan", Password: "pw", Role: ptr(" Admin ")})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_Duplicate() {
	suite.mockUserRepo.On("CreateUserWithRole", suite.ctx, mock.AnythingOfType("*domain.User"), domain.DefaultRoleName).
		Return(int64(0), apperrors.Duplicatef("User with this username already exists")).Once()

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "steph", Password: "s3cret"})

	suite.Nil(user)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("User already exists", apperrors.Message(err, ""))
}

func (suite *UserServiceTestSuite) TestRegister_BlankInput() {
	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "  ", Password: "pw"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUserWithRole", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_PasswordTooLong() {
	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "bob", Password: strings.Repeat("x", 73)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Invalid input: password must be at most 72 bytes", apperrors.Message(err, ""))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUserWithRole", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_PasswordAtLimit() {
	suite.mockUserRepo.On("CreateUserWithRole", suite.ctx, mock.AnythingOfType("*domain.User"), domain.DefaultRoleName).
		Return(int64(3), nil).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "bob", Password: strings.Repeat("x", 72)})

	suite.Require().NoError(err)
}

func (suite *UserServiceTestSuite) TestRegister_TrimsUsername() {
	suite.mockUserRepo.On("CreateUserWithRole", suite.ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice"
	}), domain.DefaultRoleName).Return(int64(5), nil).Once()

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "  alice ", Password: "pw"})

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_RepoError() {
	dbErr := errors.New("db down")
	suite.mockUserRepo.On("CreateUserWithRole", suite.ctx, mock.AnythingOfType("*domain.User"), domain.DefaultRoleName).
		Return(int64(0), dbErr).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "x", Password: "y"})

	suite.ErrorIs(err, dbErr)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("s3cret")
	suite.Require().NoError(err)
	stored := &domain.User{ID: 4, Username: "steph", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "steph").Return(stored, nil)
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(suite.ctx, "steph", "s3cret")
	suite.Require().NoError(err)
	suite.Equal(int64(4), user.ID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "steph", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "ghost", "s3cret")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, int64(8)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(suite.ctx, 8)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}
