package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/core/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/SscSPs/bizbooks_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	repo    *MockUserRepository
	service portssvc.UserSvcFacade
	ctx     context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.repo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.repo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	suite.repo.On("FindUserByEmail", mock.Anything, "owner@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "owner@example.com" && u.AuthProvider == domain.ProviderLocal && u.PasswordHash != "" && u.PasswordHash != "s3cret-pass"
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, dto.RegisterRequest{
		Email:       " Owner@Example.com ",
		Password:    "s3cret-pass",
		DisplayName: "Shop Owner",
	})

	suite.Require().NoError(err)
	suite.Equal("owner@example.com", user.Email)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.True(utils.CheckPasswordHash("s3cret-pass", user.PasswordHash))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	suite.repo.On("FindUserByEmail", mock.Anything, "owner@example.com").Return(&domain.User{UserID: "u1"}, nil).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.RegisterRequest{Email: "owner@example.com", Password: "s3cret-pass", DisplayName: "Owner"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Email: "owner@example.com", PasswordHash: hash}
	suite.repo.On("FindUserByEmail", mock.Anything, "owner@example.com").Return(stored, nil)
	suite.repo.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(suite.ctx, "OWNER@example.com", "s3cret-pass")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "owner@example.com", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "nobody@example.com", "s3cret-pass")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleOnlyAccount() {
	suite.repo.On("FindUserByEmail", mock.Anything, "g@example.com").
		Return(&domain.User{UserID: "u2", AuthProvider: domain.ProviderGoogle}, nil)

	_, err := suite.service.AuthenticateUser(suite.ctx, "g@example.com", "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingLink() {
	linked := &domain.User{UserID: "u3", AuthProvider: domain.ProviderGoogle, ProviderUserID: "sub-1"}
	suite.repo.On("FindUserByProvider", mock.Anything, domain.ProviderGoogle, "sub-1").Return(linked, nil).Once()

	user, err := suite.service.CreateOAuthUser(suite.ctx, "G User", "g@example.com", domain.ProviderGoogle, "sub-1", true)

	suite.Require().NoError(err)
	suite.Equal("u3", user.UserID)
	suite.repo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_VerifiedEmailSignsInExistingUser() {
	existing := &domain.User{UserID: "u4", Email: "g@example.com", AuthProvider: domain.ProviderLocal}
	suite.repo.On("FindUserByProvider", mock.Anything, domain.ProviderGoogle, "sub-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("FindUserByEmail", mock.Anything, "g@example.com").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(suite.ctx, "G User", "G@example.com", domain.ProviderGoogle, "sub-2", true)

	suite.Require().NoError(err)
	suite.Equal("u4", user.UserID)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_UnverifiedEmailConflict() {
	suite.repo.On("FindUserByProvider", mock.Anything, domain.ProviderGoogle, "sub-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("FindUserByEmail", mock.Anything, "g@example.com").Return(&domain.User{UserID: "u5"}, nil).Once()

	_, err := suite.service.CreateOAuthUser(suite.ctx, "G User", "g@example.com", domain.ProviderGoogle, "sub-3", false)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_NewUser() {
	suite.repo.On("FindUserByProvider", mock.Anything, domain.ProviderGoogle, "sub-4").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("FindUserByEmail", mock.Anything, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.ProviderUserID == "sub-4" && u.EmailVerified && u.PasswordHash == "" && u.DisplayName == "new@example.com"
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(suite.ctx, " ", "new@example.com", domain.ProviderGoogle, "sub-4", true)

	suite.Require().NoError(err)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser() {
	stored := &domain.User{UserID: "u6", DisplayName: "Old"}
	suite.repo.On("FindUserByID", mock.Anything, "u6").Return(stored, nil).Once()
	suite.repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.DisplayName == "New Name" && u.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	name := " New Name "
	user, err := suite.service.UpdateUser(suite.ctx, "u6", dto.UpdateUserRequest{DisplayName: &name}, "u6")

	suite.Require().NoError(err)
	suite.Equal("New Name", user.DisplayName)

	_, err = suite.service.UpdateUser(suite.ctx, "u6", dto.UpdateUserRequest{DisplayName: &name}, "someone-else")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestDeleteUser() {
	suite.repo.On("MarkUserDeleted", mock.Anything, "u7", fixedNow, "u7").Return(nil).Once()

	suite.NoError(suite.service.DeleteUser(suite.ctx, "u7", "u7"))
	suite.ErrorIs(suite.service.DeleteUser(suite.ctx, "u7", "u8"), apperrors.ErrForbidden)
	suite.repo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
