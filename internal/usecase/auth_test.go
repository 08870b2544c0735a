package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

func TestRegister_DefaultsToSalesRole(t *testing.T) {
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	uc := NewAuthUseCase(users, hasher, tokens)

	hasher.On("Hash", "secret1").Return("$hashed", nil)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleSales && u.IsActive && u.PasswordHash == "$hashed"
	})).Return(nil)
	tokens.On("Generate", mock.Anything).Return("tok-123", nil)

	output, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@corp.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok-123", output.Token)
	assert.Equal(t, entity.RoleSales, output.User.Role)
	users.AssertExpectations(t)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	uc := NewAuthUseCase(new(MockUserRepository), new(MockPasswordHasher), new(MockTokenIssuer))

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@corp.com",
		Password: "12345",
	})

	var errs ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "password", errs[0].Field)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	uc := NewAuthUseCase(users, hasher, new(MockTokenIssuer))

	hasher.On("Hash", mock.Anything).Return("$hashed", nil)
	users.On("Insert", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@corp.com",
		Password: "secret1",
	})

	var ve ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	uc := NewAuthUseCase(users, hasher, tokens)

	user := &entity.User{ID: "u-1", Email: "ana@corp.com", PasswordHash: "$hashed", Role: entity.RoleSales, IsActive: true}
	users.On("FindByEmail", mock.Anything, "ana@corp.com").Return(user, nil)
	hasher.On("Compare", "$hashed", "secret1").Return(nil)
	tokens.On("Generate", "u-1").Return("tok-123", nil)

	output, err := uc.Login(context.Background(), LoginInput{Email: "ana@corp.com", Password: "secret1"})

	assert.NoError(t, err)
	assert.Equal(t, "tok-123", output.Token)
}

func TestLogin_UnknownEmailGetsGenericError(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewAuthUseCase(users, new(MockPasswordHasher), new(MockTokenIssuer))

	users.On("FindByEmail", mock.Anything, "ghost@corp.com").Return(nil, entity.ErrNotFound)

	_, err := uc.Login(context.Background(), LoginInput{Email: "ghost@corp.com", Password: "secret1"})

	var authErr *AuthenticationError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid credentials", authErr.Message)
}

func TestLogin_WrongPasswordGetsGenericError(t *testing.T) {
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	uc := NewAuthUseCase(users, hasher, new(MockTokenIssuer))

	user := &entity.User{ID: "u-1", PasswordHash: "$hashed", IsActive: true}
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil)
	hasher.On("Compare", "$hashed", "wrong").Return(errors.New("mismatch"))

	_, err := uc.Login(context.Background(), LoginInput{Email: "ana@corp.com", Password: "wrong"})

	var authErr *AuthenticationError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid credentials", authErr.Message)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewAuthUseCase(users, new(MockPasswordHasher), new(MockTokenIssuer))

	user := &entity.User{ID: "u-1", PasswordHash: "$hashed", IsActive: false}
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil)

	_, err := uc.Login(context.Background(), LoginInput{Email: "ana@corp.com", Password: "secret1"})

	var authErr *AuthenticationError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "account is deactivated", authErr.Message)
}
