package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

func TestUserGetWithLeads(t *testing.T) {
	users := new(MockUserRepository)
	leads := new(MockLeadRepository)
	uc := NewUserUseCase(users, leads)

	users.On("FindByID", mock.Anything, "u-1").Return(&entity.User{ID: "u-1", Name: "Ana"}, nil)
	leads.On("Find", mock.Anything, bson.M{"assigned_to": "u-1"}, int64(0), int64(0)).
		Return([]entity.Lead{{ID: "l-1"}, {ID: "l-2"}}, nil)

	result, err := uc.GetWithLeads(context.Background(), "u-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ana", result.User.Name)
	assert.Len(t, result.Leads, 2)
}

func TestUserGetWithLeads_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewUserUseCase(users, new(MockLeadRepository))

	users.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.GetWithLeads(context.Background(), "missing")

	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "User", nfErr.Resource)
}

func TestUserUpdate_MapsDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewUserUseCase(users, new(MockLeadRepository))

	email := "taken@corp.com"
	users.On("UpdateByID", mock.Anything, "u-1", mock.Anything).Return(nil, entity.ErrEmailAlreadyExists)

	_, err := uc.Update(context.Background(), "u-1", UpdateUserInput{Email: &email})

	var ve ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestUserUpdate_Deactivate(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewUserUseCase(users, new(MockLeadRepository))

	active := false
	users.On("UpdateByID", mock.Anything, "u-1", mock.MatchedBy(func(set bson.M) bool {
		return set["is_active"] == false
	})).Return(&entity.User{ID: "u-1", IsActive: false}, nil)

	user, err := uc.Update(context.Background(), "u-1", UpdateUserInput{IsActive: &active})

	assert.NoError(t, err)
	assert.False(t, user.IsActive)
	users.AssertExpectations(t)
}

func TestUserUpdate_InvalidRole(t *testing.T) {
	uc := NewUserUseCase(new(MockUserRepository), new(MockLeadRepository))

	role := "manager"
	_, err := uc.Update(context.Background(), "u-1", UpdateUserInput{Role: &role})

	var errs ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "role", errs[0].Field)
}

func TestUserDelete_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewUserUseCase(users, new(MockLeadRepository))

	users.On("DeleteByID", mock.Anything, "missing").Return(entity.ErrNotFound)

	err := uc.Delete(context.Background(), "missing")

	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}
