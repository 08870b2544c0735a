package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

// UserUseCase backs the admin-only user management endpoints.
// Role checks happen in the middleware; nothing here is scope filtered.
type UserUseCase struct {
	Repo  UserRepository
	Leads LeadRepository
}

func NewUserUseCase(repo UserRepository, leads LeadRepository) *UserUseCase {
	return &UserUseCase{Repo: repo, Leads: leads}
}

func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	return uc.Repo.FindAll(ctx)
}

// GetWithLeads returns the user plus every lead assigned to them,
// unpaginated. This path is admin-only so no scope filter applies.
func (uc *UserUseCase) GetWithLeads(ctx context.Context, id string) (*UserWithLeads, error) {
	user, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"User"}
	}
	if err != nil {
		return nil, err
	}

	leads, err := uc.Leads.Find(ctx, bson.M{"assigned_to": id}, 0, 0)
	if err != nil {
		return nil, err
	}

	return &UserWithLeads{User: *user, Leads: leads}, nil
}

func (uc *UserUseCase) Update(ctx context.Context, id string, input UpdateUserInput) (*entity.User, error) {
	if errs := ValidateUpdateUserInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Role != nil {
		set["role"] = *input.Role
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}

	user, err := uc.Repo.UpdateByID(ctx, id, set)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"User"}
	}
	if errors.Is(err, entity.ErrEmailAlreadyExists) {
		return nil, ValidationError{"email", "already registered"}
	}
	return user, err
}

func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Repo.DeleteByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return &NotFoundError{"User"}
	}
	return err
}
