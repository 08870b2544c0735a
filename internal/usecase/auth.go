package usecase

import (
	"context"
	"errors"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type AuthUseCase struct {
	Users  UserRepository
	Hasher PasswordHasher
	Tokens TokenIssuer
}

func NewAuthUseCase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{Users: users, Hasher: hasher, Tokens: tokens}
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if errs := ValidateRegisterInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(input.Name, input.Email, hash, entity.Role(input.Role))
	if err != nil {
		return nil, ValidationError{"user", err.Error()}
	}

	if err := uc.Users.Insert(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, ValidationError{"email", "already registered"}
		}
		return nil, err
	}

	token, err := uc.Tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Token: token, User: *user}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if errs := ValidateLoginInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &AuthenticationError{"invalid credentials"}
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, &AuthenticationError{"account is deactivated"}
	}

	if err := uc.Hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, &AuthenticationError{"invalid credentials"}
	}

	token, err := uc.Tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Token: token, User: *user}, nil
}
