package usecase

import (
	"net/mail"
	"strings"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

func ValidateRegisterInput(input RegisterInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if input.Password == "" {
		errs = append(errs, ValidationError{"password", "is required"})
	} else if len(input.Password) < 6 {
		errs = append(errs, ValidationError{"password", "must have at least 6 characters"})
	}

	if input.Role != "" && !entity.Role(input.Role).Valid() {
		errs = append(errs, ValidationError{"role", "must be admin or sales"})
	}

	return errs
}

func ValidateLoginInput(input LoginInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	}
	if input.Password == "" {
		errs = append(errs, ValidationError{"password", "is required"})
	}

	return errs
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if input.Status != "" && !entity.LeadStatus(input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid lead status"})
	}
	if input.Source != "" && !entity.LeadSource(input.Source).Valid() {
		errs = append(errs, ValidationError{"source", "is not a valid lead source"})
	}
	if input.Priority != "" && !entity.Priority(input.Priority).Valid() {
		errs = append(errs, ValidationError{"priority", "is not a valid priority"})
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errs []ValidationError

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, ValidationError{"name", "must not be empty"})
	}
	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}
	if input.Status != nil && !entity.LeadStatus(*input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid lead status"})
	}
	if input.Source != nil && !entity.LeadSource(*input.Source).Valid() {
		errs = append(errs, ValidationError{"source", "is not a valid lead source"})
	}
	if input.Priority != nil && !entity.Priority(*input.Priority).Valid() {
		errs = append(errs, ValidationError{"priority", "is not a valid priority"})
	}
	if input.AssignedTo != nil && strings.TrimSpace(*input.AssignedTo) == "" {
		errs = append(errs, ValidationError{"assignedTo", "must not be empty"})
	}

	return errs
}

func ValidateCreateDealInput(input CreateDealInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	}

	if input.Value == nil {
		errs = append(errs, ValidationError{"value", "is required"})
	} else if *input.Value < 0 {
		errs = append(errs, ValidationError{"value", "must not be negative"})
	}

	if strings.TrimSpace(input.LeadID) == "" {
		errs = append(errs, ValidationError{"lead", "is required"})
	}

	if input.Stage != "" && !entity.DealStage(input.Stage).Valid() {
		errs = append(errs, ValidationError{"stage", "is not a valid deal stage"})
	}
	if input.Probability != nil && (*input.Probability < 0 || *input.Probability > 100) {
		errs = append(errs, ValidationError{"probability", "must be between 0 and 100"})
	}

	return errs
}

func ValidateUpdateDealInput(input UpdateDealInput) []ValidationError {
	var errs []ValidationError

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		errs = append(errs, ValidationError{"title", "must not be empty"})
	}
	if input.Value != nil && *input.Value < 0 {
		errs = append(errs, ValidationError{"value", "must not be negative"})
	}
	if input.Stage != nil && !entity.DealStage(*input.Stage).Valid() {
		errs = append(errs, ValidationError{"stage", "is not a valid deal stage"})
	}
	if input.Probability != nil && (*input.Probability < 0 || *input.Probability > 100) {
		errs = append(errs, ValidationError{"probability", "must be between 0 and 100"})
	}
	if input.AssignedTo != nil && strings.TrimSpace(*input.AssignedTo) == "" {
		errs = append(errs, ValidationError{"assignedTo", "must not be empty"})
	}

	return errs
}

func ValidateCreateActivityInput(input CreateActivityInput) []ValidationError {
	var errs []ValidationError

	if input.Type == "" {
		errs = append(errs, ValidationError{"type", "is required"})
	} else if !entity.ActivityType(input.Type).Valid() {
		errs = append(errs, ValidationError{"type", "is not a valid activity type"})
	}

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	}

	if strings.TrimSpace(input.LeadID) == "" {
		errs = append(errs, ValidationError{"lead", "is required"})
	}

	if input.Status != "" && !entity.ActivityStatus(input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid activity status"})
	}

	return errs
}

func ValidateUpdateActivityInput(input UpdateActivityInput) []ValidationError {
	var errs []ValidationError

	if input.Type != nil && !entity.ActivityType(*input.Type).Valid() {
		errs = append(errs, ValidationError{"type", "is not a valid activity type"})
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		errs = append(errs, ValidationError{"title", "must not be empty"})
	}
	if input.Status != nil && !entity.ActivityStatus(*input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid activity status"})
	}

	return errs
}

func ValidateUpdateUserInput(input UpdateUserInput) []ValidationError {
	var errs []ValidationError

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, ValidationError{"name", "must not be empty"})
	}
	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}
	if input.Role != nil && !entity.Role(*input.Role).Valid() {
		errs = append(errs, ValidationError{"role", "must be admin or sales"})
	}

	return errs
}
