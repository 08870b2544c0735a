package usecase

import (
	"time"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthOutput struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

type CreateLeadInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Status     string `json:"status"`
	Source     string `json:"source"`
	Priority   string `json:"priority"`
	Notes      string `json:"notes"`
	AssignedTo string `json:"assignedTo"`
}

type UpdateLeadInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Company    *string `json:"company"`
	Status     *string `json:"status"`
	Source     *string `json:"source"`
	Priority   *string `json:"priority"`
	Notes      *string `json:"notes"`
	AssignedTo *string `json:"assignedTo"`
}

type LeadListOutput struct {
	Data  []entity.Lead
	Total int64
	Page  int64
	Pages int64
}

type CreateDealInput struct {
	Title             string   `json:"title"`
	Value             *float64 `json:"value"`
	Stage             string   `json:"stage"`
	Probability       *int     `json:"probability"`
	ExpectedCloseDate string   `json:"expectedCloseDate"`
	Notes             string   `json:"notes"`
	LeadID            string   `json:"lead"`
	AssignedTo        string   `json:"assignedTo"`
}

type UpdateDealInput struct {
	Title             *string  `json:"title"`
	Value             *float64 `json:"value"`
	Stage             *string  `json:"stage"`
	Probability       *int     `json:"probability"`
	ExpectedCloseDate *string  `json:"expectedCloseDate"`
	Notes             *string  `json:"notes"`
	AssignedTo        *string  `json:"assignedTo"`
}

type DealListOutput struct {
	Data  []entity.Deal
	Total int64
	Page  int64
	Pages int64
}

type CreateActivityInput struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	LeadID      string `json:"lead"`
}

type UpdateActivityInput struct {
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type ActivityListOutput struct {
	Data  []entity.Activity
	Total int64
	Page  int64
	Pages int64
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

type UserWithLeads struct {
	User  entity.User   `json:"user"`
	Leads []entity.Lead `json:"leads"`
}

func parseCloseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, ValidationError{"expectedCloseDate", "must be a valid date (YYYY-MM-DD)"}
}
