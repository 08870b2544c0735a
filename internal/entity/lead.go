package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusConverted   LeadStatus = "converted"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusUnqualified, LeadStatusConverted:
		return true
	}
	return false
}

type LeadSource string

const (
	LeadSourceWebsite     LeadSource = "website"
	LeadSourceReferral    LeadSource = "referral"
	LeadSourceSocialMedia LeadSource = "social_media"
	LeadSourceColdCall    LeadSource = "cold_call"
	LeadSourceEmail       LeadSource = "email"
	LeadSourceOther       LeadSource = "other"
)

func (s LeadSource) Valid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceReferral, LeadSourceSocialMedia, LeadSourceColdCall, LeadSourceEmail, LeadSourceOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Lead struct {
	ID         string     `json:"id" bson:"_id"`
	Name       string     `json:"name" bson:"name"`
	Email      string     `json:"email" bson:"email"`
	Phone      string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Company    string     `json:"company,omitempty" bson:"company,omitempty"`
	Status     LeadStatus `json:"status" bson:"status"`
	Source     LeadSource `json:"source" bson:"source"`
	Priority   Priority   `json:"priority" bson:"priority"`
	Notes      string     `json:"notes,omitempty" bson:"notes,omitempty"`
	AssignedTo string     `json:"assignedTo" bson:"assigned_to"`
	CreatedBy  string     `json:"createdBy" bson:"created_by"`
	CreatedAt  time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updated_at"`
}

func NewLead(name, email, assignedTo, createdBy string) (*Lead, error) {
	lead := &Lead{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Status:     LeadStatusNew,
		Source:     LeadSourceOther,
		Priority:   PriorityMedium,
		AssignedTo: assignedTo,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.AssignedTo == "" {
		return errors.New("assignedTo is required")
	}
	if l.CreatedBy == "" {
		return errors.New("createdBy is required")
	}
	if !l.Status.Valid() {
		return errors.New("invalid status")
	}
	if !l.Source.Valid() {
		return errors.New("invalid source")
	}
	if !l.Priority.Valid() {
		return errors.New("invalid priority")
	}
	return nil
}
