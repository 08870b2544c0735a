package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type DealStage string

const (
	DealStageProspect    DealStage = "prospect"
	DealStageNegotiation DealStage = "negotiation"
	DealStageWon         DealStage = "won"
	DealStageLost        DealStage = "lost"
)

func (s DealStage) Valid() bool {
	switch s {
	case DealStageProspect, DealStageNegotiation, DealStageWon, DealStageLost:
		return true
	}
	return false
}

// Moving a deal to won or lost does not touch the lead's status.
// Stage is a plain lifecycle field with no transition rules.
type Deal struct {
	ID                string     `json:"id" bson:"_id"`
	Title             string     `json:"title" bson:"title"`
	Value             float64    `json:"value" bson:"value"`
	Stage             DealStage  `json:"stage" bson:"stage"`
	Probability       int        `json:"probability" bson:"probability"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate,omitempty" bson:"expected_close_date,omitempty"`
	Notes             string     `json:"notes,omitempty" bson:"notes,omitempty"`
	LeadID            string     `json:"lead" bson:"lead_id"`
	AssignedTo        string     `json:"assignedTo" bson:"assigned_to"`
	CreatedBy         string     `json:"createdBy" bson:"created_by"`
	CreatedAt         time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" bson:"updated_at"`
}

func NewDeal(title string, value float64, leadID, assignedTo, createdBy string) (*Deal, error) {
	deal := &Deal{
		ID:         uuid.New().String(),
		Title:      title,
		Value:      value,
		Stage:      DealStageProspect,
		LeadID:     leadID,
		AssignedTo: assignedTo,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := deal.Validate(); err != nil {
		return nil, err
	}

	return deal, nil
}

func (d *Deal) Validate() error {
	if d.Title == "" {
		return errors.New("title is required")
	}
	if d.Value < 0 {
		return errors.New("value must not be negative")
	}
	if d.LeadID == "" {
		return errors.New("lead is required")
	}
	if d.AssignedTo == "" {
		return errors.New("assignedTo is required")
	}
	if d.CreatedBy == "" {
		return errors.New("createdBy is required")
	}
	if !d.Stage.Valid() {
		return errors.New("invalid stage")
	}
	if d.Probability < 0 || d.Probability > 100 {
		return errors.New("probability must be between 0 and 100")
	}
	return nil
}
