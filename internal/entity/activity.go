package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityTypeCall     ActivityType = "call"
	ActivityTypeMeeting  ActivityType = "meeting"
	ActivityTypeNote     ActivityType = "note"
	ActivityTypeFollowUp ActivityType = "follow_up"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeCall, ActivityTypeMeeting, ActivityTypeNote, ActivityTypeFollowUp:
		return true
	}
	return false
}

type ActivityStatus string

const (
	ActivityStatusPending   ActivityStatus = "pending"
	ActivityStatusCompleted ActivityStatus = "completed"
	ActivityStatusCancelled ActivityStatus = "cancelled"
)

func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityStatusPending, ActivityStatusCompleted, ActivityStatusCancelled:
		return true
	}
	return false
}

type Activity struct {
	ID          string         `json:"id" bson:"_id"`
	Type        ActivityType   `json:"type" bson:"type"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Status      ActivityStatus `json:"status" bson:"status"`
	LeadID      string         `json:"lead" bson:"lead_id"`
	CreatedBy   string         `json:"createdBy" bson:"created_by"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updated_at"`
}

func NewActivity(activityType ActivityType, title, leadID, createdBy string) (*Activity, error) {
	activity := &Activity{
		ID:        uuid.New().String(),
		Type:      activityType,
		Title:     title,
		Status:    ActivityStatusPending,
		LeadID:    leadID,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

func (a *Activity) Validate() error {
	if !a.Type.Valid() {
		return errors.New("invalid type")
	}
	if a.Title == "" {
		return errors.New("title is required")
	}
	if a.LeadID == "" {
		return errors.New("lead is required")
	}
	if a.CreatedBy == "" {
		return errors.New("createdBy is required")
	}
	if !a.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}
