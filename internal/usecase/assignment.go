package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/salestrack-dev/salestrack/internal/entity"
	"github.com/salestrack-dev/salestrack/internal/infra/queue"
)

// resolveAssignee applies the ownership default: sales callers always get
// themselves, admins may hand a record to anyone. The assignee must exist.
func resolveAssignee(ctx context.Context, users UserRepository, caller Caller, requested string) (*entity.User, error) {
	if requested == "" {
		requested = caller.ID
	}
	if !caller.IsAdmin() && requested != caller.ID {
		return nil, &AuthorizationError{"only admins can assign records to other users"}
	}

	assignee, err := users.FindByID(ctx, requested)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ValidationError{"assignedTo", "user does not exist"}
	}
	if err != nil {
		return nil, err
	}
	return assignee, nil
}

// publishAssignment queues a notification for the assignee. A broker failure
// never fails the request: the record is already saved, so we log and move on.
func publishAssignment(ctx context.Context, notifier NotificationProducer, kind, recordID, title string, assignee *entity.User) {
	if notifier == nil {
		return
	}
	payload := queue.AssignmentPayload{
		Kind:          kind,
		RecordID:      recordID,
		Title:         title,
		AssigneeID:    assignee.ID,
		AssigneeName:  assignee.Name,
		AssigneeEmail: assignee.Email,
	}
	if err := notifier.PublishAssignment(ctx, payload); err != nil {
		log.Printf("%s %s saved but assignment notification failed: %v", kind, recordID, err)
	}
}
