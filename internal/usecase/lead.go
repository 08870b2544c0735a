package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type LeadUseCase struct {
	Repo     LeadRepository
	Users    UserRepository
	Notifier NotificationProducer
}

func NewLeadUseCase(repo LeadRepository, users UserRepository, notifier NotificationProducer) *LeadUseCase {
	return &LeadUseCase{Repo: repo, Users: users, Notifier: notifier}
}

func (uc *LeadUseCase) List(ctx context.Context, caller Caller, params LeadListParams, page Pagination) (*LeadListOutput, error) {
	filter := LeadFilter(params, ScopeFilter(caller, "assigned_to"))

	total, err := uc.Repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	leads, err := uc.Repo.Find(ctx, filter, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	return &LeadListOutput{
		Data:  leads,
		Total: total,
		Page:  page.Page,
		Pages: page.Pages(total),
	}, nil
}

func (uc *LeadUseCase) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"Lead"}
	}
	return lead, err
}

func (uc *LeadUseCase) Create(ctx context.Context, caller Caller, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	assignee, err := resolveAssignee(ctx, uc.Users, caller, input.AssignedTo)
	if err != nil {
		return nil, err
	}

	lead, err := entity.NewLead(input.Name, input.Email, assignee.ID, caller.ID)
	if err != nil {
		return nil, ValidationError{"lead", err.Error()}
	}

	lead.Phone = input.Phone
	lead.Company = input.Company
	lead.Notes = input.Notes
	if input.Status != "" {
		lead.Status = entity.LeadStatus(input.Status)
	}
	if input.Source != "" {
		lead.Source = entity.LeadSource(input.Source)
	}
	if input.Priority != "" {
		lead.Priority = entity.Priority(input.Priority)
	}

	if err := uc.Repo.Insert(ctx, lead); err != nil {
		return nil, err
	}

	publishAssignment(ctx, uc.Notifier, "lead", lead.ID, lead.Name, assignee)

	return lead, nil
}

func (uc *LeadUseCase) Update(ctx context.Context, caller Caller, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	var assignee *entity.User
	if input.AssignedTo != nil {
		var err error
		assignee, err = resolveAssignee(ctx, uc.Users, caller, *input.AssignedTo)
		if err != nil {
			return nil, err
		}
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Company != nil {
		set["company"] = *input.Company
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Source != nil {
		set["source"] = *input.Source
	}
	if input.Priority != nil {
		set["priority"] = *input.Priority
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}
	if assignee != nil {
		set["assigned_to"] = assignee.ID
	}

	lead, err := uc.Repo.UpdateByID(ctx, id, set)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"Lead"}
	}
	if err != nil {
		return nil, err
	}

	if assignee != nil {
		publishAssignment(ctx, uc.Notifier, "lead", lead.ID, lead.Name, assignee)
	}

	return lead, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Repo.DeleteByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return &NotFoundError{"Lead"}
	}
	return err
}

// Stats rolls leads up by status within the caller's scope. Statuses with
// no matching leads are absent from the result; rows come back sorted by key.
func (uc *LeadUseCase) Stats(ctx context.Context, caller Caller) ([]entity.GroupCount, error) {
	groups, err := uc.Repo.GroupByStatus(ctx, ScopeFilter(caller, "assigned_to"))
	if err != nil {
		return nil, err
	}
	return sortGroups(groups), nil
}
