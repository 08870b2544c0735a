package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type ActivityUseCase struct {
	Repo ActivityRepository
}

func NewActivityUseCase(repo ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{Repo: repo}
}

// Activities are scoped by creator, not assignee: they have no assignedTo.
func (uc *ActivityUseCase) List(ctx context.Context, caller Caller, params ActivityListParams, page Pagination) (*ActivityListOutput, error) {
	filter := ActivityFilter(params, ScopeFilter(caller, "created_by"))

	total, err := uc.Repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	activities, err := uc.Repo.Find(ctx, filter, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	return &ActivityListOutput{
		Data:  activities,
		Total: total,
		Page:  page.Page,
		Pages: page.Pages(total),
	}, nil
}

func (uc *ActivityUseCase) Get(ctx context.Context, id string) (*entity.Activity, error) {
	activity, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"Activity"}
	}
	return activity, err
}

func (uc *ActivityUseCase) Create(ctx context.Context, caller Caller, input CreateActivityInput) (*entity.Activity, error) {
	if errs := ValidateCreateActivityInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	activity, err := entity.NewActivity(entity.ActivityType(input.Type), input.Title, input.LeadID, caller.ID)
	if err != nil {
		return nil, ValidationError{"activity", err.Error()}
	}

	activity.Description = input.Description
	if input.Status != "" {
		activity.Status = entity.ActivityStatus(input.Status)
	}

	if err := uc.Repo.Insert(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (uc *ActivityUseCase) Update(ctx context.Context, id string, input UpdateActivityInput) (*entity.Activity, error) {
	if errs := ValidateUpdateActivityInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}

	activity, err := uc.Repo.UpdateByID(ctx, id, set)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"Activity"}
	}
	return activity, err
}

func (uc *ActivityUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Repo.DeleteByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return &NotFoundError{"Activity"}
	}
	return err
}
