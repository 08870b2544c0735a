package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

type DealUseCase struct {
	Repo     DealRepository
	Users    UserRepository
	Notifier NotificationProducer
}

func NewDealUseCase(repo DealRepository, users UserRepository, notifier NotificationProducer) *DealUseCase {
	return &DealUseCase{Repo: repo, Users: users, Notifier: notifier}
}

func (uc *DealUseCase) List(ctx context.Context, caller Caller, params DealListParams, page Pagination) (*DealListOutput, error) {
	filter := DealFilter(params, ScopeFilter(caller, "assigned_to"))

	total, err := uc.Repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	deals, err := uc.Repo.Find(ctx, filter, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	return &DealListOutput{
		Data:  deals,
		Total: total,
		Page:  page.Page,
		Pages: page.Pages(total),
	}, nil
}

func (uc *DealUseCase) Get(ctx context.Context, id string) (*entity.Deal, error) {
	deal, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"Deal"}
	}
	return deal, err
}

func (uc *DealUseCase) Create(ctx context.Context, caller Caller, input CreateDealInput) (*entity.Deal, error) {
	if errs := ValidateCreateDealInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	closeDate, err := parseCloseDate(input.ExpectedCloseDate)
	if err != nil {
		return nil, err
	}

	assignee, err := resolveAssignee(ctx, uc.Users, caller, input.AssignedTo)
	if err != nil {
		return nil, err
	}

	deal, err := entity.NewDeal(input.Title, *input.Value, input.LeadID, assignee.ID, caller.ID)
	if err != nil {
		return nil, ValidationError{"deal", err.Error()}
	}

	deal.Notes = input.Notes
	deal.ExpectedCloseDate = closeDate
	if input.Stage != "" {
		deal.Stage = entity.DealStage(input.Stage)
	}
	if input.Probability != nil {
		deal.Probability = *input.Probability
	}

	if err := uc.Repo.Insert(ctx, deal); err != nil {
		return nil, err
	}

	publishAssignment(ctx, uc.Notifier, "deal", deal.ID, deal.Title, assignee)

	return deal, nil
}

func (uc *DealUseCase) Update(ctx context.Context, caller Caller, id string, input UpdateDealInput) (*entity.Deal, error) {
	if errs := ValidateUpdateDealInput(input); len(errs) > 0 {
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
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Value != nil {
		set["value"] = *input.Value
	}
	if input.Stage != nil {
		set["stage"] = *input.Stage
	}
	if input.Probability != nil {
		set["probability"] = *input.Probability
	}
	if input.ExpectedCloseDate != nil {
		closeDate, err := parseCloseDate(*input.ExpectedCloseDate)
		if err != nil {
			return nil, err
		}
		set["expected_close_date"] = closeDate
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}
	if assignee != nil {
		set["assigned_to"] = assignee.ID
	}

	deal, err := uc.Repo.UpdateByID(ctx, id, set)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &NotFoundError{"Deal"}
	}
	if err != nil {
		return nil, err
	}

	if assignee != nil {
		publishAssignment(ctx, uc.Notifier, "deal", deal.ID, deal.Title, assignee)
	}

	return deal, nil
}

func (uc *DealUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Repo.DeleteByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return &NotFoundError{"Deal"}
	}
	return err
}

// Pipeline rolls deals up by stage within the caller's scope, summing deal
// values per stage. Empty stages are omitted; rows are sorted by key.
func (uc *DealUseCase) Pipeline(ctx context.Context, caller Caller) ([]entity.GroupCount, error) {
	groups, err := uc.Repo.GroupByStage(ctx, ScopeFilter(caller, "assigned_to"))
	if err != nil {
		return nil, err
	}
	return sortGroups(groups), nil
}
