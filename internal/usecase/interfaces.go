package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
	"github.com/salestrack-dev/salestrack/internal/infra/queue"
)

type LeadRepository interface {
	Insert(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]entity.Lead, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (*entity.Lead, error)
	DeleteByID(ctx context.Context, id string) error
	GroupByStatus(ctx context.Context, match bson.M) ([]entity.GroupCount, error)
}

type DealRepository interface {
	Insert(ctx context.Context, deal *entity.Deal) error
	FindByID(ctx context.Context, id string) (*entity.Deal, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]entity.Deal, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (*entity.Deal, error)
	DeleteByID(ctx context.Context, id string) error
	GroupByStage(ctx context.Context, match bson.M) ([]entity.GroupCount, error)
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id string) (*entity.Activity, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]entity.Activity, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (*entity.Activity, error)
	DeleteByID(ctx context.Context, id string) error
}

type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (*entity.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type NotificationProducer interface {
	PublishAssignment(ctx context.Context, payload queue.AssignmentPayload) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type TokenIssuer interface {
	Generate(userID string) (string, error)
}
