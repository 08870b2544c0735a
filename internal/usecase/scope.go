package usecase

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

// Caller is the authenticated identity threaded through every usecase.
// It is resolved once by the auth middleware and never stored globally.
type Caller struct {
	ID   string
	Role entity.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// ScopeFilter derives the visibility restriction for a caller.
// Admins see everything; sales users only see records whose owner field
// (assigned_to for leads/deals, created_by for activities) is their own id.
// Every list and stats path must merge this filter in.
func ScopeFilter(caller Caller, ownerField string) bson.M {
	if caller.IsAdmin() {
		return bson.M{}
	}
	return bson.M{ownerField: caller.ID}
}

// mergeScope applies the scope filter on top of request filters.
// Scope keys are written last so request parameters can never weaken them.
func mergeScope(filter, scope bson.M) bson.M {
	for key, value := range scope {
		filter[key] = value
	}
	return filter
}
