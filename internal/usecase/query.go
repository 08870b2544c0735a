package usecase

import (
	"regexp"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salestrack-dev/salestrack/internal/entity"
)

const (
	DefaultLeadPageSize = 10
	DefaultPageSize     = 100
)

// Pagination carries the resolved page window for a list query.
type Pagination struct {
	Page  int64
	Limit int64
}

func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// Pages returns the total page count for the pagination metadata.
func (p Pagination) Pages(total int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// ParsePagination resolves the page/limit query parameters.
// Page is 1-based; zero, negative or unparseable values are clamped to 1.
// A limit that parses to zero or below is rejected: the skip math has no
// sane meaning for it, so silently defaulting would mask a client bug.
func ParsePagination(pageRaw, limitRaw string, defaultLimit int64) (Pagination, error) {
	page, err := strconv.ParseInt(pageRaw, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit := defaultLimit
	if limitRaw != "" {
		limit, err = strconv.ParseInt(limitRaw, 10, 64)
		if err != nil {
			return Pagination{}, ValidationError{"limit", "must be an integer"}
		}
		if limit <= 0 {
			return Pagination{}, ValidationError{"limit", "must be greater than zero"}
		}
	}

	return Pagination{Page: page, Limit: limit}, nil
}

type LeadListParams struct {
	Status   string
	Priority string
	Search   string
}

// LeadFilter translates lead list parameters into a store filter.
// Absent parameters are omitted entirely, never defaulted to wildcards.
// Search expands into a case-insensitive substring match over name,
// email and company.
func LeadFilter(params LeadListParams, scope bson.M) bson.M {
	filter := bson.M{}
	if params.Status != "" {
		filter["status"] = params.Status
	}
	if params.Priority != "" {
		filter["priority"] = params.Priority
	}
	if params.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(params.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"email": pattern},
			{"company": pattern},
		}
	}
	return mergeScope(filter, scope)
}

type DealListParams struct {
	Stage  string
	LeadID string
}

func DealFilter(params DealListParams, scope bson.M) bson.M {
	filter := bson.M{}
	if params.Stage != "" {
		filter["stage"] = params.Stage
	}
	if params.LeadID != "" {
		filter["lead_id"] = params.LeadID
	}
	return mergeScope(filter, scope)
}

type ActivityListParams struct {
	Type   string
	Status string
	LeadID string
}

func ActivityFilter(params ActivityListParams, scope bson.M) bson.M {
	filter := bson.M{}
	if params.Type != "" {
		filter["type"] = params.Type
	}
	if params.Status != "" {
		filter["status"] = params.Status
	}
	if params.LeadID != "" {
		filter["lead_id"] = params.LeadID
	}
	return mergeScope(filter, scope)
}

// sortGroups orders rollup rows alphabetically by key so responses are
// reproducible; the store gives no ordering guarantee across groups.
func sortGroups(groups []entity.GroupCount) []entity.GroupCount {
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}
