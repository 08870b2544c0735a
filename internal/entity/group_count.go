package entity

// GroupCount is one row of a group-by rollup used on the dashboard.
// TotalValue is only populated for deal pipeline rollups.
type GroupCount struct {
	Key        string  `json:"key" bson:"_id"`
	Count      int64   `json:"count" bson:"count"`
	TotalValue float64 `json:"totalValue,omitempty" bson:"total_value,omitempty"`
}
