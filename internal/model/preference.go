package model

import "time"

// UserPreference holds the most recent non-null search criteria per session.
// Incoming nil fields never clear a stored value; the merge happens in the
// preference store, field by field.
type UserPreference struct {
	SessionID      string   `json:"session_id" gorm:"primaryKey"`
	Area           *string  `json:"area"`
	PropertyType   *string  `json:"property_type"`
	MinBudget      *float64 `json:"min_budget"`
	MaxBudget      *float64 `json:"max_budget"`
	Configuration  *string  `json:"configuration"`
	PossessionDate *string  `json:"possession_date"`
	MinSize        *float64 `json:"min_size"`
	MaxSize        *float64 `json:"max_size"`
	LastUpdated    time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}

// IsEmpty reports whether no preference field is set.
func (p *UserPreference) IsEmpty() bool {
	return p.Area == nil && p.PropertyType == nil &&
		p.MinBudget == nil && p.MaxBudget == nil &&
		p.Configuration == nil && p.PossessionDate == nil &&
		p.MinSize == nil && p.MaxSize == nil
}
