package search

import "gharbari_backend/internal/model"

// Criteria is one search request's worth of constraints. Every field is
// optional; nil means "not specified". Inverted ranges are passed through
// as-is and simply match nothing.
type Criteria struct {
	Area           *string  `json:"area,omitempty"`
	PropertyType   *string  `json:"property_type,omitempty"`
	MinBudget      *float64 `json:"min_budget,omitempty"`
	MaxBudget      *float64 `json:"max_budget,omitempty"`
	Configurations *string  `json:"configurations,omitempty"`
	PossessionDate *string  `json:"possession_date,omitempty"`
	MinSize        *float64 `json:"min_size,omitempty"`
	MaxSize        *float64 `json:"max_size,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (c Criteria) IsEmpty() bool {
	return c.Area == nil && c.PropertyType == nil &&
		c.MinBudget == nil && c.MaxBudget == nil &&
		c.Configurations == nil && c.PossessionDate == nil &&
		c.MinSize == nil && c.MaxSize == nil
}

// AreaOnly reports whether area is the only constraint set.
func (c Criteria) AreaOnly() bool {
	return c.Area != nil && c.PropertyType == nil &&
		c.MinBudget == nil && c.MaxBudget == nil &&
		c.Configurations == nil && c.PossessionDate == nil &&
		c.MinSize == nil && c.MaxSize == nil
}

// Conditions lists the names of the constraints that are set, in a fixed
// order. Used for feedback about which conditions were matched or relaxed.
func (c Criteria) Conditions() []string {
	var conds []string
	if c.Area != nil {
		conds = append(conds, "area")
	}
	if c.PropertyType != nil {
		conds = append(conds, "property_type")
	}
	if c.MinBudget != nil {
		conds = append(conds, "min_budget")
	}
	if c.MaxBudget != nil {
		conds = append(conds, "max_budget")
	}
	if c.Configurations != nil {
		conds = append(conds, "configurations")
	}
	if c.PossessionDate != nil {
		conds = append(conds, "possession_date")
	}
	if c.MinSize != nil {
		conds = append(conds, "min_size")
	}
	if c.MaxSize != nil {
		conds = append(conds, "max_size")
	}
	return conds
}

// MergedWith fills c's unset fields from base and returns the result.
// Values already present in c always win.
func (c Criteria) MergedWith(base Criteria) Criteria {
	out := c
	if out.Area == nil {
		out.Area = base.Area
	}
	if out.PropertyType == nil {
		out.PropertyType = base.PropertyType
	}
	if out.MinBudget == nil {
		out.MinBudget = base.MinBudget
	}
	if out.MaxBudget == nil {
		out.MaxBudget = base.MaxBudget
	}
	if out.Configurations == nil {
		out.Configurations = base.Configurations
	}
	if out.PossessionDate == nil {
		out.PossessionDate = base.PossessionDate
	}
	if out.MinSize == nil {
		out.MinSize = base.MinSize
	}
	if out.MaxSize == nil {
		out.MaxSize = base.MaxSize
	}
	return out
}

// Preference converts the criteria into a preference row for storage.
func (c Criteria) Preference(sessionID string) model.UserPreference {
	return model.UserPreference{
		SessionID:      sessionID,
		Area:           c.Area,
		PropertyType:   c.PropertyType,
		MinBudget:      c.MinBudget,
		MaxBudget:      c.MaxBudget,
		Configuration:  c.Configurations,
		PossessionDate: c.PossessionDate,
		MinSize:        c.MinSize,
		MaxSize:        c.MaxSize,
	}
}

// CriteriaFromPreference rebuilds criteria from a stored preference row.
func CriteriaFromPreference(p *model.UserPreference) Criteria {
	if p == nil {
		return Criteria{}
	}
	return Criteria{
		Area:           p.Area,
		PropertyType:   p.PropertyType,
		MinBudget:      p.MinBudget,
		MaxBudget:      p.MaxBudget,
		Configurations: p.Configuration,
		PossessionDate: p.PossessionDate,
		MinSize:        p.MinSize,
		MaxSize:        p.MaxSize,
	}
}
