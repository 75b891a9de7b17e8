package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SearchLog records one search invocation for catalog analytics: which
// criteria came in, which strategy produced the results, and how long the
// call took.
type SearchLog struct {
	gorm.Model
	SessionID   string         `json:"session_id" gorm:"index"`
	Criteria    datatypes.JSON `json:"criteria"`
	Strategy    string         `json:"strategy" gorm:"index"`
	ResultCount int            `json:"result_count"`
	ExactMatch  bool           `json:"exact_match"`
	DurationMs  int64          `json:"duration_ms"`
}
