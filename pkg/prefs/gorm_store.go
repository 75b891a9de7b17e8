// pkg/prefs/gorm_store.go
package prefs

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gharbari_backend/internal/model"
)

// GormStore persists preferences in the user_preferences table, one row per
// session id. The merge is a single UPDATE carrying only the non-nil fields,
// so concurrent upserts for the same session are last-write-wins per field
// without corrupting the row.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Upsert(in model.UserPreference) error {
	updates := nonNilUpdates(&in)

	var existing model.UserPreference
	err := s.db.Where("session_id = ?", in.SessionID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		in.LastUpdated = time.Now()
		return s.db.Create(&in).Error
	}
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	updates["last_updated"] = time.Now()
	return s.db.Model(&model.UserPreference{}).
		Where("session_id = ?", in.SessionID).
		Updates(updates).Error
}

func (s *GormStore) Get(sessionID string) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := s.db.Where("session_id = ?", sessionID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (s *GormStore) DeleteUpdatedBefore(cutoff time.Time) (int64, error) {
	result := s.db.Where("last_updated < ?", cutoff).Delete(&model.UserPreference{})
	return result.RowsAffected, result.Error
}

func nonNilUpdates(p *model.UserPreference) map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Area != nil {
		updates["area"] = *p.Area
	}
	if p.PropertyType != nil {
		updates["property_type"] = *p.PropertyType
	}
	if p.MinBudget != nil {
		updates["min_budget"] = *p.MinBudget
	}
	if p.MaxBudget != nil {
		updates["max_budget"] = *p.MaxBudget
	}
	if p.Configuration != nil {
		updates["configuration"] = *p.Configuration
	}
	if p.PossessionDate != nil {
		updates["possession_date"] = *p.PossessionDate
	}
	if p.MinSize != nil {
		updates["min_size"] = *p.MinSize
	}
	if p.MaxSize != nil {
		updates["max_size"] = *p.MaxSize
	}
	return updates
}
