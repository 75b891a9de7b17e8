// pkg/prefs/prefs.go
package prefs

import (
	"sync"
	"time"

	"gharbari_backend/internal/model"
)

// Store persists the latest non-null search criteria per session. Upsert
// merges field by field: a nil incoming field never clears a stored value.
// Implementations must keep per-row updates atomic; cross-session
// coordination is not needed since sessions touch disjoint rows.
type Store interface {
	Upsert(pref model.UserPreference) error
	// Get returns the stored record, or nil when the session has none.
	Get(sessionID string) (*model.UserPreference, error)
	// DeleteUpdatedBefore removes records not touched since the cutoff and
	// returns how many were removed.
	DeleteUpdatedBefore(cutoff time.Time) (int64, error)
}

// MemoryStore keeps preferences in a mutex-guarded map. Used in tests and
// as a fallback when no database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]model.UserPreference
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]model.UserPreference)}
}

func (s *MemoryStore) Upsert(in model.UserPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.prefs[in.SessionID]
	stored.SessionID = in.SessionID
	mergeInto(&stored, &in)
	stored.LastUpdated = time.Now()
	s.prefs[in.SessionID] = stored
	return nil
}

func (s *MemoryStore) Get(sessionID string) (*model.UserPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.prefs[sessionID]
	if !ok {
		return nil, nil
	}
	out := stored
	return &out, nil
}

func (s *MemoryStore) DeleteUpdatedBefore(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, p := range s.prefs {
		if p.LastUpdated.Before(cutoff) {
			delete(s.prefs, id)
			removed++
		}
	}
	return removed, nil
}

// mergeInto copies in's non-nil fields over dst.
func mergeInto(dst, in *model.UserPreference) {
	if in.Area != nil {
		dst.Area = in.Area
	}
	if in.PropertyType != nil {
		dst.PropertyType = in.PropertyType
	}
	if in.MinBudget != nil {
		dst.MinBudget = in.MinBudget
	}
	if in.MaxBudget != nil {
		dst.MaxBudget = in.MaxBudget
	}
	if in.Configuration != nil {
		dst.Configuration = in.Configuration
	}
	if in.PossessionDate != nil {
		dst.PossessionDate = in.PossessionDate
	}
	if in.MinSize != nil {
		dst.MinSize = in.MinSize
	}
	if in.MaxSize != nil {
		dst.MaxSize = in.MaxSize
	}
}
