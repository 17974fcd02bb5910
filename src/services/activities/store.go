package activities

import (
	"sync"

	"mergington-activities/src/models"
)

// Store owns the name -> Activity mapping for the lifetime of the process.
//
// Roster mutations run under a per-activity mutex while holding the map read
// lock; Snapshot takes the write lock so it never observes a half-applied change.
type Store struct {
	mu         sync.RWMutex
	activities models.ActivityMap
	locks      map[string]*sync.Mutex
}

// NewStore wraps an already loaded mapping. A nil map yields an empty store.
func NewStore(activities models.ActivityMap) *Store {
	if activities == nil {
		activities = models.ActivityMap{}
	}
	locks := make(map[string]*sync.Mutex, len(activities))
	for name, a := range activities {
		if a == nil {
			a = &models.Activity{}
			activities[name] = a
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}
		locks[name] = &sync.Mutex{}
	}
	return &Store{activities: activities, locks: locks}
}

// List returns the live mapping. Callers see later roster changes.
func (s *Store) List() models.ActivityMap {
	return s.activities
}

// Snapshot returns a deep copy taken while no roster change is in flight.
func (s *Store) Snapshot() models.ActivityMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activities.Clone()
}

// Get returns the activity for name, or false when it does not exist.
func (s *Store) Get(name string) (*models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.activities[name]
	return a, ok
}

// Len is the number of activities held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// Update runs fn against one activity with its roster locked.
// It returns ErrActivityNotFound if name is not a key.
func (s *Store) Update(name string, fn func(a *models.Activity) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	lock := s.locks[name]
	lock.Lock()
	defer lock.Unlock()

	return fn(a)
}
