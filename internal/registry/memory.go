// Package registry stores the activity catalog in process memory.
package registry

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// MemoryRegistry holds the activity catalog behind a mutex. All
// check-then-mutate sequences run under the write lock, which keeps the
// capacity and uniqueness invariants intact under concurrent requests.
type MemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewMemoryRegistry constructs a registry populated with the seed catalog.
func NewMemoryRegistry() *MemoryRegistry {
	r := &MemoryRegistry{}
	r.Reset()
	return r
}

// Reset restores the registry to the seed catalog. Tests use it to get
// a known roster state between cases.
func (r *MemoryRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = make(map[string]domain.Activity)
	for _, activity := range seedCatalog() {
		r.activities[activity.Name] = activity
		observability.SetRosterSize(activity.Name, len(activity.Participants))
	}
}

// List returns a deep copy of the catalog keyed by activity name.
func (r *MemoryRegistry) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		roster := make([]string, len(activity.Participants))
		copy(roster, activity.Participants)
		activity.Participants = roster
		out[name] = activity
	}
	return out, nil
}

// Enroll appends email to the activity's roster in signup order.
func (r *MemoryRegistry) Enroll(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.Registered(email) {
		return domain.ErrAlreadyRegistered
	}
	if len(activity.Participants) >= activity.MaxParticipants {
		return domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	observability.SetRosterSize(name, len(activity.Participants))
	return nil
}

// Withdraw removes email from the activity's roster, preserving the
// relative order of the remaining participants.
func (r *MemoryRegistry) Withdraw(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	index := -1
	for i, participant := range activity.Participants {
		if participant == email {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.ErrNotRegistered
	}

	roster := make([]string, 0, len(activity.Participants)-1)
	roster = append(roster, activity.Participants[:index]...)
	roster = append(roster, activity.Participants[index+1:]...)
	activity.Participants = roster
	r.activities[name] = activity
	observability.SetRosterSize(name, len(activity.Participants))
	return nil
}
