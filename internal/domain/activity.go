package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity name is absent from the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("student already signed up")
	// ErrActivityFull indicates the roster has reached max participants.
	ErrActivityFull = errors.New("activity full")
	// ErrNotRegistered indicates the email is not on the activity's roster.
	ErrNotRegistered = errors.New("student not signed up")
	// ErrEmailRequired indicates a missing or blank participant email.
	ErrEmailRequired = errors.New("email required")
)

// Activity is an extracurricular offering with a capacity-bounded roster.
// Participants keep signup order and contain each email at most once.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// SpotsLeft reports remaining roster capacity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Registered reports whether email is already on the roster.
func (a Activity) Registered(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}

// Registry captures roster storage operations. Implementations must
// serialize mutations so the capacity invariant holds under concurrent
// requests.
type Registry interface {
	List(ctx context.Context) (map[string]Activity, error)
	Enroll(ctx context.Context, activity, email string) error
	Withdraw(ctx context.Context, activity, email string) error
}
