// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"example.com/activities/internal/observability"
)

// Service orchestrates signup workflows against the registry.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns the full catalog keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.List(ctx)
}

// Enroll signs email up for the named activity and returns a
// confirmation message. A rejected enrollment leaves the roster
// untouched.
func (s *Service) Enroll(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	if err := s.registry.Enroll(ctx, activity, email); err != nil {
		observability.RecordRejection("signup", rejectionReason(err))
		return "", err
	}

	observability.RecordSignup(activity)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Withdraw removes email from the named activity's roster and returns a
// confirmation message.
func (s *Service) Withdraw(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	if err := s.registry.Withdraw(ctx, activity, email); err != nil {
		observability.RecordRejection("unregister", rejectionReason(err))
		return "", err
	}

	observability.RecordWithdrawal(activity)
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrActivityFull):
		return "capacity_exceeded"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	default:
		return "error"
	}
}
