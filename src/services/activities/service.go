package activities

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mergington-activities/src/metrics"
	"mergington-activities/src/models"
)

// Roster operations, used as task kinds and metric labels.
const (
	OpSignup     = "signup"
	OpUnregister = "unregister"
)

// RosterChange describes a successful signup or unregister.
type RosterChange struct {
	Operation    string
	ActivityName string
	Schedule     string
	Email        string
	At           time.Time
}

// Notifier is told about every successful roster change.
type Notifier interface {
	RosterChanged(ctx context.Context, change RosterChange) error
}

// Service enforces the roster rules on top of a Store.
type Service struct {
	store    *Store
	notifier Notifier
	log      *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier sends roster changes to n after they are applied.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithLogger sets the logger used for notification failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService builds a Service over store.
func NewService(store *Store, opts ...Option) *Service {
	s := &Service{store: store, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities ดึงกิจกรรมทั้งหมด (สำเนา ณ เวลาที่เรียก)
func (s *Service) ListActivities() models.ActivityMap {
	return s.store.Snapshot()
}

// Signup adds email to the end of the roster of activityName.
// Capacity is informational: a full roster still accepts new students.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	schedule, err := s.signup(activityName, email)
	metrics.RecordRosterOperation(OpSignup, Outcome(err))
	if err != nil {
		return "", err
	}

	s.notify(ctx, RosterChange{Operation: OpSignup, ActivityName: activityName, Schedule: schedule, Email: email, At: time.Now()})
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *Service) signup(activityName, email string) (schedule string, err error) {
	if err := ValidateActivityName(activityName); err != nil {
		return "", err
	}
	if email == "" {
		return "", ErrMissingEmail
	}
	err = s.store.Update(activityName, func(a *models.Activity) error {
		if a.HasParticipant(email) {
			return ErrAlreadySignedUp
		}
		a.Participants = append(a.Participants, email)
		schedule = a.Schedule
		return nil
	})
	return schedule, err
}

// Unregister removes email from the roster of activityName.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	err := s.unregister(activityName, email)
	metrics.RecordRosterOperation(OpUnregister, Outcome(err))
	if err != nil {
		return "", err
	}

	s.notify(ctx, RosterChange{Operation: OpUnregister, ActivityName: activityName, Email: email, At: time.Now()})
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func (s *Service) unregister(activityName, email string) error {
	if err := ValidateActivityName(activityName); err != nil {
		return err
	}
	return s.store.Update(activityName, func(a *models.Activity) error {
		if !a.RemoveParticipant(email) {
			return ErrNotSignedUp
		}
		return nil
	})
}

// notify never fails the request; the roster change has already been applied.
func (s *Service) notify(ctx context.Context, change RosterChange) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.RosterChanged(ctx, change); err != nil {
		s.log.Warn("roster notification failed",
			zap.String("operation", change.Operation),
			zap.String("activity", change.ActivityName),
			zap.String("email", change.Email),
			zap.Error(err),
		)
	}
}
