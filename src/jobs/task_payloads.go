package jobs

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"mergington-activities/src/services/activities"
)

const (
	TypeRosterSignup     = "roster:signup"
	TypeRosterUnregister = "roster:unregister"
)

type RosterPayload struct {
	ActivityName string    `json:"activityName"`
	Schedule     string    `json:"schedule,omitempty"`
	Email        string    `json:"email"`
	ChangedAt    time.Time `json:"changedAt"`
}

func (p *RosterPayload) Normalize() {
	p.ActivityName = strings.TrimSpace(p.ActivityName)
	p.Email = strings.TrimSpace(p.Email)
}

// TaskType maps a roster operation to its asynq task type.
func TaskType(operation string) (string, bool) {
	switch operation {
	case activities.OpSignup:
		return TypeRosterSignup, true
	case activities.OpUnregister:
		return TypeRosterUnregister, true
	}
	return "", false
}

func NewRosterTask(change activities.RosterChange) (*asynq.Task, error) {
	typ, ok := TaskType(change.Operation)
	if !ok {
		return nil, &UnknownOperationError{Operation: change.Operation}
	}

	payload := RosterPayload{
		ActivityName: change.ActivityName,
		Schedule:     change.Schedule,
		Email:        change.Email,
		ChangedAt:    change.At.UTC(),
	}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(typ, b), nil
}

type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return "unknown roster operation: " + e.Operation
}
