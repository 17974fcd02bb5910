package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"mergington-activities/src/services/activities"
)

const (
	QueueNotifications = "notifications"
	maxRetry           = 5
)

// Enqueuer is the part of *asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier queues a confirmation task for every roster change.
type AsynqNotifier struct {
	client Enqueuer
	log    *zap.Logger
}

func NewAsynqNotifier(client Enqueuer, log *zap.Logger) *AsynqNotifier {
	return &AsynqNotifier{client: client, log: log}
}

func (n *AsynqNotifier) RosterChanged(ctx context.Context, change activities.RosterChange) error {
	task, err := NewRosterTask(change)
	if err != nil {
		return err
	}

	info, err := n.client.EnqueueContext(ctx, task,
		asynq.TaskID(uuid.NewString()),
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(maxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}

	n.log.Debug("roster task enqueued",
		zap.String("task_id", info.ID),
		zap.String("type", task.Type()),
		zap.String("activity", change.ActivityName),
	)
	return nil
}
