package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"mergington-activities/src/metrics"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/services/notifications"
)

// HandleRosterTask ส่งอีเมลยืนยันการสมัคร/ยกเลิกกิจกรรม
func HandleRosterTask(sender notifications.MailSender, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		signedUp := t.Type() == TypeRosterSignup
		operation := activities.OpUnregister
		if signedUp {
			operation = activities.OpSignup
		}

		var p RosterPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error("❌ payload decode error", zap.String("type", t.Type()), zap.Error(err))
			metrics.NotificationsSent.WithLabelValues(operation, "bad_payload").Inc()
			return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}
		p.Normalize()

		if p.Email == "" || p.ActivityName == "" {
			log.Warn("⚠️ roster task without email or activity, skipping", zap.String("type", t.Type()))
			metrics.NotificationsSent.WithLabelValues(operation, "skipped").Inc()
			return nil
		}

		html, err := notifications.RenderRosterEmailHTML(notifications.RosterEmailData{
			Email:        p.Email,
			ActivityName: p.ActivityName,
			Schedule:     p.Schedule,
			SignedUp:     signedUp,
		})
		if err != nil {
			return fmt.Errorf("render roster email: %w", err)
		}

		if err := sender.Send(p.Email, notifications.RosterSubject(p.ActivityName, signedUp), html); err != nil {
			log.Error("❌ send roster email failed", zap.String("to", p.Email), zap.Error(err))
			metrics.NotificationsSent.WithLabelValues(operation, "failed").Inc()
			return err
		}

		log.Info("✅ roster email sent", zap.String("to", p.Email), zap.String("activity", p.ActivityName))
		metrics.NotificationsSent.WithLabelValues(operation, "sent").Inc()
		return nil
	}
}

// NewServeMux registers the roster task handlers.
func NewServeMux(sender notifications.MailSender, log *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	h := HandleRosterTask(sender, log)
	mux.HandleFunc(TypeRosterSignup, h)
	mux.HandleFunc(TypeRosterUnregister, h)
	return mux
}

// NewServer builds the asynq worker server listening on the notifications queue.
func NewServer(redisOpt asynq.RedisConnOpt, concurrency int, log *zap.Logger) *asynq.Server {
	return asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{QueueNotifications: 1},
		Logger:      log.Sugar(),
	})
}
