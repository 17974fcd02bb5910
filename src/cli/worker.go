package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"mergington-activities/src/database"
	"mergington-activities/src/jobs"
	"mergington-activities/src/services/notifications"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process roster confirmation mails from the queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.NotificationsEnabled() {
			return errors.New("REDIS_URI is required to run the worker")
		}

		sender := notifications.SenderFromConfig(cfg.SMTP, log)
		srv := jobs.NewServer(database.RedisConnOpt(cfg.RedisURI), cfg.WorkerConcurrency, log)

		log.Info("🎯 worker started")
		// Run blocks until SIGINT/SIGTERM.
		return srv.Run(jobs.NewServeMux(sender, log))
	},
}
