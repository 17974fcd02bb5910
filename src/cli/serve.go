package cli

import (
	"context"
	"fmt"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "mergington-activities/docs"
	"mergington-activities/src/controllers"
	"mergington-activities/src/database"
	"mergington-activities/src/jobs"
	"mergington-activities/src/routes"
	"mergington-activities/src/services/activities"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx)
	},
}

func runServer(ctx context.Context) error {
	store := activities.NewStore(database.LoadActivities(ctx, cfg, log))

	opts := []activities.Option{activities.WithLogger(log)}
	if cfg.NotificationsEnabled() {
		client, err := database.NewAsynqClient(ctx, cfg.RedisURI)
		if err != nil {
			log.Warn("⚠️ Redis not available. Roster notifications disabled.", zap.Error(err))
		} else {
			defer client.Close()
			opts = append(opts, activities.WithNotifier(jobs.NewAsynqNotifier(client, log)))
			log.Info("✅ Asynq client initialized successfully")
		}
	}
	svc := activities.NewService(store, opts...)

	app := routes.NewApp(routes.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		Log:            log,
	}, controllers.NewActivityController(svc, log))

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("port", cfg.AppURI), zap.Int("activities", store.Len()))
		errCh <- app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI)))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
