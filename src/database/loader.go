package database

import (
	"context"

	"go.uber.org/zap"

	"mergington-activities/src/config"
	"mergington-activities/src/metrics"
	"mergington-activities/src/models"
)

// LoadActivities picks the configured source. The result is always usable.
func LoadActivities(ctx context.Context, cfg *config.Config, log *zap.Logger) models.ActivityMap {
	var activities models.ActivityMap
	switch cfg.ActivitiesSource {
	case config.SourceMongo:
		activities = LoadActivitiesMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection, log)
	default:
		activities = LoadActivitiesFile(cfg.ActivitiesFile, log)
	}
	metrics.ActivitiesLoaded.Set(float64(len(activities)))
	return activities
}
