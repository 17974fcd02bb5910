package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"mergington-activities/src/metrics"
	"mergington-activities/src/models"
)

// ErrSourceMissing means the activities file does not exist.
var ErrSourceMissing = errors.New("activities source not found")

// ReadActivitiesFile parses and validates the activities JSON document at path.
func ReadActivitiesFile(path string) (models.ActivityMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSourceMissing
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validateActivitiesDocument(raw); err != nil {
		return nil, err
	}

	var activities models.ActivityMap
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return activities, nil
}

// LoadActivitiesFile never fails: a missing, unreadable or malformed file
// falls back to DefaultActivities.
func LoadActivitiesFile(path string, log *zap.Logger) models.ActivityMap {
	activities, err := ReadActivitiesFile(path)
	switch {
	case err == nil:
		log.Info("✅ activities loaded from file", zap.String("path", path), zap.Int("count", len(activities)))
		return activities
	case errors.Is(err, ErrSourceMissing):
		log.Info("activities file not found, using built-in activities", zap.String("path", path))
		metrics.RecordFallback("file", "missing")
	default:
		log.Warn("⚠️ activities file unusable, using built-in activities", zap.String("path", path), zap.Error(err))
		metrics.RecordFallback("file", "malformed")
	}
	return DefaultActivities()
}
