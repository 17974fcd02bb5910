package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"mergington-activities/src/metrics"
	"mergington-activities/src/models"
)

// activityDocument is one activity as stored in the Mongo collection.
type activityDocument struct {
	Name            string   `bson:"name"`
	Description     string   `bson:"description"`
	Schedule        string   `bson:"schedule"`
	MaxParticipants int      `bson:"max_participants"`
	Participants    []string `bson:"participants"`
}

// ConnectMongoDB เชื่อมต่อ MongoDB และ ping ให้แน่ใจว่าใช้งานได้
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return client, nil
}

// ReadActivitiesCollection decodes every document of coll into a mapping keyed by name.
// Documents without a name are skipped; a repeated name keeps the first document.
func ReadActivitiesCollection(ctx context.Context, coll *mongo.Collection) (models.ActivityMap, error) {
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer cur.Close(ctx)

	var docs []activityDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	activities := make(models.ActivityMap, len(docs))
	for _, d := range docs {
		if d.Name == "" {
			continue
		}
		if _, dup := activities[d.Name]; dup {
			continue
		}
		participants := d.Participants
		if participants == nil {
			participants = []string{}
		}
		activities[d.Name] = &models.Activity{
			Description:     d.Description,
			Schedule:        d.Schedule,
			MaxParticipants: d.MaxParticipants,
			Participants:    participants,
		}
	}
	return activities, nil
}

// LoadActivitiesMongo reads the activities collection once at startup.
// Any failure falls back to DefaultActivities.
func LoadActivitiesMongo(ctx context.Context, uri, dbName, collName string, log *zap.Logger) models.ActivityMap {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := ConnectMongoDB(ctx, uri)
	if err != nil {
		log.Warn("⚠️ MongoDB unavailable, using built-in activities", zap.Error(err))
		metrics.RecordFallback("mongo", "unavailable")
		return DefaultActivities()
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	activities, err := ReadActivitiesCollection(ctx, client.Database(dbName).Collection(collName))
	if err != nil {
		log.Warn("⚠️ activities collection unusable, using built-in activities", zap.Error(err))
		metrics.RecordFallback("mongo", "malformed")
		return DefaultActivities()
	}

	log.Info("✅ activities loaded from MongoDB",
		zap.String("db", dbName),
		zap.String("collection", collName),
		zap.Int("count", len(activities)),
	)
	return activities
}
