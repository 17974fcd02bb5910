package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestReadActivitiesCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes documents keyed by name", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bson.D{
					{Key: "name", Value: "Chess Club"},
					{Key: "description", Value: "Learn strategies"},
					{Key: "schedule", Value: "Fridays"},
					{Key: "max_participants", Value: 12},
					{Key: "participants", Value: bson.A{"michael@mergington.edu"}},
				},
				bson.D{
					{Key: "name", Value: "Art Club"},
					{Key: "description", Value: "Painting"},
					{Key: "schedule", Value: "Thursdays"},
					{Key: "max_participants", Value: 15},
				},
				bson.D{
					{Key: "description", Value: "no name, skipped"},
				},
			),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		activities, err := ReadActivitiesCollection(context.Background(), mt.Coll)
		require.NoError(mt, err)
		require.Len(mt, activities, 2)
		assert.Equal(mt, 12, activities["Chess Club"].MaxParticipants)
		assert.Equal(mt, []string{"michael@mergington.edu"}, activities["Chess Club"].Participants)
		assert.NotNil(mt, activities["Art Club"].Participants)
		assert.Empty(mt, activities["Art Club"].Participants)
	})

	mt.Run("find error is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
		}))

		_, err := ReadActivitiesCollection(context.Background(), mt.Coll)
		assert.Error(mt, err)
	})
}
