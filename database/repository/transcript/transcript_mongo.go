package transcriptRepo

import (
	"context"
	"time"

	"tropicab/database"
	"tropicab/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoTranscriptRepo returns a TranscriptRepository backed by MongoDB.
func NewMongoTranscriptRepo() TranscriptRepository {
	return &mongoTranscriptRepo{coll: database.Collection("chat_messages")}
}

func (r *mongoTranscriptRepo) Append(ctx context.Context, msg models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

// BySession returns the most recent messages of a session in chronological
// order.
func (r *mongoTranscriptRepo) BySession(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.ChatMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	// Reverse into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
