package transcriptRepo

import (
	"context"

	"tropicab/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TranscriptRepository persists widget chat transcripts. The conversation
// context itself is ephemeral (Redis, TTL); transcripts are the durable record.
type TranscriptRepository interface {
	Append(ctx context.Context, msg models.ChatMessage) error
	BySession(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error)
}

type mongoTranscriptRepo struct {
	coll *mongo.Collection
}
