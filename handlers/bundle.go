package handlers

import (
	transcriptRepo "tropicab/database/repository/transcript"
	"tropicab/services/agent"
	"tropicab/services/booking"
	"tropicab/services/catalog"
	"tropicab/services/storage"

	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers and their dependencies.
type HandlerBundle struct {
	Engine       *agent.Engine
	ContextStore agent.ContextStore
	Transcripts  transcriptRepo.TranscriptRepository
	Bookings     booking.Service
	Catalog      catalog.Service
	Storage      storage.StorageService
	Logger       *zap.Logger
}
