package tasks

import (
	"encoding/json"
	"time"

	"tropicab/models"

	"github.com/hibiken/asynq"
)

const TypePickupReminder = "reminder:pickup"

func NewPickupReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePickupReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
