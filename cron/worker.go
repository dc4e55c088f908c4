package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tropicab/config"
	"tropicab/models"
	"tropicab/services/tasks"
	"tropicab/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePickupReminder, handlePickupReminder)

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePickupReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
		return err
	}

	log.Printf("[ReminderHandler] ⏰ Pickup reminder for booking %s (%s)", p.BookingID, p.Email)

	body := fmt.Sprintf(
		"Hi %s,\n\nYour Tropicab transfer is tomorrow!\n\n"+
			"Pickup: %s\nFrom: %s\nTo: %s\nVehicle: %s\n\n"+
			"Your driver will be waiting in the arrivals hall with a sign with your name. "+
			"If your flight changes, just reply to this email.\n\nSee you soon,\nTropicab",
		p.Name, p.PickupAt, p.Airport, p.Hotel, p.Vehicle,
	)
	if err := utils.SendEmail(p.Email, "Your Tropicab pickup is tomorrow", body); err != nil {
		log.Printf("[ReminderHandler] ❌ Failed to send reminder email: %v", err)
		return err
	}
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
