package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sweeply/config"
	draftRepo "sweeply/database/repository/draft"
	"sweeply/models"
	"sweeply/services/notification"

	"github.com/hibiken/asynq"
)

const (
	TypeDraftGC         = "draft:gc"
	TypeBookingReminder = "booking:reminder"
)

// ReminderPayload identifies the booking a reminder task is for.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}
}

// Enqueuer schedules day-before booking reminders.
type Enqueuer struct {
	client *asynq.Client
	loc    *time.Location
}

// NewEnqueuer creates a reminder enqueuer backed by the jobs Redis DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpt()), loc: reminderLocation()}
}

// reminderLocation resolves the configured zone the 09:00 reminder is
// promised in. Bookings carry no zone of their own, so this is a
// deployment-wide setting.
func reminderLocation() *time.Location {
	loc, err := time.LoadLocation(config.AppConfig.TimeZone)
	if err != nil {
		log.Printf("[Worker] unknown TIME_ZONE %q, falling back to server local time", config.AppConfig.TimeZone)
		return time.Local
	}
	return loc
}

// reminderAt is 09:00 the day before the booking, in the given zone.
func reminderAt(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed booking date %q: %w", date, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, loc).AddDate(0, 0, -1), nil
}

// ScheduleReminder queues a reminder for 09:00 the day before the booking.
// Bookings made for today or tomorrow morning get the reminder immediately.
func (e *Enqueuer) ScheduleReminder(bookingID, date string) error {
	at, err := reminderAt(date, e.loc)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(ReminderPayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	opts := []asynq.Option{asynq.Queue("default")}
	if at.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(at))
	}

	if _, err := e.client.Enqueue(asynq.NewTask(TypeBookingReminder, payload), opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", bookingID, err)
	}
	return nil
}

// InitWorker runs the async worker and periodic scheduler in background.
// The GC task cancels abandoned DRAFT records past their TTL; bookings in
// PENDING_PAYMENT are never touched.
func InitWorker(drafts draftRepo.DraftRepository, mailer notification.Mailer) {
	opt := redisOpt()

	srv := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDraftGC, handleDraftGC(drafts))
	mux.HandleFunc(TypeBookingReminder, handleReminder(drafts, mailer))

	scheduler := asynq.NewScheduler(opt, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeDraftGC, nil)); err != nil {
		log.Fatalf("[Worker] failed to register draft GC schedule: %v", err)
	}

	go func() {
		log.Println("[Worker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] failed to start worker: %v", err)
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[Worker] failed to start scheduler: %v", err)
		}
	}()
}

func handleDraftGC(drafts draftRepo.DraftRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		ttl := time.Duration(config.AppConfig.DraftTTLHours) * time.Hour
		cutoff := time.Now().Add(-ttl)

		swept, err := drafts.SweepAbandoned(ctx, cutoff)
		if err != nil {
			return err
		}
		if swept > 0 {
			log.Printf("[Worker] swept %d abandoned drafts", swept)
		}
		return nil
	}
}

func handleReminder(drafts draftRepo.DraftRepository, mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal reminder payload: %w", err)
		}

		booking, err := drafts.GetByID(ctx, payload.BookingID)
		if err != nil {
			return err
		}
		// The booking may have been cancelled since the reminder was queued.
		if booking.Status != models.StatusConfirmed {
			return nil
		}
		if err := mailer.SendBookingReminder(ctx, booking); err != nil {
			log.Printf("[Worker] failed to send reminder for booking %s: %v", booking.ID, err)
		}
		return nil
	}
}
