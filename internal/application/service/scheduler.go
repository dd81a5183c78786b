package service

import "context"

// Notifier delivers a text message to an owner.
type Notifier interface {
	PushText(ctx context.Context, to, text string) error
}

// SchedulerService defines the interface for the daily digest job.
type SchedulerService interface {
	// ScheduleDigest registers the digest job with the given cron spec.
	ScheduleDigest(spec string) error
	// RunDigest pushes today's reminders to every owner that has any.
	// It returns the number of owners notified.
	RunDigest(ctx context.Context) (int, error)
	// Stop stops the underlying scheduler.
	Stop()
}
