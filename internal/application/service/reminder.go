package service

import (
	"context"

	"remindtrack/internal/application/dto"
)

// ReminderService defines the interface for reminder-related business logic.
// Every operation is scoped to the owner passed in.
type ReminderService interface {
	// ListReminders returns the owner's reminders matching the search term
	// that occur within the optional date window.
	ListReminders(ctx context.Context, ownerID string, req dto.ListRemindersRequest) ([]dto.ReminderResponse, error)
	// CreateReminder validates and stores a new reminder. Its creation time
	// becomes the interval anchor.
	CreateReminder(ctx context.Context, ownerID string, req dto.ReminderRequest) (dto.ReminderResponse, error)
	// GetReminder retrieves a reminder by its ID.
	GetReminder(ctx context.Context, ownerID, reminderID string) (dto.ReminderResponse, error)
	// UpdateReminder replaces the content and recurrence of a reminder.
	UpdateReminder(ctx context.Context, ownerID, reminderID string, req dto.ReminderRequest) (dto.ReminderResponse, error)
	// DeleteReminder deletes a reminder by its ID.
	DeleteReminder(ctx context.Context, ownerID, reminderID string) error
}
