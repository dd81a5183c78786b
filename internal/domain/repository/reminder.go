package repository

import (
	"context"
	"errors"
	"time"

	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
)

// ErrNotFound is returned (wrapped) when a record does not exist in the
// requested owner scope.
var ErrNotFound = errors.New("record not found")

// ReminderFilter is a conjunction of constraints a record store applies to
// the reminders collection. Zero-valued optional fields are not applied.
type ReminderFilter struct {
	// UserID scopes the query to one owner. Always applied.
	UserID string
	// Type restricts the query to one recurrence partition. Always applied.
	Type constant.RecurrenceType
	// RequireInterval keeps only records whose interval is populated.
	RequireInterval bool
	// Days keeps only records whose recurrence day is one of the listed days.
	// A nil slice applies no constraint; an empty non-nil slice matches nothing.
	Days []constant.RecurrenceDay
	// CreatedAtOrBefore keeps only records anchored at or before the instant.
	CreatedAtOrBefore *time.Time
	// Search is the OR-combined text predicate.
	Search TextPredicate
}

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// Find retrieves every reminder matching the filter.
	Find(ctx context.Context, filter ReminderFilter) ([]*entity.Reminder, error)
	// FindByID retrieves a reminder by its ID within an owner's scope.
	FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error)
	// Create persists a new reminder, assigning its ID and anchor.
	Create(ctx context.Context, reminder *entity.Reminder) error
	// Update replaces the mutable content of an existing reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error
	// Delete deletes a reminder by its ID within an owner's scope.
	Delete(ctx context.Context, userID, id string) error
	// ListOwnerIDs returns every distinct owner that has at least one reminder.
	ListOwnerIDs(ctx context.Context) ([]string, error)
}
