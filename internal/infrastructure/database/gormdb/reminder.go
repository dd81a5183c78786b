package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const searchClause = `(LOWER(description) LIKE ? ESCAPE '\' OR LOWER(recurrence_type) LIKE ? ESCAPE '\' OR LOWER(custom_recurrence_day) LIKE ? ESCAPE '\')`

type reminderRepository struct {
	db *gorm.DB
	// sqlSearch is set when the dialect's LOWER() folds non-ASCII letters.
	// SQLite's only folds ASCII, so there the text predicate runs over the
	// fetched rows instead.
	sqlSearch bool
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db, sqlSearch: db.Dialector.Name() == DriverPostgres}
}

// Find retrieves every reminder matching the filter, oldest anchor first.
func (r *reminderRepository) Find(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, error) {
	reminders := []*entity.Reminder{}
	if filter.Days != nil && len(filter.Days) == 0 {
		return reminders, nil
	}

	q := r.db.WithContext(ctx).
		Where("user_id = ? AND recurrence_type = ?", filter.UserID, filter.Type.String())
	if filter.RequireInterval {
		q = q.Where("custom_recurrence_interval IS NOT NULL")
	}
	if filter.Days != nil {
		days := make([]string, len(filter.Days))
		for i, d := range filter.Days {
			days[i] = d.String()
		}
		q = q.Where("custom_recurrence_day IN ?", days)
	}
	if filter.CreatedAtOrBefore != nil {
		q = q.Where("created_at <= ?", filter.CreatedAtOrBefore.UTC())
	}
	if !filter.Search.MatchesAll() && r.sqlSearch {
		pattern := filter.Search.LikePattern()
		q = q.Where(searchClause, pattern, pattern, pattern)
	}

	if err := q.Order("created_at asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find %s reminders for user %s: %w", filter.Type, filter.UserID, err)
	}
	if filter.Search.MatchesAll() || r.sqlSearch {
		return reminders, nil
	}

	matched := reminders[:0]
	for _, reminder := range reminders {
		if filter.Search.Matches(reminder) {
			matched = append(matched, reminder)
		}
	}
	return matched, nil
}

// FindByID retrieves a reminder by its ID within an owner's scope.
func (r *reminderRepository) FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder with ID %s not found: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find reminder by id %s: %w", id, err)
	}
	return &reminder, nil
}

// Create persists a new reminder. The ID and anchor are assigned here when
// the caller left them empty.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	if !reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = reminder.CreatedAt.UTC()
	}
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return nil
}

// Update replaces the mutable content of an existing reminder. The owner and
// the anchor are never changed.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("id = ? AND user_id = ?", reminder.ID, reminder.UserID).
		Updates(map[string]interface{}{
			"description":                reminder.Description,
			"recurrence_time":            reminder.RecurrenceTime,
			"recurrence_type":            reminder.RecurrenceType.String(),
			"custom_recurrence_interval": reminder.CustomRecurrenceInterval,
			"custom_recurrence_day":      reminder.CustomRecurrenceDay,
			"updated_at":                 now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update reminder %s: %w", reminder.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder with ID %s not found: %w", reminder.ID, repository.ErrNotFound)
	}
	reminder.UpdatedAt = now
	return nil
}

// Delete deletes a reminder by its ID within an owner's scope.
func (r *reminderRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Reminder{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder with ID %s not found: %w", id, repository.ErrNotFound)
	}
	return nil
}

// ListOwnerIDs returns every distinct owner that has at least one reminder.
func (r *reminderRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&entity.Reminder{}).Distinct("user_id").Order("user_id").Pluck("user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminder owners: %w", err)
	}
	return ids, nil
}
