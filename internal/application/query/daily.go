package query

import (
	"context"

	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
)

// DailyMatcher matches daily reminders. A daily reminder occurs every day
// from its anchor on, so it is in any window that ends at or after the
// anchor. The window's start never excludes it.
type DailyMatcher struct {
	repo repository.ReminderRepository
}

// NewDailyMatcher creates a DailyMatcher backed by repo.
func NewDailyMatcher(repo repository.ReminderRepository) *DailyMatcher {
	return &DailyMatcher{repo: repo}
}

func (m *DailyMatcher) Type() constant.RecurrenceType {
	return constant.RecurrenceDaily
}

func (m *DailyMatcher) Match(ctx context.Context, scope Scope) ([]*entity.Reminder, error) {
	return m.repo.Find(ctx, baseFilter(scope, constant.RecurrenceDaily))
}
