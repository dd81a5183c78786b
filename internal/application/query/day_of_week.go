package query

import (
	"context"

	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
)

// DayOfWeekMatcher matches weekly reminders whose weekday occurs anywhere in
// the window. Membership is decided at weekday granularity only: a reminder
// whose anchor falls after the last date with its weekday, but still before
// the window ends, is matched.
type DayOfWeekMatcher struct {
	repo repository.ReminderRepository
}

// NewDayOfWeekMatcher creates a DayOfWeekMatcher backed by repo.
func NewDayOfWeekMatcher(repo repository.ReminderRepository) *DayOfWeekMatcher {
	return &DayOfWeekMatcher{repo: repo}
}

func (m *DayOfWeekMatcher) Type() constant.RecurrenceType {
	return constant.RecurrenceDayOfWeek
}

func (m *DayOfWeekMatcher) Match(ctx context.Context, scope Scope) ([]*entity.Reminder, error) {
	filter := baseFilter(scope, constant.RecurrenceDayOfWeek)
	filter.Days = scope.Window.Weekdays()
	return m.repo.Find(ctx, filter)
}
