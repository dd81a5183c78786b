package query

import (
	"context"

	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
)

// Scope is the immutable per-call input every matcher receives.
type Scope struct {
	OwnerID string
	Search  repository.TextPredicate
	Window  Window
}

// Matcher finds the reminders of one recurrence type that have an
// occurrence inside the scope's window.
type Matcher interface {
	Type() constant.RecurrenceType
	Match(ctx context.Context, scope Scope) ([]*entity.Reminder, error)
}

// baseFilter holds the constraints shared by all matchers: owner, type,
// search, and an anchor no later than the window's end.
func baseFilter(scope Scope, t constant.RecurrenceType) repository.ReminderFilter {
	filter := repository.ReminderFilter{
		UserID: scope.OwnerID,
		Type:   t,
		Search: scope.Search,
	}
	if scope.Window.End != nil {
		end := *scope.Window.End
		filter.CreatedAtOrBefore = &end
	}
	return filter
}
