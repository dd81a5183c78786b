package query

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
	appErrors "remindtrack/internal/pkg/errors"
)

// Criteria are the caller's optional search term and calendar-date bounds.
type Criteria struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Engine answers "which of this owner's reminders occur in the window" by
// running one matcher per recurrence type concurrently and concatenating
// their results.
type Engine struct {
	normalizer Normalizer
	matchers   []Matcher
}

// NewEngine wires the daily, interval and day-of-week matchers over repo,
// in that order.
func NewEngine(repo repository.ReminderRepository, normalizer Normalizer) *Engine {
	return NewEngineWithMatchers(normalizer,
		NewDailyMatcher(repo),
		NewIntervalMatcher(repo),
		NewDayOfWeekMatcher(repo),
	)
}

// NewEngineWithMatchers builds an Engine from an explicit matcher list.
// Results are grouped in the order the matchers are given.
func NewEngineWithMatchers(normalizer Normalizer, matchers ...Matcher) *Engine {
	return &Engine{normalizer: normalizer, matchers: matchers}
}

// Normalizer returns the engine's time normalizer.
func (e *Engine) Normalizer() Normalizer {
	return e.normalizer
}

// ListReminders returns every reminder of ownerID that matches the search
// term and has an occurrence inside the window. It fails with
// ErrMissingOwnerScope for an empty owner, ErrInvalidRange when the start
// date is after the end date, and ErrStoreFailure when any store query
// fails. No partial results are returned on failure.
func (e *Engine) ListReminders(ctx context.Context, ownerID string, c Criteria) ([]*entity.Reminder, error) {
	if ownerID == "" {
		return nil, appErrors.ErrMissingOwnerScope
	}
	if c.StartDate != nil && c.EndDate != nil && calendarDate(*c.StartDate).After(calendarDate(*c.EndDate)) {
		return nil, fmt.Errorf("%w: %s is after %s", appErrors.ErrInvalidRange,
			c.StartDate.Format(time.DateOnly), c.EndDate.Format(time.DateOnly))
	}

	scope := Scope{
		OwnerID: ownerID,
		Search:  BuildSearchPredicate(c.Search),
		Window:  e.normalizer.Window(c.StartDate, c.EndDate),
	}

	results := make([][]*entity.Reminder, len(e.matchers))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range e.matchers {
		i, m := i, m
		g.Go(func() error {
			found, err := m.Match(gctx, scope)
			if err != nil {
				return fmt.Errorf("%w: %s reminders: %w", appErrors.ErrStoreFailure, m.Type(), err)
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	reminders := make([]*entity.Reminder, 0, total)
	for _, r := range results {
		reminders = append(reminders, r...)
	}
	return reminders, nil
}
