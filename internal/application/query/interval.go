package query

import (
	"context"
	"time"

	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
)

const msPerDay int64 = 24 * 60 * 60 * 1000

// MaxIntervalDays bounds the interval so that day arithmetic in
// milliseconds cannot overflow.
const MaxIntervalDays = 36500

// IntervalMatcher matches reminders that recur every N days from their
// anchor. The store narrows candidates by owner, type, search and anchor;
// the exact occurrence test runs in process.
type IntervalMatcher struct {
	repo repository.ReminderRepository
}

// NewIntervalMatcher creates an IntervalMatcher backed by repo.
func NewIntervalMatcher(repo repository.ReminderRepository) *IntervalMatcher {
	return &IntervalMatcher{repo: repo}
}

func (m *IntervalMatcher) Type() constant.RecurrenceType {
	return constant.RecurrenceInterval
}

func (m *IntervalMatcher) Match(ctx context.Context, scope Scope) ([]*entity.Reminder, error) {
	filter := baseFilter(scope, constant.RecurrenceInterval)
	filter.RequireInterval = true

	candidates, err := m.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !scope.Window.Bounded() {
		return candidates, nil
	}

	start, end := *scope.Window.Start, *scope.Window.End
	matched := make([]*entity.Reminder, 0, len(candidates))
	for _, r := range candidates {
		rec, err := r.Recurrence()
		if err != nil {
			continue
		}
		interval, ok := rec.(entity.Interval)
		if !ok {
			continue
		}
		if IntervalOccursWithin(r.CreatedAt, interval.Days, start, end) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// IntervalOccursWithin reports whether a schedule anchored at anchor and
// repeating every days days has an occurrence in [start, end]. Only the
// first occurrence at or after start is tested: occurrences are evenly
// spaced, so no later one can be closer to start. When the anchor is after
// start, the anchor itself is that occurrence.
func IntervalOccursWithin(anchor time.Time, days int, start, end time.Time) bool {
	if days <= 0 || days > MaxIntervalDays {
		return false
	}
	anchorMs, startMs, endMs := anchor.UnixMilli(), start.UnixMilli(), end.UnixMilli()
	intervalMs := int64(days) * msPerDay

	delta := startMs - anchorMs
	if delta < 0 {
		return anchorMs >= startMs && anchorMs <= endMs
	}

	passed := delta / intervalMs
	if delta%intervalMs != 0 {
		passed++
	}
	next := anchorMs + passed*intervalMs
	return next >= startMs && next <= endMs
}
