package query

import (
	"context"
	"sync"
	"time"

	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
)

// fakeRepository serves canned reminders per recurrence type and records
// every filter it receives.
type fakeRepository struct {
	mu      sync.Mutex
	byType  map[constant.RecurrenceType][]*entity.Reminder
	errs    map[constant.RecurrenceType]error
	filters []repository.ReminderFilter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byType: make(map[constant.RecurrenceType][]*entity.Reminder),
		errs:   make(map[constant.RecurrenceType]error),
	}
}

func (f *fakeRepository) add(reminders ...*entity.Reminder) {
	for _, r := range reminders {
		f.byType[r.RecurrenceType] = append(f.byType[r.RecurrenceType], r)
	}
}

func (f *fakeRepository) filterFor(t constant.RecurrenceType) (repository.ReminderFilter, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, filter := range f.filters {
		if filter.Type == t {
			return filter, true
		}
	}
	return repository.ReminderFilter{}, false
}

func (f *fakeRepository) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.filters)
}

func (f *fakeRepository) Find(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, error) {
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	err := f.errs[filter.Type]
	found := append([]*entity.Reminder(nil), f.byType[filter.Type]...)
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	f.add(reminder)
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	return repository.ErrNotFound
}

func (f *fakeRepository) Delete(ctx context.Context, userID, id string) error {
	return repository.ErrNotFound
}

func (f *fakeRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intervalReminder(id string, anchor time.Time, days int) *entity.Reminder {
	r := &entity.Reminder{ID: id, UserID: "owner", Description: id, RecurrenceTime: "09:00", CreatedAt: anchor}
	r.SetRecurrence(entity.Interval{Days: days})
	return r
}

func dailyReminder(id string, anchor time.Time) *entity.Reminder {
	r := &entity.Reminder{ID: id, UserID: "owner", Description: id, RecurrenceTime: "09:00", CreatedAt: anchor}
	r.SetRecurrence(entity.Daily{})
	return r
}

func weeklyReminder(id string, anchor time.Time, day constant.RecurrenceDay) *entity.Reminder {
	r := &entity.Reminder{ID: id, UserID: "owner", Description: id, RecurrenceTime: "09:00", CreatedAt: anchor}
	r.SetRecurrence(entity.DayOfWeek{Day: day})
	return r
}
