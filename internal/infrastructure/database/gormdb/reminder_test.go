package gormdb

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"

	"remindtrack/internal/application/query"
	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
)

func newTestRepository(t *testing.T) repository.ReminderRepository {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := NewDB(Options{Driver: DriverSQLite, DSN: dsn})
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = CloseDB(db) })

	return NewReminderRepository(db)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, repo repository.ReminderRepository, owner, description string, anchor time.Time, rec entity.Recurrence) *entity.Reminder {
	t.Helper()

	r := &entity.Reminder{UserID: owner, Description: description, RecurrenceTime: "09:00", CreatedAt: anchor}
	r.SetRecurrence(rec)
	if err := repo.Create(context.Background(), r); err != nil {
		t.Fatalf("seed %q: %v", description, err)
	}
	return r
}

// seedFixture stores alice's four reminders and one of bob's.
// 2024-01-01 is a Monday.
func seedFixture(t *testing.T, repo repository.ReminderRepository) {
	t.Helper()

	seed(t, repo, "alice", "Take Medication", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), entity.Daily{})
	seed(t, repo, "alice", "Water plants", day(2024, 1, 1), entity.Interval{Days: 5})
	seed(t, repo, "alice", "Team sync", day(2024, 1, 1), entity.DayOfWeek{Day: constant.Monday})
	seed(t, repo, "alice", "Weekly review", day(2024, 1, 1), entity.DayOfWeek{Day: constant.Friday})
	seed(t, repo, "bob", "Bob's errand", day(2024, 1, 1), entity.Daily{})
}

func descriptions(reminders []*entity.Reminder) []string {
	out := make([]string, len(reminders))
	for i, r := range reminders {
		out[i] = r.Description
	}
	sort.Strings(out)
	return out
}

func list(t *testing.T, repo repository.ReminderRepository, c query.Criteria) []*entity.Reminder {
	t.Helper()

	got, err := query.NewEngine(repo, query.NewNormalizer(time.UTC)).ListReminders(context.Background(), "alice", c)
	if err != nil {
		t.Fatalf("ListReminders: %v", err)
	}
	return got
}

func between(start, end time.Time, search string) query.Criteria {
	return query.Criteria{Search: search, StartDate: &start, EndDate: &end}
}

func TestListRemindersOwnerOnlyReturnsEverything(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	seedFixture(t, repo)

	got := list(t, repo, query.Criteria{})
	want := []string{"Take Medication", "Team sync", "Water plants", "Weekly review"}
	if !reflect.DeepEqual(descriptions(got), want) {
		t.Fatalf("descriptions = %v, want %v", descriptions(got), want)
	}
	for _, r := range got {
		if r.UserID != "alice" {
			t.Fatalf("leaked reminder of %s", r.UserID)
		}
	}
}

func TestListRemindersWindowCases(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	seedFixture(t, repo)

	cases := []struct {
		name     string
		criteria query.Criteria
		want     []string
	}{
		{"daily on its anchor day", between(day(2024, 1, 10), day(2024, 1, 10), "medic"), []string{"Take Medication"}},
		{"daily before its anchor day", between(day(2024, 1, 9), day(2024, 1, 9), "medic"), []string{}},
		{"interval next occurrence inside", between(day(2024, 1, 12), day(2024, 1, 16), "water"), []string{"Water plants"}},
		{"interval next occurrence outside", between(day(2024, 1, 12), day(2024, 1, 15), "water"), []string{}},
		{"interval window before anchor", between(day(2023, 12, 1), day(2023, 12, 31), ""), []string{}},
		{"single monday", between(day(2024, 1, 8), day(2024, 1, 8), ""), []string{"Team sync"}},
		{"full week", between(day(2024, 1, 15), day(2024, 1, 21), "day_of_the_week"), []string{"Team sync", "Weekly review"}},
		{"search by weekday label", query.Criteria{Search: "MONDAY"}, []string{"Team sync"}},
		{"search by type name", query.Criteria{Search: "interval"}, []string{"Water plants"}},
		{"wildcards are literal", query.Criteria{Search: "%"}, []string{}},
		{"open start keeps anchor bound", query.Criteria{EndDate: ptr(day(2024, 1, 9))}, []string{"Team sync", "Water plants", "Weekly review"}},
	}

	for _, tc := range cases {
		got := descriptions(list(t, repo, tc.criteria))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: descriptions = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestFindNeverCrossesTypes(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	seedFixture(t, repo)

	for _, typ := range constant.RecurrenceTypes {
		got, err := repo.Find(context.Background(), repository.ReminderFilter{UserID: "alice", Type: typ})
		if err != nil {
			t.Fatalf("Find(%s): %v", typ, err)
		}
		if len(got) == 0 {
			t.Fatalf("Find(%s) returned nothing", typ)
		}
		for _, r := range got {
			if r.RecurrenceType != typ {
				t.Fatalf("Find(%s) returned a %s reminder", typ, r.RecurrenceType)
			}
		}
	}
}

func TestFindEmptyDaySetMatchesNothing(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	seedFixture(t, repo)

	got, err := repo.Find(context.Background(), repository.ReminderFilter{
		UserID: "alice",
		Type:   constant.RecurrenceDayOfWeek,
		Days:   []constant.RecurrenceDay{},
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Find returned %d reminders, want 0", len(got))
	}
}

func TestFindOrdersByAnchor(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)

	seed(t, repo, "alice", "second", day(2024, 2, 1), entity.Daily{})
	seed(t, repo, "alice", "first", day(2024, 1, 1), entity.Daily{})

	got, err := repo.Find(context.Background(), repository.ReminderFilter{UserID: "alice", Type: constant.RecurrenceDaily})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 2 || got[0].Description != "first" || got[1].Description != "second" {
		t.Fatalf("Find order = %v", descriptions(got))
	}
}

func TestCreateAssignsIDAndAnchor(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)

	r := &entity.Reminder{UserID: "alice", Description: "stretch", RecurrenceTime: "07:30"}
	r.SetRecurrence(entity.Daily{})
	before := time.Now().UTC().Add(-time.Second)
	if err := repo.Create(context.Background(), r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.ID == "" {
		t.Fatalf("Create did not assign an ID")
	}
	if r.CreatedAt.Before(before) {
		t.Fatalf("CreatedAt = %s, want now", r.CreatedAt)
	}

	got, err := repo.FindByID(context.Background(), "alice", r.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Description != "stretch" || got.RecurrenceType != constant.RecurrenceDaily {
		t.Fatalf("FindByID = %+v", got)
	}
}

func TestOwnerScopedCRUD(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	ctx := context.Background()

	r := seed(t, repo, "alice", "Team sync", day(2024, 1, 1), entity.DayOfWeek{Day: constant.Monday})

	if _, err := repo.FindByID(ctx, "bob", r.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("FindByID as bob: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "bob", r.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Delete as bob: err = %v, want ErrNotFound", err)
	}

	stolen := *r
	stolen.UserID = "bob"
	stolen.Description = "hijacked"
	if err := repo.Update(ctx, &stolen); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Update as bob: err = %v, want ErrNotFound", err)
	}

	r.Description = "Standup"
	r.SetRecurrence(entity.Interval{Days: 2})
	if err := repo.Update(ctx, r); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.FindByID(ctx, "alice", r.ID)
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if got.Description != "Standup" || got.RecurrenceType != constant.RecurrenceInterval {
		t.Fatalf("after update = %+v", got)
	}
	if got.CustomRecurrenceDay != nil {
		t.Fatalf("day payload not cleared: %v", *got.CustomRecurrenceDay)
	}
	if got.CustomRecurrenceInterval == nil || *got.CustomRecurrenceInterval != 2 {
		t.Fatalf("interval payload = %v, want 2", got.CustomRecurrenceInterval)
	}
	if !got.CreatedAt.Equal(day(2024, 1, 1)) {
		t.Fatalf("anchor changed to %s", got.CreatedAt)
	}

	if err := repo.Delete(ctx, "alice", r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, "alice", r.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("FindByID after delete: err = %v, want ErrNotFound", err)
	}
}

func TestListOwnerIDs(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	seedFixture(t, repo)

	got, err := repo.ListOwnerIDs(context.Background())
	if err != nil {
		t.Fatalf("ListOwnerIDs: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"alice", "bob"}) {
		t.Fatalf("ListOwnerIDs = %v, want [alice bob]", got)
	}
}

func TestNewDBRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	if _, err := NewDB(Options{Driver: "mysql"}); err == nil {
		t.Fatalf("NewDB accepted an unknown driver")
	}
	if _, err := NewDB(Options{Driver: DriverPostgres}); err == nil {
		t.Fatalf("NewDB accepted postgres without a DSN")
	}
}

func TestListRemindersSearchFoldsNonASCII(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)

	seed(t, repo, "alice", "École pickup", day(2024, 1, 1), entity.Daily{})
	seed(t, repo, "alice", "Ärzte Termin", day(2024, 1, 1), entity.Interval{Days: 7})
	seed(t, repo, "alice", "Grocery run", day(2024, 1, 1), entity.Daily{})

	cases := map[string][]string{
		"École":   {"École pickup"},
		"ÉCOLE":   {"École pickup"},
		"école":   {"École pickup"},
		"ärzte":   {"Ärzte Termin"},
		"ÄRZTE":   {"Ärzte Termin"},
		"termin":  {"Ärzte Termin"},
		"grocery": {"Grocery run"},
		"100%":    {},
	}
	for term, want := range cases {
		got := descriptions(list(t, repo, query.Criteria{Search: term}))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("search %q: descriptions = %v, want %v", term, got, want)
		}
	}
}
