package constant

import (
	"strings"
	"time"
)

// RecurrenceType is the persisted classification of a reminder's schedule.
type RecurrenceType string

const (
	// RecurrenceDaily recurs every calendar day from its anchor.
	RecurrenceDaily RecurrenceType = "DAILY"
	// RecurrenceInterval recurs every N days from its anchor.
	RecurrenceInterval RecurrenceType = "INTERVAL"
	// RecurrenceDayOfWeek recurs weekly on a fixed weekday.
	RecurrenceDayOfWeek RecurrenceType = "DAY_OF_THE_WEEK"
)

// RecurrenceTypes lists every type in matcher-invocation order.
var RecurrenceTypes = []RecurrenceType{RecurrenceDaily, RecurrenceInterval, RecurrenceDayOfWeek}

func (t RecurrenceType) String() string {
	return string(t)
}

// Valid reports whether t is one of the known recurrence types.
func (t RecurrenceType) Valid() bool {
	switch t {
	case RecurrenceDaily, RecurrenceInterval, RecurrenceDayOfWeek:
		return true
	}
	return false
}

// RecurrenceDay is the persisted weekday label of a day-of-week reminder.
type RecurrenceDay string

const (
	Sunday    RecurrenceDay = "Sunday"
	Monday    RecurrenceDay = "Monday"
	Tuesday   RecurrenceDay = "Tuesday"
	Wednesday RecurrenceDay = "Wednesday"
	Thursday  RecurrenceDay = "Thursday"
	Friday    RecurrenceDay = "Friday"
	Saturday  RecurrenceDay = "Saturday"
)

// AllRecurrenceDays is indexed by time.Weekday.
var AllRecurrenceDays = []RecurrenceDay{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (d RecurrenceDay) String() string {
	return string(d)
}

// Weekday converts the label into a time.Weekday.
func (d RecurrenceDay) Weekday() (time.Weekday, bool) {
	for i, day := range AllRecurrenceDays {
		if day == d {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// DayFromWeekday returns the label for a time.Weekday.
func DayFromWeekday(w time.Weekday) RecurrenceDay {
	return AllRecurrenceDays[int(w)%7]
}

// ParseRecurrenceDay accepts a weekday label in any letter case.
func ParseRecurrenceDay(s string) (RecurrenceDay, bool) {
	for _, day := range AllRecurrenceDays {
		if strings.EqualFold(string(day), strings.TrimSpace(s)) {
			return day, true
		}
	}
	return "", false
}
