package entity

import (
	"fmt"

	"remindtrack/internal/domain/constant"
)

// Recurrence is the closed set of schedules a reminder can follow.
// Implementations: Daily, Interval, DayOfWeek.
type Recurrence interface {
	Type() constant.RecurrenceType
	isRecurrence()
}

// Daily recurs every calendar day starting at the anchor.
type Daily struct{}

// Interval recurs every Days days starting at the anchor.
type Interval struct {
	Days int
}

// DayOfWeek recurs every week on Day.
type DayOfWeek struct {
	Day constant.RecurrenceDay
}

func (Daily) Type() constant.RecurrenceType     { return constant.RecurrenceDaily }
func (Interval) Type() constant.RecurrenceType  { return constant.RecurrenceInterval }
func (DayOfWeek) Type() constant.RecurrenceType { return constant.RecurrenceDayOfWeek }

func (Daily) isRecurrence()     {}
func (Interval) isRecurrence()  {}
func (DayOfWeek) isRecurrence() {}

// Recurrence rebuilds the tagged variant from the persisted columns.
// A record whose payload does not match its type is reported as an error.
func (r *Reminder) Recurrence() (Recurrence, error) {
	switch r.RecurrenceType {
	case constant.RecurrenceDaily:
		return Daily{}, nil
	case constant.RecurrenceInterval:
		if r.CustomRecurrenceInterval == nil || *r.CustomRecurrenceInterval <= 0 {
			return nil, fmt.Errorf("reminder %s: interval recurrence without a positive interval", r.ID)
		}
		return Interval{Days: *r.CustomRecurrenceInterval}, nil
	case constant.RecurrenceDayOfWeek:
		if r.CustomRecurrenceDay == nil {
			return nil, fmt.Errorf("reminder %s: day-of-week recurrence without a day", r.ID)
		}
		if _, ok := r.CustomRecurrenceDay.Weekday(); !ok {
			return nil, fmt.Errorf("reminder %s: unknown recurrence day %q", r.ID, *r.CustomRecurrenceDay)
		}
		return DayOfWeek{Day: *r.CustomRecurrenceDay}, nil
	default:
		return nil, fmt.Errorf("reminder %s: unknown recurrence type %q", r.ID, r.RecurrenceType)
	}
}

// SetRecurrence writes the variant into the persisted columns, clearing the
// payload that does not belong to it.
func (r *Reminder) SetRecurrence(rec Recurrence) {
	r.RecurrenceType = rec.Type()
	r.CustomRecurrenceInterval = nil
	r.CustomRecurrenceDay = nil
	switch v := rec.(type) {
	case Interval:
		days := v.Days
		r.CustomRecurrenceInterval = &days
	case DayOfWeek:
		day := v.Day
		r.CustomRecurrenceDay = &day
	}
}
