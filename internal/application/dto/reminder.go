package dto

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"remindtrack/internal/application/query"
	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
	appErrors "remindtrack/internal/pkg/errors"
)

// QueryDateLayout is the accepted format of startDate / endDate.
const QueryDateLayout = "2006-01-02"

var recurrenceTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID                       string     `json:"id"`
	UserID                   string     `json:"userId"`
	Description              string     `json:"description"`
	RecurrenceTime           string     `json:"recurrenceTime"`
	RecurrenceType           string     `json:"recurrenceType"`
	CustomRecurrenceInterval *int       `json:"customRecurrenceInterval,omitempty"`
	CustomRecurrenceDay      *string    `json:"customRecurrenceDay,omitempty"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                *time.Time `json:"updatedAt,omitempty"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	resp := ReminderResponse{
		ID:                       r.ID,
		UserID:                   r.UserID,
		Description:              r.Description,
		RecurrenceTime:           r.RecurrenceTime,
		RecurrenceType:           r.RecurrenceType.String(),
		CustomRecurrenceInterval: r.CustomRecurrenceInterval,
		CreatedAt:                r.CreatedAt.UTC(),
	}
	if r.CustomRecurrenceDay != nil {
		day := r.CustomRecurrenceDay.String()
		resp.CustomRecurrenceDay = &day
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt.UTC()
		resp.UpdatedAt = &updated
	}
	return resp
}

// ToReminderResponseList converts a slice of entity.Reminder to a slice of ReminderResponse DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}

// ReminderRequest is the DTO for creating or replacing a reminder.
type ReminderRequest struct {
	Description              string  `json:"description"`
	RecurrenceTime           string  `json:"recurrenceTime"`
	RecurrenceType           string  `json:"recurrenceType"`
	CustomRecurrenceInterval *int    `json:"customRecurrenceInterval,omitempty"`
	CustomRecurrenceDay      *string `json:"customRecurrenceDay,omitempty"`
}

// Recurrence validates the request and returns its tagged recurrence. The
// payload field that does not belong to the requested type is ignored.
func (r ReminderRequest) Recurrence() (entity.Recurrence, error) {
	if strings.TrimSpace(r.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", appErrors.ErrInvalidReminder)
	}
	if !recurrenceTimePattern.MatchString(r.RecurrenceTime) {
		return nil, fmt.Errorf("%w: recurrenceTime must be HH:MM (24-hour)", appErrors.ErrInvalidReminder)
	}

	switch constant.RecurrenceType(r.RecurrenceType) {
	case constant.RecurrenceDaily:
		return entity.Daily{}, nil
	case constant.RecurrenceInterval:
		if r.CustomRecurrenceInterval == nil {
			return nil, fmt.Errorf("%w: customRecurrenceInterval is required for %s", appErrors.ErrInvalidReminder, constant.RecurrenceInterval)
		}
		days := *r.CustomRecurrenceInterval
		if days <= 0 || days > query.MaxIntervalDays {
			return nil, fmt.Errorf("%w: customRecurrenceInterval must be between 1 and %d", appErrors.ErrInvalidReminder, query.MaxIntervalDays)
		}
		return entity.Interval{Days: days}, nil
	case constant.RecurrenceDayOfWeek:
		if r.CustomRecurrenceDay == nil {
			return nil, fmt.Errorf("%w: customRecurrenceDay is required for %s", appErrors.ErrInvalidReminder, constant.RecurrenceDayOfWeek)
		}
		day, ok := constant.ParseRecurrenceDay(*r.CustomRecurrenceDay)
		if !ok {
			return nil, fmt.Errorf("%w: unknown customRecurrenceDay %q", appErrors.ErrInvalidReminder, *r.CustomRecurrenceDay)
		}
		return entity.DayOfWeek{Day: day}, nil
	default:
		return nil, fmt.Errorf("%w: recurrenceType must be one of %v", appErrors.ErrInvalidReminder, constant.RecurrenceTypes)
	}
}

// ToEntity validates the request and builds the reminder for ownerID.
func (r ReminderRequest) ToEntity(ownerID string) (*entity.Reminder, error) {
	rec, err := r.Recurrence()
	if err != nil {
		return nil, err
	}
	reminder := &entity.Reminder{
		UserID:         ownerID,
		Description:    strings.TrimSpace(r.Description),
		RecurrenceTime: r.RecurrenceTime,
	}
	reminder.SetRecurrence(rec)
	return reminder, nil
}

// ListRemindersRequest carries the raw list query parameters.
type ListRemindersRequest struct {
	Search    string `query:"search"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// ParseQueryDate parses a YYYY-MM-DD query date. An empty string yields nil.
func ParseQueryDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(QueryDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not YYYY-MM-DD", appErrors.ErrInvalidDate, s)
	}
	return &t, nil
}

// Criteria parses the raw parameters into query criteria.
func (r ListRemindersRequest) Criteria() (query.Criteria, error) {
	start, err := ParseQueryDate(r.StartDate)
	if err != nil {
		return query.Criteria{}, err
	}
	end, err := ParseQueryDate(r.EndDate)
	if err != nil {
		return query.Criteria{}, err
	}
	return query.Criteria{Search: strings.TrimSpace(r.Search), StartDate: start, EndDate: end}, nil
}
