package service

import (
	"fmt"
	"sort"
	"strings"

	"remindtrack/internal/application/dto"
	"remindtrack/internal/domain/constant"
)

// FormatReminderList renders reminders as a chat message, ordered by time of
// day. An empty list renders as a fixed notice.
func FormatReminderList(title string, reminders []dto.ReminderResponse) string {
	if len(reminders) == 0 {
		return "該当するリマインドはありません"
	}

	sorted := make([]dto.ReminderResponse, len(reminders))
	copy(sorted, reminders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecurrenceTime < sorted[j].RecurrenceTime
	})

	var builder strings.Builder
	if title != "" {
		builder.WriteString(title)
		builder.WriteString("\n\n")
	}
	for _, r := range sorted {
		builder.WriteString(fmt.Sprintf("%s %s\n%s\n\n", r.RecurrenceTime, describeRecurrence(r), r.Description))
	}
	return strings.TrimSuffix(builder.String(), "\n\n")
}

func describeRecurrence(r dto.ReminderResponse) string {
	switch constant.RecurrenceType(r.RecurrenceType) {
	case constant.RecurrenceInterval:
		if r.CustomRecurrenceInterval != nil {
			return fmt.Sprintf("(%d日ごと)", *r.CustomRecurrenceInterval)
		}
	case constant.RecurrenceDayOfWeek:
		if r.CustomRecurrenceDay != nil {
			return fmt.Sprintf("(毎週%s)", *r.CustomRecurrenceDay)
		}
	case constant.RecurrenceDaily:
		return "(毎日)"
	}
	return ""
}
