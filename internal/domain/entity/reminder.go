package entity

import (
	"time"

	"remindtrack/internal/domain/constant"
)

// Reminder is a recurring reminder owned by a single user.
// CreatedAt is the anchor of the recurrence (its first occurrence).
type Reminder struct {
	ID                       string                  `gorm:"primaryKey;type:varchar(36)" firestore:"id" json:"id"`
	UserID                   string                  `gorm:"column:user_id;index;not null" firestore:"userId" json:"userId"`
	Description              string                  `gorm:"column:description;type:text;not null" firestore:"description" json:"description"`
	RecurrenceTime           string                  `gorm:"column:recurrence_time;type:varchar(5);not null" firestore:"recurrenceTime" json:"recurrenceTime"`
	RecurrenceType           constant.RecurrenceType `gorm:"column:recurrence_type;index;not null" firestore:"recurrenceType" json:"recurrenceType"`
	CustomRecurrenceInterval *int                    `gorm:"column:custom_recurrence_interval" firestore:"customRecurrenceInterval,omitempty" json:"customRecurrenceInterval,omitempty"`
	CustomRecurrenceDay      *constant.RecurrenceDay `gorm:"column:custom_recurrence_day" firestore:"customRecurrenceDay,omitempty" json:"customRecurrenceDay,omitempty"`
	CreatedAt                time.Time               `gorm:"column:created_at;index" firestore:"createdAt" json:"createdAt"`
	UpdatedAt                time.Time               `gorm:"column:updated_at" firestore:"updatedAt" json:"updatedAt"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}
