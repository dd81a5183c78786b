package service

import (
	"context"
	"errors"
	"fmt"

	"remindtrack/internal/application/dto"
	"remindtrack/internal/application/query"
	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"
	appErrors "remindtrack/internal/pkg/errors"
	"remindtrack/internal/pkg/logger"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	engine       *query.Engine
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	engine *query.Engine,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		engine:       engine,
		log:          log,
	}
}

// ListReminders returns the owner's reminders matching the search term that
// occur within the optional date window.
func (s *reminderService) ListReminders(ctx context.Context, ownerID string, req dto.ListRemindersRequest) ([]dto.ReminderResponse, error) {
	if ownerID == "" {
		return nil, appErrors.ErrMissingOwnerScope
	}
	criteria, err := req.Criteria()
	if err != nil {
		return nil, err
	}
	reminders, err := s.engine.ListReminders(ctx, ownerID, criteria)
	if err != nil {
		if errors.Is(err, appErrors.ErrStoreFailure) {
			s.log.Error(fmt.Sprintf("Failed to list reminders for user %s", ownerID), err)
		}
		return nil, err
	}
	s.log.Debug(fmt.Sprintf("Listed %d reminders for user %s", len(reminders), ownerID))
	return dto.ToReminderResponseList(reminders), nil
}

// CreateReminder validates and stores a new reminder.
func (s *reminderService) CreateReminder(ctx context.Context, ownerID string, req dto.ReminderRequest) (dto.ReminderResponse, error) {
	if ownerID == "" {
		return dto.ReminderResponse{}, appErrors.ErrMissingOwnerScope
	}
	reminder, err := req.ToEntity(ownerID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for user %s", ownerID), err)
		return dto.ReminderResponse{}, fmt.Errorf("%w: %v", appErrors.ErrStoreFailure, err)
	}
	s.log.Info(fmt.Sprintf("Created %s reminder %s for user %s", reminder.RecurrenceType, reminder.ID, ownerID))
	return dto.ToReminderResponse(reminder), nil
}

// GetReminder retrieves a reminder by its ID.
func (s *reminderService) GetReminder(ctx context.Context, ownerID, reminderID string) (dto.ReminderResponse, error) {
	reminder, err := s.find(ctx, ownerID, reminderID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}
	return dto.ToReminderResponse(reminder), nil
}

// UpdateReminder replaces the content and recurrence of a reminder. The owner
// and the creation time are kept, so an interval reminder keeps its anchor.
func (s *reminderService) UpdateReminder(ctx context.Context, ownerID, reminderID string, req dto.ReminderRequest) (dto.ReminderResponse, error) {
	if ownerID == "" {
		return dto.ReminderResponse{}, appErrors.ErrMissingOwnerScope
	}
	updated, err := req.ToEntity(ownerID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}

	reminder, err := s.find(ctx, ownerID, reminderID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}
	reminder.Description = updated.Description
	reminder.RecurrenceTime = updated.RecurrenceTime
	reminder.RecurrenceType = updated.RecurrenceType
	reminder.CustomRecurrenceInterval = updated.CustomRecurrenceInterval
	reminder.CustomRecurrenceDay = updated.CustomRecurrenceDay

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.ReminderResponse{}, appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to update reminder %s for user %s", reminderID, ownerID), err)
		return dto.ReminderResponse{}, fmt.Errorf("%w: %v", appErrors.ErrStoreFailure, err)
	}
	s.log.Info(fmt.Sprintf("Updated reminder %s for user %s", reminderID, ownerID))
	return dto.ToReminderResponse(reminder), nil
}

// DeleteReminder deletes a reminder by its ID.
func (s *reminderService) DeleteReminder(ctx context.Context, ownerID, reminderID string) error {
	if ownerID == "" {
		return appErrors.ErrMissingOwnerScope
	}
	if err := s.reminderRepo.Delete(ctx, ownerID, reminderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to delete reminder %s for user %s", reminderID, ownerID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrStoreFailure, err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminder %s for user %s", reminderID, ownerID))
	return nil
}

func (s *reminderService) find(ctx context.Context, ownerID, reminderID string) (*entity.Reminder, error) {
	if ownerID == "" {
		return nil, appErrors.ErrMissingOwnerScope
	}
	reminder, err := s.reminderRepo.FindByID(ctx, ownerID, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to get reminder %s for user %s", reminderID, ownerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStoreFailure, err)
	}
	return reminder, nil
}
