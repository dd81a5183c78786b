package service

import (
	"context"
	"fmt"
	"time"

	"remindtrack/internal/application/dto"
	"remindtrack/internal/application/query"
	"remindtrack/internal/domain/repository"
	"remindtrack/internal/infrastructure/scheduler"
	appErrors "remindtrack/internal/pkg/errors"
	"remindtrack/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

const digestTimeout = 2 * time.Minute

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	reminderRepo  repository.ReminderRepository
	engine        *query.Engine
	notifier      Notifier
	log           logger.Logger
	now           func() time.Time
	digestJobID   cron.EntryID
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
// cronScheduler may be nil when the digest is only run on demand.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	reminderRepo repository.ReminderRepository,
	engine *query.Engine,
	notifier Notifier,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		reminderRepo:  reminderRepo,
		engine:        engine,
		notifier:      notifier,
		log:           log,
		now:           time.Now,
	}
}

// ScheduleDigest registers the digest job, replacing a previous registration.
func (s *schedulerService) ScheduleDigest(spec string) error {
	if s.cronScheduler == nil {
		return fmt.Errorf("%w: no cron scheduler configured", appErrors.ErrScheduling)
	}
	if s.digestJobID != 0 {
		s.cronScheduler.RemoveJob(s.digestJobID)
		s.digestJobID = 0
	}

	entryID, err := s.cronScheduler.AddJob(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
		defer cancel()
		s.log.Info("Executing daily digest job")
		if _, err := s.RunDigest(ctx); err != nil {
			s.log.Error("Error running daily digest", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.digestJobID = entryID
	s.log.Info(fmt.Sprintf("Scheduled daily digest with spec %q (Job ID: %d)", spec, entryID))
	if next, ok := s.cronScheduler.NextRun(entryID); ok {
		s.log.Info(fmt.Sprintf("Next daily digest at %s", next.Format(time.RFC3339)))
	}
	return nil
}

// RunDigest pushes today's reminders to every owner that has any. A failure
// for one owner is logged and the remaining owners are still processed.
func (s *schedulerService) RunDigest(ctx context.Context) (int, error) {
	owners, err := s.reminderRepo.ListOwnerIDs(ctx)
	if err != nil {
		s.log.Error("Failed to list reminder owners for digest", err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrStoreFailure, err)
	}

	today := s.engine.Normalizer().Today(s.now())
	criteria := query.Criteria{StartDate: &today, EndDate: &today}

	notified, failed := 0, 0
	var lastErr error
	for _, ownerID := range owners {
		if err := ctx.Err(); err != nil {
			return notified, err
		}
		reminders, err := s.engine.ListReminders(ctx, ownerID, criteria)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to evaluate digest for user %s", ownerID), err)
			lastErr = err
			failed++
			continue
		}
		if len(reminders) == 0 {
			s.log.Debug(fmt.Sprintf("No reminders today for user %s", ownerID))
			continue
		}

		text := FormatReminderList(fmt.Sprintf("今日のリマインド (%s)", today.Format(dto.QueryDateLayout)), dto.ToReminderResponseList(reminders))
		if err := s.notifier.PushText(ctx, ownerID, text); err != nil {
			lastErr = fmt.Errorf("%w: %v", appErrors.ErrLineAPI, err)
			s.log.Error(fmt.Sprintf("Failed to push digest to user %s", ownerID), lastErr)
			failed++
			continue
		}
		notified++
	}

	s.log.Info(fmt.Sprintf("Daily digest complete. Owners: %d, Notified: %d, Failed: %d", len(owners), notified, failed))
	if failed > 0 && failed == len(owners) {
		return 0, fmt.Errorf("digest failed for every owner: %w", lastErr)
	}
	return notified, nil
}

// Stop stops the underlying scheduler.
func (s *schedulerService) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}
