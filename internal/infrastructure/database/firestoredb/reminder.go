package firestoredb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"remindtrack/internal/domain/entity"
	"remindtrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionName = "reminders"

// NewClient creates a Firestore client for projectID. The emulator is used
// when FIRESTORE_EMULATOR_HOST is set.
func NewClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}

type reminderRepository struct {
	client *firestore.Client
}

// NewReminderRepository creates a Firestore-backed ReminderRepository.
// Owner, type, day membership and anchor bound are pushed into the query;
// interval presence and the text search run over the returned documents,
// since Firestore has no substring operator.
func NewReminderRepository(client *firestore.Client) repository.ReminderRepository {
	return &reminderRepository{client: client}
}

func (r *reminderRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName)
}

func (r *reminderRepository) Find(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, error) {
	reminders := []*entity.Reminder{}
	if filter.Days != nil && len(filter.Days) == 0 {
		return reminders, nil
	}

	q := r.collection().
		Where("userId", "==", filter.UserID).
		Where("recurrenceType", "==", filter.Type.String())
	if filter.Days != nil {
		days := make([]string, len(filter.Days))
		for i, d := range filter.Days {
			days[i] = d.String()
		}
		q = q.Where("customRecurrenceDay", "in", days)
	}
	if filter.CreatedAtOrBefore != nil {
		q = q.Where("createdAt", "<=", filter.CreatedAtOrBefore.UTC())
	}

	iter := q.OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate %s reminders for user %s: %w", filter.Type, filter.UserID, err)
		}

		var reminder entity.Reminder
		if err := doc.DataTo(&reminder); err != nil {
			return nil, fmt.Errorf("failed to decode reminder %s: %w", doc.Ref.ID, err)
		}
		reminder.ID = doc.Ref.ID

		if filter.RequireInterval && reminder.CustomRecurrenceInterval == nil {
			continue
		}
		if !filter.Search.Matches(&reminder) {
			continue
		}
		reminders = append(reminders, &reminder)
	}
	return reminders, nil
}

func (r *reminderRepository) FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("reminder with ID %s not found: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reminder %s: %w", id, err)
	}

	var reminder entity.Reminder
	if err := doc.DataTo(&reminder); err != nil {
		return nil, fmt.Errorf("failed to decode reminder %s: %w", id, err)
	}
	if reminder.UserID != userID {
		return nil, fmt.Errorf("reminder with ID %s not found: %w", id, repository.ErrNotFound)
	}
	reminder.ID = doc.Ref.ID
	return &reminder, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = now
	}
	reminder.CreatedAt = reminder.CreatedAt.UTC()
	reminder.UpdatedAt = now

	if _, err := r.collection().Doc(reminder.ID).Create(ctx, reminder); err != nil {
		return fmt.Errorf("failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	existing, err := r.FindByID(ctx, reminder.UserID, reminder.ID)
	if err != nil {
		return err
	}

	existing.Description = reminder.Description
	existing.RecurrenceTime = reminder.RecurrenceTime
	existing.RecurrenceType = reminder.RecurrenceType
	existing.CustomRecurrenceInterval = reminder.CustomRecurrenceInterval
	existing.CustomRecurrenceDay = reminder.CustomRecurrenceDay
	existing.UpdatedAt = time.Now().UTC()

	if _, err := r.collection().Doc(existing.ID).Set(ctx, existing); err != nil {
		return fmt.Errorf("failed to update reminder %s: %w", reminder.ID, err)
	}
	reminder.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.FindByID(ctx, userID, id); err != nil {
		return err
	}
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", id, err)
	}
	return nil
}

func (r *reminderRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	iter := r.collection().Select("userId").Documents(ctx)
	defer iter.Stop()

	seen := make(map[string]struct{})
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reminder owners: %w", err)
		}
		if userID, ok := doc.Data()["userId"].(string); ok && userID != "" {
			seen[userID] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
