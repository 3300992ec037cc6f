package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"intranet/internal/apperr"
	"intranet/internal/images"
	"intranet/internal/storage"
	"intranet/internal/store"
	"intranet/models"
)

const maxEventImages = 5

type CreateEventInput struct {
	Name        string
	Description string
	Images      []storage.Upload
}

// UpdateEventInput carries only the fields present in the request. An empty
// Images slice keeps the stored references.
type UpdateEventInput struct {
	Name        *string
	Description *string
	Images      []storage.Upload
}

// EventService owns the events table and its image collection.
type EventService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

func NewEventService(db *gorm.DB, blobs storage.BlobStore) *EventService {
	return &EventService{db: db, blobs: blobs}
}

func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	if err := validateDisplayName(in.Name); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	if err := validateUploads(in.Images); err != nil {
		return nil, err
	}

	refs, err := saveAll(ctx, s.blobs, in.Images)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "save images", err)
	}

	event := models.Event{
		EventName:        in.Name,
		EventDescription: in.Description,
		EventImages:      pq.StringArray(refs),
	}
	res := s.db.WithContext(ctx).Create(&event)
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.Internal, "create event", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.E(apperr.Persistence, "Event not created")
	}
	return &event, nil
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Scopes(store.OrderedBy("event_name")).Find(&events).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list events", err)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id uint64) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).Scopes(store.ByID(id)).Take(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.E(apperr.NotFound, "Event not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "load event", err)
	}
	return &event, nil
}

// Update applies a partial update. New uploads replace the whole image
// collection: the stored blobs are deleted best-effort, the new ones saved
// concurrently and joined in upload order.
func (s *EventService) Update(ctx context.Context, id uint64, in UpdateEventInput) (*models.Event, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := mergeEvent(*existing, in)
	if err != nil {
		return nil, err
	}

	if len(in.Images) > 0 {
		if err := validateUploads(in.Images); err != nil {
			return nil, err
		}
		dropBlobs(ctx, s.blobs, existing.EventImages...)
		refs, err := saveAll(ctx, s.blobs, in.Images)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "save images", err)
		}
		merged.EventImages = pq.StringArray(refs)
	}

	res := s.db.WithContext(ctx).Model(&models.Event{}).Scopes(store.ByID(id)).Updates(map[string]any{
		"event_name":        merged.EventName,
		"event_description": merged.EventDescription,
		"event_images":      merged.EventImages,
	})
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.Internal, "update event", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.E(apperr.Persistence, "Event not updated")
	}
	return s.Get(ctx, id)
}

// Delete removes the row, then every blob it referenced, best-effort.
func (s *EventService) Delete(ctx context.Context, id uint64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Scopes(store.ByID(id)).Delete(&models.Event{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "delete event", res.Error)
	}

	dropBlobs(ctx, s.blobs, existing.EventImages...)
	return nil
}

func mergeEvent(existing models.Event, in UpdateEventInput) (models.Event, error) {
	merged := existing
	if in.Name != nil {
		if err := validateDisplayName(*in.Name); err != nil {
			return models.Event{}, err
		}
		merged.EventName = *in.Name
	}
	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return models.Event{}, err
		}
		merged.EventDescription = *in.Description
	}
	return merged, nil
}

func validateUploads(uploads []storage.Upload) error {
	if len(uploads) > maxEventImages {
		return apperr.E(apperr.Validation, "Up to 5 images are allowed")
	}
	for _, up := range uploads {
		if err := images.Validate(up.Data); err != nil {
			return err
		}
	}
	return nil
}
