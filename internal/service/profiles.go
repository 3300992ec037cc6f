package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"intranet/internal/apperr"
	"intranet/internal/images"
	"intranet/internal/storage"
	"intranet/internal/store"
	"intranet/models"
)

// ProfileKind names one of the two tables sharing the profile row shape.
type ProfileKind struct {
	Table    string
	Singular string
}

var (
	Companies  = ProfileKind{Table: store.TableCompanies, Singular: "Company"}
	Associates = ProfileKind{Table: store.TableAssociates, Singular: "Associate"}
)

type CreateProfileInput struct {
	Name        string
	Description string
	Image       *storage.Upload
}

// UpdateProfileInput carries only the fields present in the request; nil
// means "keep the stored value", a nil Image keeps the stored blob.
type UpdateProfileInput struct {
	Name        *string
	Description *string
	Image       *storage.Upload
}

// ProfileService is the one CRUD implementation behind both the companies
// and the associates tables.
type ProfileService struct {
	db    *gorm.DB
	blobs storage.BlobStore
	kind  ProfileKind
}

func NewProfileService(db *gorm.DB, blobs storage.BlobStore, kind ProfileKind) *ProfileService {
	return &ProfileService{db: db, blobs: blobs, kind: kind}
}

func (s *ProfileService) table(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.kind.Table)
}

func (s *ProfileService) Create(ctx context.Context, in CreateProfileInput) (*models.Profile, error) {
	if err := validateDisplayName(in.Name); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	if in.Image == nil {
		return nil, apperr.E(apperr.Validation, "Image is mandatory")
	}
	if err := images.Validate(in.Image.Data); err != nil {
		return nil, err
	}

	ref, err := s.blobs.Save(ctx, *in.Image)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "save image", err)
	}

	row := models.Profile{Name: in.Name, Description: in.Description, ImagePath: ref}
	res := s.table(ctx).Create(&row)
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.Internal, "create "+strings.ToLower(s.kind.Singular), res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.E(apperr.Persistence, s.kind.Singular+" not created")
	}
	return &row, nil
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	var rows []models.Profile
	if err := s.table(ctx).Scopes(store.OrderedBy("name")).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list "+s.kind.Table, err)
	}
	return rows, nil
}

func (s *ProfileService) Get(ctx context.Context, id uint64) (*models.Profile, error) {
	var row models.Profile
	err := s.table(ctx).Scopes(store.ByID(id)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.E(apperr.NotFound, s.kind.Singular+" not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "load "+strings.ToLower(s.kind.Singular), err)
	}
	return &row, nil
}

// Update applies a partial update. A new upload replaces the stored blob:
// the old one is deleted best-effort before the new reference is written.
func (s *ProfileService) Update(ctx context.Context, id uint64, in UpdateProfileInput) (*models.Profile, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := mergeProfile(*existing, in)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		if err := images.Validate(in.Image.Data); err != nil {
			return nil, err
		}
		dropBlobs(ctx, s.blobs, existing.ImagePath)
		ref, err := s.blobs.Save(ctx, *in.Image)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "save image", err)
		}
		merged.ImagePath = ref
	}

	res := s.table(ctx).Scopes(store.ByID(id)).Updates(map[string]any{
		"name":        merged.Name,
		"description": merged.Description,
		"image_path":  merged.ImagePath,
	})
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.Internal, "update "+strings.ToLower(s.kind.Singular), res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.E(apperr.Persistence, s.kind.Singular+" not updated")
	}
	return s.Get(ctx, id)
}

// Delete removes the row, then its blob. The blob deletion happens after
// the row is gone and never surfaces as the primary error.
func (s *ProfileService) Delete(ctx context.Context, id uint64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	res := s.table(ctx).Scopes(store.ByID(id)).Delete(&models.Profile{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "delete "+strings.ToLower(s.kind.Singular), res.Error)
	}

	dropBlobs(ctx, s.blobs, existing.ImagePath)
	return nil
}

// mergeProfile folds the supplied fields into the stored row; absent fields
// keep their stored values, the image reference included.
func mergeProfile(existing models.Profile, in UpdateProfileInput) (models.Profile, error) {
	merged := existing
	if in.Name != nil {
		if err := validateDisplayName(*in.Name); err != nil {
			return models.Profile{}, err
		}
		merged.Name = *in.Name
	}
	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return models.Profile{}, err
		}
		merged.Description = *in.Description
	}
	return merged, nil
}
