package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"intranet/internal/apperr"
	"intranet/internal/password"
	"intranet/internal/store"
	"intranet/models"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries only the fields present in the request; nil means
// "keep the stored value". The password changes only when OldPassword and
// NewPassword are both supplied.
type UpdateUserInput struct {
	Name        *string
	Email       *string
	OldPassword *string
	NewPassword *string
}

// UserService owns validation and persistence for directory accounts.
// Accounts have no delete operation.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validateUserName(in.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}

	taken, err := s.emailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.E(apperr.Conflict, "User already exists!")
	}

	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	digest, err := password.Hash(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "hash password", err)
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: digest}
	res := s.db.WithContext(ctx).Create(&user)
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.Internal, "create user", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.E(apperr.Persistence, "User not created!")
	}
	return &user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Scopes(store.OrderedBy("name")).Find(&users).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list users", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Scopes(store.ByID(id)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.E(apperr.NotFound, "User not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "load user", err)
	}
	return &user, nil
}

// Update applies a partial update. Every validation runs before the single
// UPDATE, so a rejected field leaves the row untouched.
func (s *UserService) Update(ctx context.Context, id uint64, in UpdateUserInput) (*models.User, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := mergeUser(*existing, in)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		taken, err := s.nameTaken(ctx, *in.Name, existing.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.E(apperr.Conflict, "User already exists!")
		}
	}
	if in.Email != nil {
		taken, err := s.emailTaken(ctx, *in.Email, existing.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.E(apperr.Conflict, "User already exists!")
		}
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).Scopes(store.ByID(id)).Updates(map[string]any{
		"name":     merged.Name,
		"email":    merged.Email,
		"password": merged.Password,
	})
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.Internal, "update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.E(apperr.Persistence, "User not updated")
	}
	return s.Get(ctx, id)
}

// mergeUser folds the supplied fields into the stored row. Supplying only
// one of the two password fields leaves the password alone.
func mergeUser(existing models.User, in UpdateUserInput) (models.User, error) {
	merged := existing
	if in.Name != nil {
		if err := validateUserName(*in.Name); err != nil {
			return models.User{}, err
		}
		merged.Name = *in.Name
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return models.User{}, err
		}
		merged.Email = *in.Email
	}
	if in.OldPassword != nil && in.NewPassword != nil {
		if !password.Compare(*in.OldPassword, existing.Password) {
			return models.User{}, apperr.E(apperr.Auth, "Old password does not match")
		}
		if err := validateNewPassword(*in.NewPassword); err != nil {
			return models.User{}, err
		}
		digest, err := password.Hash(*in.NewPassword)
		if err != nil {
			return models.User{}, apperr.Wrap(apperr.Internal, "hash password", err)
		}
		merged.Password = digest
	}
	return merged, nil
}

// emailTaken reports whether a user other than selfID already holds email.
func (s *UserService) emailTaken(ctx context.Context, email string, selfID uint) (bool, error) {
	var user models.User
	err := s.db.WithContext(ctx).Scopes(store.UserByEmail(email)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Wrap(apperr.Internal, "check email", err)
	}
	return user.ID != selfID, nil
}

func (s *UserService) nameTaken(ctx context.Context, name string, selfID uint) (bool, error) {
	var user models.User
	err := s.db.WithContext(ctx).Scopes(store.UserByName(name)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Wrap(apperr.Internal, "check name", err)
	}
	return user.ID != selfID, nil
}
