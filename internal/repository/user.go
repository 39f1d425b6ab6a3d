package repository

import (
	"context"
	"errors"

	"wrenchbase/internal/cache"
	"wrenchbase/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines persistence operations for identity-synced users.
// All mutations key on the external identity ID so webhook redelivery stays
// idempotent.
type UserRepository interface {
	GetByClerkID(ctx context.Context, clerkID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, clerkID string, user *models.User) error
	DeleteByClerkID(ctx context.Context, clerkID string) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var user models.User
	key := cache.UserKey(clerkID)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).Where("clerk_id = ?", clerkID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", clerkID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// Upsert inserts the user or, when the identity key already exists, refreshes
// the mutable profile fields from the provider payload. Role is intentionally
// not part of the conflict update: promotion happens once at creation and a
// redelivered created event must not demote anyone.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "clerk_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"first_name", "last_name", "email", "username", "avatar", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ClerkID)
	return nil
}

// UpdateProfile applies the mutable subset of fields from an updated event.
// Role, bio, specialties, and experience are owned locally and untouched.
func (r *userRepository) UpdateProfile(ctx context.Context, clerkID string, user *models.User) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("clerk_id = ?", clerkID).
		Select("first_name", "last_name", "email", "username", "avatar").
		Updates(user)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", clerkID)
	}
	cache.InvalidateUser(ctx, clerkID)
	return nil
}

func (r *userRepository) DeleteByClerkID(ctx context.Context, clerkID string) error {
	if err := r.db.WithContext(ctx).Where("clerk_id = ?", clerkID).Delete(&models.User{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, clerkID)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
