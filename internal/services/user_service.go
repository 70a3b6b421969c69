package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tinhour/line-rent-bot/internal/models"
)

// IUserService defines the interface for user operations.
type IUserService interface {
	FindByLineID(ctx context.Context, lineUserID string) (*models.User, error)
	FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	CreateOrUpdate(ctx context.Context, lineUserID, displayName string) (*models.User, error)
	PromoteToLandlord(ctx context.Context, userID uuid.UUID) error
}

// userService implements IUserService.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *gorm.DB) IUserService {
	return &userService{db: db}
}

// FindByLineID finds a user by their LINE user ID.
// Returns gorm.ErrRecordNotFound if the user is unknown.
func (s *userService) FindByLineID(ctx context.Context, lineUserID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("line_user_id = ?", lineUserID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by internal ID.
func (s *userService) FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateOrUpdate upserts a user keyed on the LINE user ID, refreshing the
// display name on conflict.
func (s *userService) CreateOrUpdate(ctx context.Context, lineUserID, displayName string) (*models.User, error) {
	user := models.User{
		LineUserID:  lineUserID,
		DisplayName: displayName,
		UserType:    models.UserTypeTenant,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "line_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", lineUserID, err)
	}
	// Re-read to get the canonical row (the insert ID is discarded on conflict).
	return s.FindByLineID(ctx, lineUserID)
}

// PromoteToLandlord sets the user's role to LANDLORD.
func (s *userService) PromoteToLandlord(ctx context.Context, userID uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("user_type", models.UserTypeLandlord)
	if res.Error != nil {
		return fmt.Errorf("failed to promote user %s to landlord: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
