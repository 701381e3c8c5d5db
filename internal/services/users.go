package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/localnerve/amenitydb/internal/models"
	"gorm.io/gorm"
)

// UserInput describes a new user. A zero JoinDate means now.
type UserInput struct {
	Username string
	Email    string
	JoinDate time.Time
}

// CreateUser inserts a user. Emails are unique.
func CreateUser(ctx context.Context, db *gorm.DB, input UserInput) (*models.User, error) {
	user := models.User{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		JoinDate: input.JoinDate,
	}
	if user.Username == "" || user.Email == "" {
		return nil, BadRequest("username and email are required")
	}
	if user.JoinDate.IsZero() {
		user.JoinDate = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, storeError(err, "create user", "A user with this email already exists")
	}
	return &user, nil
}

// GetUser returns a user by id
func GetUser(ctx context.Context, db *gorm.DB, userID uint64) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("User %d not found", userID)
		}
		return nil, storeError(err, "get user", "")
	}
	return &user, nil
}
