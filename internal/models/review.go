package models

import "time"

// User is a person who writes reviews
type User struct {
	UserID   uint64    `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username string    `gorm:"size:255;not null" json:"username"`
	Email    string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	JoinDate time.Time `gorm:"not null" json:"join_date"`
}

// Review is one user's rating of one amenity. A user reviews an amenity at most once.
type Review struct {
	ReviewID      uint64    `gorm:"primaryKey;autoIncrement" json:"review_id"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_review_user_amenity,priority:1" json:"user_id"`
	AmenityID     uint64    `gorm:"not null;uniqueIndex:idx_review_user_amenity,priority:2;index:idx_review_amenity" json:"amenity_id"`
	OverallRating float64   `gorm:"not null" json:"overall_rating"`
	RatingDetails JSON      `json:"rating_details"`
	Timestamp     time.Time `gorm:"column:created_at;not null;autoCreateTime;index" json:"timestamp"`
	User          *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amenity       *Amenity  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// TableName overrides the table name for Review
func (Review) TableName() string {
	return "reviews"
}
