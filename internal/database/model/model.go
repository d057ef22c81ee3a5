package model

import "time"

// User is a dashboard account. PasswordHash never leaves the API surface.
type User struct {
	ID                string     `gorm:"type:uuid;primaryKey" json:"id"`
	Username          string     `gorm:"type:varchar(120);uniqueIndex;not null" json:"username"`
	Email             *string    `gorm:"type:varchar(255)" json:"email"`
	PasswordHash      string     `gorm:"not null" json:"-"`
	Enabled           bool       `gorm:"not null;default:true" json:"enabled"`
	IsAdmin           bool       `gorm:"not null;default:false" json:"isAdmin"`
	IsFirstLogin      bool       `gorm:"not null;default:true" json:"isFirstLogin"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	PasswordUpdatedAt *time.Time `json:"passwordUpdatedAt"`
}

// Session authorizes a bearer credential until ExpiresAt. A row existing does
// not imply validity: expiry and the owner's enabled flag are rechecked on
// every guard pass.
type Session struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:uuid;index;not null" json:"userId"`
	User       User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `gorm:"index;not null" json:"expiresAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

// SessionInfo is a session joined with its owner's username for the admin
// console listing.
type SessionInfo struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}
