package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Username     string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	DisplayName  string    `gorm:"column:display_name" json:"display_name"`
	Role         Role      `gorm:"not null;default:user;column:role" json:"role"`
	Salt         string    `gorm:"not null;column:salt" json:"-"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	PasswordAlgo string    `gorm:"not null;column:password_algo" json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
