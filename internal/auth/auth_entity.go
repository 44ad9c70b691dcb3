package auth

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string     `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uq_admin_username"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null"`
	Nama         string     `gorm:"column:nama;type:varchar(255);not null"`
	Role         string     `gorm:"column:role;type:varchar(20);not null;default:ADMIN"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	LastLogin    *time.Time `gorm:"column:last_login;type:timestamptz"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
