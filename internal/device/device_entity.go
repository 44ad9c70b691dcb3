package device

import (
	"time"

	"github.com/google/uuid"
)

type Device struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	DeviceID     string     `gorm:"column:device_id;type:varchar(50);not null;uniqueIndex:uq_device_device_id"`
	SerialNumber string     `gorm:"column:serial_number;type:varchar(100);not null;uniqueIndex:uq_device_serial_number"`
	IPAddress    string     `gorm:"column:ip_address;type:varchar(45);not null"`
	APIKey       string     `gorm:"column:api_key;type:varchar(255);not null;index"`
	Location     *string    `gorm:"column:location;type:varchar(255)"`
	Faculty      *string    `gorm:"column:faculty;type:varchar(100)"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	LastSeen     *time.Time `gorm:"column:last_seen;type:timestamptz"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (Device) TableName() string {
	return "devices"
}
