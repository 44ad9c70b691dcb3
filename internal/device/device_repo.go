package device

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=device_repo.go -destination=mock/device_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *Device) error
	FindAll(ctx context.Context) ([]Device, error)
	FindByID(ctx context.Context, id string) (*Device, error)
	FindActiveByAPIKey(ctx context.Context, apiKey string) (*Device, error)
	FindBySerial(ctx context.Context, serial string) (*Device, error)
	Update(ctx context.Context, d *Device) error
	Deactivate(ctx context.Context, id string) error
	TouchLastSeen(ctx context.Context, deviceID string, seenAt time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Device) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Device, error) {
	var rows []Device
	err := r.db.WithContext(ctx).
		Order("device_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Device, error) {
	var d Device
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) FindActiveByAPIKey(ctx context.Context, apiKey string) (*Device, error) {
	var d Device
	err := r.db.WithContext(ctx).
		Where("api_key = ?", apiKey).
		Where("is_active = ?", true).
		First(&d).Error
	return &d, err
}

func (r *repository) FindBySerial(ctx context.Context, serial string) (*Device, error) {
	var d Device
	err := r.db.WithContext(ctx).
		Where("serial_number = ?", serial).
		First(&d).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Device) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&Device{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) TouchLastSeen(ctx context.Context, deviceID string, seenAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Device{}).
		Where("device_id = ?", deviceID).
		Update("last_seen", seenAt).Error
}
