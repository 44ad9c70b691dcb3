package auth

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("is_active = ?", true).
		First(&a).Error
	return &a, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Admin{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}
