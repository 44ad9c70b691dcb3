package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Insert(ctx context.Context, a *Attendance) error
	FindByCloudID(ctx context.Context, cloudID string) (*Attendance, error)
	FindByUserDateType(ctx context.Context, userID string, tanggal time.Time, tipe string) (*Attendance, error)
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByIDIncludeDeleted(ctx context.Context, id string) (*Attendance, error)
	Search(ctx context.Context, filter ListFilter, page, limit int) ([]Attendance, int64, error)
	FindRange(ctx context.Context, start, end time.Time, jabatan string) ([]Attendance, error)
	SoftDelete(ctx context.Context, id, actor string, deletedAt time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Insert(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByCloudID(ctx context.Context, cloudID string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("cloud_id = ?", cloudID).
		Where("is_deleted = ?", false).
		First(&a).Error
	return &a, err
}

func (r *repository) FindByUserDateType(ctx context.Context, userID string, tanggal time.Time, tipe string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("tanggal_absensi = ?", tanggal.Format("2006-01-02")).
		Where("tipe_absensi = ?", tipe).
		Where("is_deleted = ?", false).
		First(&a).Error
	return &a, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(&a, "id = ?", id).Error
	return &a, err
}

// FindByIDIncludeDeleted adalah jalur recovery admin: baris soft-deleted ikut
// terbaca, lengkap dengan deleted_by dan deleted_at.
func (r *repository) FindByIDIncludeDeleted(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Search(ctx context.Context, filter ListFilter, page, limit int) ([]Attendance, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("is_deleted = ?", false)

	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.DeviceID != "" {
		q = q.Where("device_id = ?", filter.DeviceID)
	}
	if filter.Jabatan != "" {
		q = q.Where("jabatan = ?", filter.Jabatan)
	}
	if filter.TipeAbsensi != "" {
		q = q.Where("tipe_absensi = ?", filter.TipeAbsensi)
	}
	if filter.TanggalMulai != nil {
		q = q.Where("tanggal_absensi >= ?", filter.TanggalMulai.Format("2006-01-02"))
	}
	if filter.TanggalAkhir != nil {
		q = q.Where("tanggal_absensi <= ?", filter.TanggalAkhir.Format("2006-01-02"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Attendance
	err := q.
		Order("tanggal_absensi DESC, waktu_absensi DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindRange(ctx context.Context, start, end time.Time, jabatan string) ([]Attendance, error) {
	q := r.db.WithContext(ctx).
		Where("tanggal_absensi BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Where("is_deleted = ?", false)

	if jabatan != "" {
		q = q.Where("jabatan = ?", jabatan)
	}

	var rows []Attendance
	err := q.
		Order("tanggal_absensi ASC, waktu_absensi ASC, user_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SoftDelete(ctx context.Context, id, actor string, deletedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("id = ?", id).
		Where("is_deleted = ?", false).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_by": actor,
			"deleted_at": deletedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
