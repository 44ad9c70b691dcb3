package attendance

import (
	"errors"
	"strings"

	attendanceerrors "kampus-absensi/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError menerjemahkan error storage menjadi error domain.
// Pelanggaran unique constraint (23505) dari insert adalah sinyal duplikat
// yang otoritatif: dua push konkuren bisa sama-sama lolos pre-check, dan
// constraint-lah yang menutup race tersebut.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_attendance_cloud_id":
				return attendanceerrors.ErrAlreadyProcessed
			case "uq_attendance_user_date_type":
				return attendanceerrors.ErrDuplicateAttendance
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_cloud_id") {
		return attendanceerrors.ErrAlreadyProcessed
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_user_date_type") {
		return attendanceerrors.ErrDuplicateAttendance
	}

	return err
}
