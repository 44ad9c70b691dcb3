package attendance

import (
	"errors"
	"testing"

	attendanceerrors "kampus-absensi/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, attendanceerrors.ErrAttendanceNotFound},
		{
			"unique cloud_id",
			&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_cloud_id"},
			attendanceerrors.ErrAlreadyProcessed,
		},
		{
			"unique user date type",
			&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_date_type"},
			attendanceerrors.ErrDuplicateAttendance,
		},
		{
			"string fallback cloud_id",
			errors.New(`ERROR: duplicate key value violates unique constraint "uq_attendance_cloud_id"`),
			attendanceerrors.ErrAlreadyProcessed,
		},
		{
			"string fallback user date type",
			errors.New(`ERROR: duplicate key value violates unique constraint "uq_attendance_user_date_type"`),
			attendanceerrors.ErrDuplicateAttendance,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapRepositoryError(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestMapRepositoryError_Passthrough(t *testing.T) {
	raw := errors.New("connection refused")
	assert.Equal(t, raw, MapRepositoryError(raw))

	// constraint lain tidak boleh dipetakan jadi conflict
	other := &pgconn.PgError{Code: "23505", ConstraintName: "uq_device_serial_number"}
	assert.Equal(t, error(other), MapRepositoryError(other))
}
