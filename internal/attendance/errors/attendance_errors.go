package attendanceerrors

import (
	"kampus-absensi/internal/shared/apperror"
	"net/http"
)

var (
	// ErrAlreadyProcessed: cloud_id yang sama sudah pernah diterima.
	// Retransmisi aman untuk diabaikan oleh perangkat; body membawa id record
	// aslinya supaya caller bisa membedakan dari double-booking sungguhan.
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeConflict,
		"Attendance already processed for this cloud_id",
		http.StatusConflict,
	)
	// ErrDuplicateAttendance: fakta bisnis yang sama (user, tanggal, tipe)
	// sudah tercatat lewat cloud_id lain.
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeConflict,
		"Attendance already exists for this user, date, and type",
		http.StatusConflict,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
)
