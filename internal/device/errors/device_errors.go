package deviceerrors

import (
	"kampus-absensi/internal/shared/apperror"
	"net/http"
)

var (
	// ErrInvalidDevice dipakai untuk semua kegagalan autentikasi perangkat.
	// Pesannya sengaja generik: unknown, nonaktif, dan api_key salah tidak
	// boleh bisa dibedakan oleh caller (mencegah enumeration).
	ErrInvalidDevice = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid device",
		http.StatusUnauthorized,
	)
	ErrDeviceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Device not found",
		http.StatusNotFound,
	)
	ErrDeviceAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Device with the same device_id already exists",
		http.StatusConflict,
	)
	ErrSerialAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Device with the same serial number already exists",
		http.StatusConflict,
	)
)
