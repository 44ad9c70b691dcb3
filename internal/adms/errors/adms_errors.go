package admserrors

import (
	"kampus-absensi/internal/shared/apperror"
	"net/http"
)

var (
	ErrIPNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"IP address not authorized",
		http.StatusForbidden,
	)
	// ErrStaleRequest: timestamp di luar replay window. Pesan ke caller sama
	// generiknya dengan kegagalan autentikasi lain; detail skew hanya masuk
	// audit log (mencegah timing oracle).
	ErrStaleRequest = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid device",
		http.StatusUnauthorized,
	)
	// ErrDeviceValidation menutup serial mismatch dan signature mismatch
	// dengan satu pesan; check mana yang gagal hanya tercatat di audit.
	ErrDeviceValidation = apperror.New(
		apperror.CodeForbidden,
		"Device validation failed",
		http.StatusForbidden,
	)
)
