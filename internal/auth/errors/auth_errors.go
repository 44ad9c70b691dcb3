package errors

import (
	"net/http"

	"kampus-absensi/internal/shared/apperror"
)

var (
	// Sengaja satu pesan untuk username salah maupun password salah.
	ErrInvalidCredentials = apperror.New(apperror.CodeUnauthorized, "Invalid username or password", http.StatusUnauthorized)
	ErrInvalidToken       = apperror.New(apperror.CodeUnauthorized, "Invalid or missing token", http.StatusUnauthorized)
	ErrTokenExpired       = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
	ErrForbidden          = apperror.New(apperror.CodeForbidden, "You are not allowed to access this resource", http.StatusForbidden)
)
