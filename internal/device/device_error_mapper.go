package device

import (
	"errors"
	"strings"

	deviceerrors "kampus-absensi/internal/device/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return deviceerrors.ErrDeviceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_device_device_id":
				return deviceerrors.ErrDeviceAlreadyExists
			case "uq_device_serial_number":
				return deviceerrors.ErrSerialAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_device_device_id") {
		return deviceerrors.ErrDeviceAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_device_serial_number") {
		return deviceerrors.ErrSerialAlreadyExists
	}

	return err
}
