package device

import (
	"context"
	"testing"
	"time"

	"kampus-absensi/internal/audit"
	deviceerrors "kampus-absensi/internal/device/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, d *Device) error
	findAllFn    func(ctx context.Context) ([]Device, error)
	findByIDFn   func(ctx context.Context, id string) (*Device, error)
	updateFn     func(ctx context.Context, d *Device) error
	deactivateFn func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, d *Device) error { return f.createFn(ctx, d) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Device, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Device, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindActiveByAPIKey(ctx context.Context, apiKey string) (*Device, error) {
	return nil, nil
}
func (f *fakeRepo) FindBySerial(ctx context.Context, serial string) (*Device, error) {
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, d *Device) error { return f.updateFn(ctx, d) }
func (f *fakeRepo) Deactivate(ctx context.Context, id string) error {
	return f.deactivateFn(ctx, id)
}
func (f *fakeRepo) TouchLastSeen(ctx context.Context, deviceID string, seenAt time.Time) error {
	return nil
}

type captureSink struct {
	entries []audit.Entry
}

func (s *captureSink) Record(_ context.Context, entry audit.Entry) {
	s.entries = append(s.entries, entry)
}

func TestService_Create(t *testing.T) {
	sink := &captureSink{}
	var saved *Device
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Device) error {
			saved = d
			return nil
		},
	}

	svc := NewService(repo, sink)
	resp, err := svc.Create(context.Background(), "admin-1", CreateDeviceRequest{
		DeviceID:     "FP-GEDUNG-A",
		SerialNumber: "SN-001122",
		IPAddress:    "10.0.0.5",
	})
	assert.NoError(t, err)

	// api_key di-generate server: 32 byte hex, dikembalikan sekali
	assert.Len(t, resp.APIKey, 64)
	assert.Equal(t, saved.APIKey, resp.APIKey)
	assert.True(t, saved.IsActive)

	assert.Len(t, sink.entries, 1)
	assert.Equal(t, audit.ActionDeviceCreate, sink.entries[0].Action)
	assert.Equal(t, "admin-1", sink.entries[0].Actor)
}

func TestService_Create_DuplicateDeviceID(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Device) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_device_device_id"}
		},
	}

	svc := NewService(repo, &captureSink{})
	_, err := svc.Create(context.Background(), "admin-1", CreateDeviceRequest{
		DeviceID:     "FP-GEDUNG-A",
		SerialNumber: "SN-001122",
		IPAddress:    "10.0.0.5",
	})
	assert.ErrorIs(t, err, deviceerrors.ErrDeviceAlreadyExists)
}

func TestService_Create_DuplicateSerial(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Device) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_device_serial_number"}
		},
	}

	svc := NewService(repo, &captureSink{})
	_, err := svc.Create(context.Background(), "admin-1", CreateDeviceRequest{
		DeviceID:     "FP-GEDUNG-B",
		SerialNumber: "SN-001122",
		IPAddress:    "10.0.0.6",
	})
	assert.ErrorIs(t, err, deviceerrors.ErrSerialAlreadyExists)
}

func TestService_GetAll_HidesAPIKey(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Device, error) {
			return []Device{{
				ID:           uuid.New(),
				DeviceID:     "FP-GEDUNG-A",
				SerialNumber: "SN-001122",
				APIKey:       "rahasia",
				IsActive:     true,
			}}, nil
		},
	}

	svc := NewService(repo, &captureSink{})
	rows, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Empty(t, rows[0].APIKey)
}

func TestService_Update(t *testing.T) {
	sink := &captureSink{}
	existing := &Device{
		ID:           uuid.New(),
		DeviceID:     "FP-GEDUNG-A",
		SerialNumber: "SN-001122",
		IPAddress:    "10.0.0.5",
		IsActive:     true,
	}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Device, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, d *Device) error { return nil },
	}

	newIP := "10.0.0.9"
	svc := NewService(repo, sink)
	resp, err := svc.Update(context.Background(), "admin-1", existing.ID.String(), UpdateDeviceRequest{
		IPAddress: &newIP,
	})
	assert.NoError(t, err)
	assert.Equal(t, newIP, resp.IPAddress)
	assert.Empty(t, resp.APIKey)

	assert.Len(t, sink.entries, 1)
	assert.Equal(t, audit.ActionDeviceUpdate, sink.entries[0].Action)
}

func TestService_Deactivate(t *testing.T) {
	sink := &captureSink{}
	var deactivated string
	repo := &fakeRepo{
		deactivateFn: func(ctx context.Context, id string) error {
			deactivated = id
			return nil
		},
	}

	svc := NewService(repo, sink)
	id := uuid.New().String()
	assert.NoError(t, svc.Deactivate(context.Background(), "admin-1", id))
	assert.Equal(t, id, deactivated)
	assert.Len(t, sink.entries, 1)
	assert.Equal(t, audit.ActionDeviceDeactivate, sink.entries[0].Action)
}
