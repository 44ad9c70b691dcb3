package device

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"kampus-absensi/internal/audit"

	"github.com/google/uuid"
)

//go:generate mockgen -source=device_service.go -destination=mock/device_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor string, req CreateDeviceRequest) (DeviceResponse, error)
	GetAll(ctx context.Context) ([]DeviceResponse, error)
	Update(ctx context.Context, actor, id string, req UpdateDeviceRequest) (DeviceResponse, error)
	Deactivate(ctx context.Context, actor, id string) error
}

type service struct {
	repo Repository
	sink audit.Sink
}

func NewService(repo Repository, sink audit.Sink) Service {
	return &service{repo: repo, sink: sink}
}

func (s *service) Create(ctx context.Context, actor string, req CreateDeviceRequest) (DeviceResponse, error) {
	apiKey, err := generateAPIKey()
	if err != nil {
		return DeviceResponse{}, err
	}

	row := &Device{
		ID:           uuid.New(),
		DeviceID:     req.DeviceID,
		SerialNumber: req.SerialNumber,
		IPAddress:    req.IPAddress,
		APIKey:       apiKey,
		Location:     req.Location,
		Faculty:      req.Faculty,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionDeviceCreate,
		Actor:  actor,
		Meta: map[string]any{
			"device_id":     row.DeviceID,
			"serial_number": row.SerialNumber,
		},
	})

	// api_key hanya dikembalikan sekali, saat provisioning
	return mapToResponse(*row, true), nil
}

func (s *service) GetAll(ctx context.Context) ([]DeviceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]DeviceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, false)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, actor, id string, req UpdateDeviceRequest) (DeviceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	if req.IPAddress != nil {
		row.IPAddress = *req.IPAddress
	}
	if req.Location != nil {
		row.Location = req.Location
	}
	if req.Faculty != nil {
		row.Faculty = req.Faculty
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionDeviceUpdate,
		Actor:  actor,
		Meta:   map[string]any{"device_id": row.DeviceID},
	})

	return mapToResponse(*row, false), nil
}

func (s *service) Deactivate(ctx context.Context, actor, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionDeviceDeactivate,
		Actor:  actor,
		Meta:   map[string]any{"id": id},
	})
	return nil
}

func generateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func mapToResponse(d Device, withKey bool) DeviceResponse {
	resp := DeviceResponse{
		ID:           d.ID.String(),
		DeviceID:     d.DeviceID,
		SerialNumber: d.SerialNumber,
		IPAddress:    d.IPAddress,
		Location:     d.Location,
		Faculty:      d.Faculty,
		IsActive:     d.IsActive,
	}
	if withKey {
		resp.APIKey = d.APIKey
	}
	if d.LastSeen != nil {
		v := d.LastSeen.UTC().Format(time.RFC3339)
		resp.LastSeen = &v
	}
	return resp
}
