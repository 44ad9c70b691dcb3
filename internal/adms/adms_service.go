package adms

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kampus-absensi/internal/attendance"
	attendanceerrors "kampus-absensi/internal/attendance/errors"
	"kampus-absensi/internal/audit"
	"kampus-absensi/internal/events"
	"kampus-absensi/internal/messaging/kafka"
	"kampus-absensi/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=adms_service.go -destination=mock/adms_service_mock.go -package=mock
type Service interface {
	Push(ctx context.Context, req PushRequest, clientIP string) (PushResponse, error)
}

type service struct {
	db     *gorm.DB
	guard  *Guard
	repo   attendance.Repository
	outbox kafka.OutboxRepository
	sink   audit.Sink
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *gorm.DB,
	guard *Guard,
	repo attendance.Repository,
	outbox kafka.OutboxRepository,
	sink audit.Sink,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		db:     db,
		guard:  guard,
		repo:   repo,
		outbox: outbox,
		sink:   sink,
		logger: logger.Named("adms.service"),
		now:    time.Now,
	}
}

func (s *service) Push(ctx context.Context, req PushRequest, clientIP string) (PushResponse, error) {
	dev, n, err := s.guard.Check(ctx, req, clientIP)
	if err != nil {
		return PushResponse{}, err
	}

	// Fast path dedup. Ini advisory: dua push konkuren bisa sama-sama lolos,
	// dan unique constraint di insert-lah yang otoritatif (lihat mapper).
	if existing, err := s.repo.FindByCloudID(ctx, req.CloudID); err == nil {
		s.logger.Info("adms push retransmission",
			zap.String("cloud_id", req.CloudID),
			zap.String("device_id", dev.DeviceID),
			zap.String("ip", clientIP),
		)
		return PushResponse{
			AttendanceID: existing.ID.String(),
			Status:       StatusAlreadyProcessed,
		}, attendanceerrors.ErrAlreadyProcessed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PushResponse{}, err
	}

	if _, err := s.repo.FindByUserDateType(ctx, req.UserID, n.TanggalAbsensi, n.TipeAbsensi); err == nil {
		s.logger.Info("adms push business duplicate",
			zap.String("user_id", req.UserID),
			zap.String("tanggal", n.TanggalAbsensi.Format("2006-01-02")),
			zap.String("tipe", n.TipeAbsensi),
		)
		return PushResponse{}, attendanceerrors.ErrDuplicateAttendance
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PushResponse{}, err
	}

	row := &attendance.Attendance{
		ID:             uuid.New(),
		CloudID:        req.CloudID,
		DeviceID:       dev.DeviceID,
		UserID:         req.UserID,
		Nama:           req.Nama,
		NIP:            req.NIP,
		Jabatan:        n.Jabatan,
		TanggalAbsensi: n.TanggalAbsensi,
		WaktuAbsensi:   n.WaktuAbsensi,
		TipeAbsensi:    n.TipeAbsensi,
		Verifikasi:     n.Verifikasi,
		TanggalUpload:  s.now().UTC(),
	}

	// Insert ledger + outbox event dalam satu transaksi. Pelanggaran unique
	// constraint dipetakan ke conflict yang sama dengan fast path.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Insert(ctx, row); err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, s.buildOutboxEvent(ctx, row))
	})
	if err != nil {
		mapped := attendance.MapRepositoryError(err)
		if errors.Is(mapped, attendanceerrors.ErrAlreadyProcessed) {
			// race dengan retransmisi: ambil id record yang menang
			if existing, findErr := s.repo.FindByCloudID(ctx, req.CloudID); findErr == nil {
				return PushResponse{
					AttendanceID: existing.ID.String(),
					Status:       StatusAlreadyProcessed,
				}, mapped
			}
		}
		return PushResponse{}, mapped
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionPushSuccess,
		Actor:  dev.DeviceID,
		Meta: map[string]any{
			"attendance_id": row.ID.String(),
			"user_id":       row.UserID,
			"nama":          row.Nama,
			"jabatan":       row.Jabatan,
			"tanggal":       row.TanggalAbsensi.Format("2006-01-02"),
			"waktu":         row.WaktuAbsensi,
			"tipe":          row.TipeAbsensi,
			"ip":            clientIP,
		},
	})

	s.logger.Info("adms push successful",
		zap.String("attendance_id", row.ID.String()),
		zap.String("device_id", dev.DeviceID),
		zap.String("user_id", row.UserID),
		zap.String("ip", clientIP),
	)

	return PushResponse{
		AttendanceID: row.ID.String(),
		Status:       StatusProcessed,
	}, nil
}

func (s *service) buildOutboxEvent(ctx context.Context, row *attendance.Attendance) kafka.OutboxEvent {
	payload, _ := json.Marshal(events.AttendanceRecordedEvent{
		EventType:      "attendance.recorded",
		AttendanceID:   row.ID.String(),
		CloudID:        row.CloudID,
		DeviceID:       row.DeviceID,
		UserID:         row.UserID,
		Jabatan:        row.Jabatan,
		TanggalAbsensi: row.TanggalAbsensi.Format("2006-01-02"),
		WaktuAbsensi:   row.WaktuAbsensi,
		TipeAbsensi:    row.TipeAbsensi,
		OccurredAt:     s.now().UTC(),
	})

	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance",
		AggregateID:   row.ID.String(),
		EventType:     "attendance.recorded",
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
}
