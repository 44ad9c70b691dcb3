package adms

import (
	"context"
	"testing"
	"time"

	"kampus-absensi/internal/attendance"
	attendanceerrors "kampus-absensi/internal/attendance/errors"
	"kampus-absensi/internal/device"
	"kampus-absensi/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeAttendanceRepo struct {
	insertFn             func(ctx context.Context, a *attendance.Attendance) error
	findByCloudIDFn      func(ctx context.Context, cloudID string) (*attendance.Attendance, error)
	findByUserDateTypeFn func(ctx context.Context, userID string, tanggal time.Time, tipe string) (*attendance.Attendance, error)
}

func (f *fakeAttendanceRepo) WithTx(tx *gorm.DB) attendance.Repository { return f }
func (f *fakeAttendanceRepo) Insert(ctx context.Context, a *attendance.Attendance) error {
	return f.insertFn(ctx, a)
}
func (f *fakeAttendanceRepo) FindByCloudID(ctx context.Context, cloudID string) (*attendance.Attendance, error) {
	return f.findByCloudIDFn(ctx, cloudID)
}
func (f *fakeAttendanceRepo) FindByUserDateType(ctx context.Context, userID string, tanggal time.Time, tipe string) (*attendance.Attendance, error) {
	return f.findByUserDateTypeFn(ctx, userID, tanggal, tipe)
}
func (f *fakeAttendanceRepo) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepo) FindByIDIncludeDeleted(ctx context.Context, id string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepo) Search(ctx context.Context, filter attendance.ListFilter, page, limit int) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttendanceRepo) FindRange(ctx context.Context, start, end time.Time, jabatan string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) SoftDelete(ctx context.Context, id, actor string, deletedAt time.Time) error {
	return nil
}

type fakeOutboxRepo struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepo) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	return f.createFn(ctx, event)
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error              { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func newPushService(t *testing.T, repo attendance.Repository, outbox kafka.OutboxRepository, sink *captureSink, mock sqlmock.Sqlmock, gormDB *gorm.DB) Service {
	t.Helper()
	apiKey := "secret-key"
	devices := &fakeDeviceRepo{
		findActiveByAPIKeyFn: func(ctx context.Context, key string) (*device.Device, error) {
			return testDevice(apiKey), nil
		},
	}
	guard := newTestGuard(devices, GuardConfig{DevMode: true}, sink, time.Now())
	return NewService(gormDB, guard, repo, outbox, sink, zap.NewNop())
}

func TestService_Push_Success(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	sink := &captureSink{}

	var inserted *attendance.Attendance
	var outboxEvent *kafka.OutboxEvent

	repo := &fakeAttendanceRepo{
		insertFn: func(ctx context.Context, a *attendance.Attendance) error {
			inserted = a
			return nil
		},
		findByCloudIDFn: func(ctx context.Context, cloudID string) (*attendance.Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
		findByUserDateTypeFn: func(ctx context.Context, userID string, tanggal time.Time, tipe string) (*attendance.Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	outbox := &fakeOutboxRepo{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = &event
			return nil
		},
	}

	svc := newPushService(t, repo, outbox, sink, mock, gormDB)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Push(context.Background(), validPush("secret-key"), "10.0.0.5")
	assert.NoError(t, err)
	assert.Equal(t, StatusProcessed, resp.Status)
	assert.NotEmpty(t, resp.AttendanceID)

	assert.NotNil(t, inserted)
	assert.Equal(t, "MASUK", inserted.TipeAbsensi)
	assert.Equal(t, "DOSEN", inserted.Jabatan)
	assert.Equal(t, "FP-GEDUNG-A", inserted.DeviceID)
	assert.Equal(t, "fingerprint", inserted.Verifikasi)

	assert.NotNil(t, outboxEvent)
	assert.Equal(t, "absensi.attendance.recorded.v1", outboxEvent.Topic)
	assert.Equal(t, inserted.ID.String(), outboxEvent.AggregateID)

	// audit success tercatat
	assert.Len(t, sink.entries, 1)
	assert.Equal(t, "ADMS_PUSH_SUCCESS", sink.entries[0].Action)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Push_CloudIDRetransmission(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	sink := &captureSink{}

	existing := &attendance.Attendance{ID: uuid.New(), CloudID: "cloud-001"}
	repo := &fakeAttendanceRepo{
		findByCloudIDFn: func(ctx context.Context, cloudID string) (*attendance.Attendance, error) {
			return existing, nil
		},
	}

	svc := newPushService(t, repo, &fakeOutboxRepo{}, sink, mock, gormDB)

	resp, err := svc.Push(context.Background(), validPush("secret-key"), "10.0.0.5")
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyProcessed)
	assert.Equal(t, StatusAlreadyProcessed, resp.Status)
	assert.Equal(t, existing.ID.String(), resp.AttendanceID)

	// tidak ada transaksi yang dibuka
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Push_BusinessDuplicate(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	sink := &captureSink{}

	repo := &fakeAttendanceRepo{
		findByCloudIDFn: func(ctx context.Context, cloudID string) (*attendance.Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
		findByUserDateTypeFn: func(ctx context.Context, userID string, tanggal time.Time, tipe string) (*attendance.Attendance, error) {
			return &attendance.Attendance{ID: uuid.New()}, nil
		},
	}

	svc := newPushService(t, repo, &fakeOutboxRepo{}, sink, mock, gormDB)

	_, err := svc.Push(context.Background(), validPush("secret-key"), "10.0.0.5")
	assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateAttendance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Push_CloudIDRaceOnInsert(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	sink := &captureSink{}

	winner := &attendance.Attendance{ID: uuid.New(), CloudID: "cloud-001"}
	firstLookup := true
	repo := &fakeAttendanceRepo{
		findByCloudIDFn: func(ctx context.Context, cloudID string) (*attendance.Attendance, error) {
			// lookup pertama belum ada baris, lookup kedua (setelah race)
			// menemukan record pemenangnya
			if firstLookup {
				firstLookup = false
				return nil, gorm.ErrRecordNotFound
			}
			return winner, nil
		},
		findByUserDateTypeFn: func(ctx context.Context, userID string, tanggal time.Time, tipe string) (*attendance.Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
		insertFn: func(ctx context.Context, a *attendance.Attendance) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_cloud_id"}
		},
	}

	svc := newPushService(t, repo, &fakeOutboxRepo{}, sink, mock, gormDB)

	mock.ExpectBegin()
	mock.ExpectRollback()

	resp, err := svc.Push(context.Background(), validPush("secret-key"), "10.0.0.5")
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyProcessed)
	assert.Equal(t, StatusAlreadyProcessed, resp.Status)
	assert.Equal(t, winner.ID.String(), resp.AttendanceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Push_UserDateTypeRaceOnInsert(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	sink := &captureSink{}

	repo := &fakeAttendanceRepo{
		findByCloudIDFn: func(ctx context.Context, cloudID string) (*attendance.Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
		findByUserDateTypeFn: func(ctx context.Context, userID string, tanggal time.Time, tipe string) (*attendance.Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
		insertFn: func(ctx context.Context, a *attendance.Attendance) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_date_type"}
		},
	}

	svc := newPushService(t, repo, &fakeOutboxRepo{}, sink, mock, gormDB)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Push(context.Background(), validPush("secret-key"), "10.0.0.5")
	assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateAttendance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Push_GuardFailureSkipsStorage(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	sink := &captureSink{}

	repo := &fakeAttendanceRepo{
		findByCloudIDFn: func(ctx context.Context, cloudID string) (*attendance.Attendance, error) {
			t.Fatal("storage tidak boleh disentuh saat guard menolak")
			return nil, nil
		},
	}

	svc := newPushService(t, repo, &fakeOutboxRepo{}, sink, mock, gormDB)

	req := validPush("secret-key")
	req.Jabatan = "REKTOR"

	_, err := svc.Push(context.Background(), req, "10.0.0.5")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
