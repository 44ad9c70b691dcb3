package attendance

import (
	"context"
	"time"

	"kampus-absensi/internal/audit"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, actor string, filter ListFilter, page, limit int) ([]AttendanceResponse, int64, error)
	GetDeleted(ctx context.Context, id string) (AttendanceResponse, error)
	Delete(ctx context.Context, actor, id string) error
}

type service struct {
	repo Repository
	sink audit.Sink
}

func NewService(repo Repository, sink audit.Sink) Service {
	return &service{repo: repo, sink: sink}
}

func (s *service) GetAll(ctx context.Context, actor string, filter ListFilter, page, limit int) ([]AttendanceResponse, int64, error) {
	rows, total, err := s.repo.Search(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionViewAttendance,
		Actor:  actor,
		Meta: map[string]any{
			"total_records": total,
			"user_id":       filter.UserID,
			"jabatan":       filter.Jabatan,
		},
	})

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = MapToResponse(r)
	}
	return res, total, nil
}

// GetDeleted membaca satu baris lewat jalur include-deleted (recovery view).
func (s *service) GetDeleted(ctx context.Context, id string) (AttendanceResponse, error) {
	row, err := s.repo.FindByIDIncludeDeleted(ctx, id)
	if err != nil {
		return AttendanceResponse{}, MapRepositoryError(err)
	}
	return MapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, actor, id string) error {
	// Ambil dulu untuk isi audit; baris yang sudah terhapus dianggap NotFound.
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return MapRepositoryError(err)
	}

	if err := s.repo.SoftDelete(ctx, id, actor, time.Now().UTC()); err != nil {
		return MapRepositoryError(err)
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionAttendanceDelete,
		Actor:  actor,
		Meta: map[string]any{
			"attendance_id": id,
			"user_id":       row.UserID,
			"nama":          row.Nama,
			"tanggal":       row.TanggalAbsensi.Format("2006-01-02"),
		},
	})
	return nil
}
