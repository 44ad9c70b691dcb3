package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"

	"kampus-absensi/internal/attendance"
	"kampus-absensi/internal/audit"
	"kampus-absensi/internal/report"
	"kampus-absensi/internal/shared/apperror"
)

type Format string

const (
	FormatCSV         Format = "csv"
	FormatSpreadsheet Format = "spreadsheet"
	FormatPDF         Format = "pdf"
)

var ErrUnsupportedFormat = apperror.New(
	apperror.CodeValidation,
	"Unsupported export format",
	http.StatusBadRequest,
)

// Result membawa byte stream plus nama file dan content type yang disarankan.
type Result struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	ExportRecords(ctx context.Context, actor string, bulan, tahun int, jabatan string, format Format) (Result, error)
}

type service struct {
	repo attendance.Repository
	sink audit.Sink
}

func NewService(repo attendance.Repository, sink audit.Sink) Service {
	return &service{repo: repo, sink: sink}
}

var recordHeader = []string{
	"Tanggal", "Waktu", "User ID", "NIP", "Nama", "Jabatan",
	"Tipe Absensi", "Device ID", "Verifikasi", "Cloud ID",
}

func (s *service) ExportRecords(ctx context.Context, actor string, bulan, tahun int, jabatan string, format Format) (Result, error) {
	start, end := report.MonthRange(bulan, tahun)
	rows, err := s.repo.FindRange(ctx, start, end, jabatan)
	if err != nil {
		return Result{}, err
	}

	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{
			r.TanggalAbsensi.Format("2006-01-02"),
			r.WaktuAbsensi,
			r.UserID,
			r.NIP,
			r.Nama,
			r.Jabatan,
			r.TipeAbsensi,
			r.DeviceID,
			r.Verifikasi,
			r.CloudID,
		}
	}

	base := fmt.Sprintf("laporan-absensi-%04d-%02d", tahun, bulan)
	var res Result

	switch format {
	case FormatCSV:
		b, err := buildCSV(recordHeader, table)
		if err != nil {
			return Result{}, err
		}
		res = Result{Bytes: b, Filename: base + ".csv", ContentType: "text/csv"}
	case FormatSpreadsheet:
		b, err := buildSpreadsheet("Attendance Data", recordHeader, table)
		if err != nil {
			return Result{}, err
		}
		res = Result{Bytes: b, Filename: base + ".xml", ContentType: "application/vnd.ms-excel"}
	case FormatPDF:
		lines := make([]string, len(table))
		for i, row := range table {
			// kolom ringkas: tanggal waktu user nama tipe
			lines[i] = fmt.Sprintf("%s %s  %s  %s  %s", row[0], row[1], row[2], row[4], row[6])
		}
		title := fmt.Sprintf("Laporan Absensi Kampus %04d-%02d (total %d records)", tahun, bulan, len(rows))
		b, err := buildReportPDF(title, lines)
		if err != nil {
			return Result{}, err
		}
		res = Result{Bytes: b, Filename: base + ".pdf", ContentType: "application/pdf"}
	default:
		return Result{}, ErrUnsupportedFormat
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionExport,
		Actor:  actor,
		Meta: map[string]any{
			"bulan":   bulan,
			"tahun":   tahun,
			"jabatan": jabatan,
			"format":  string(format),
			"records": len(rows),
		},
	})

	return res, nil
}

func buildCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
