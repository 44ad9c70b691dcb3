package report

import (
	"context"
	"fmt"
	"math"
	"sort"

	"kampus-absensi/internal/attendance"
	"kampus-absensi/internal/audit"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, actor string, bulan, tahun int, jabatan string) (SummaryReport, error)
	Monthly(ctx context.Context, actor string, bulan, tahun int, jabatan string) (MonthlyReport, error)
	Dashboard(ctx context.Context, actor string, bulan, tahun int) (DashboardSummary, error)
}

type service struct {
	repo attendance.Repository
	sink audit.Sink
	// group meng-collapse perhitungan rekap identik yang datang bersamaan;
	// hasilnya deterministik sehingga berbagi hasil aman.
	group singleflight.Group
}

func NewService(repo attendance.Repository, sink audit.Sink) Service {
	return &service{repo: repo, sink: sink}
}

func (s *service) Summary(ctx context.Context, actor string, bulan, tahun int, jabatan string) (SummaryReport, error) {
	key := fmt.Sprintf("rekap:%d:%d:%s", bulan, tahun, jabatan)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.computeSummary(ctx, bulan, tahun, jabatan)
	})
	if err != nil {
		return SummaryReport{}, err
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionViewSummary,
		Actor:  actor,
		Meta:   map[string]any{"bulan": bulan, "tahun": tahun, "jabatan": jabatan},
	})
	return v.(SummaryReport), nil
}

func (s *service) computeSummary(ctx context.Context, bulan, tahun int, jabatan string) (SummaryReport, error) {
	start, end := MonthRange(bulan, tahun)
	rows, err := s.repo.FindRange(ctx, start, end, jabatan)
	if err != nil {
		return SummaryReport{}, err
	}

	workingDays := WorkingDays(bulan, tahun)

	type acc struct {
		nama, nip, jabatan string
		masuk, pulang      int
		terlambat          int
		lastIn, lastOut    string // "YYYY-MM-DD HH:MM:SS", max lexicographic
	}
	byUser := map[string]*acc{}

	for _, r := range rows {
		a, ok := byUser[r.UserID]
		if !ok {
			a = &acc{nama: r.Nama, nip: r.NIP, jabatan: r.Jabatan}
			byUser[r.UserID] = a
		}

		stamp := r.TanggalAbsensi.Format("2006-01-02") + " " + r.WaktuAbsensi
		switch r.TipeAbsensi {
		case attendance.TipeMasuk:
			a.masuk++
			if r.WaktuAbsensi > LateCutoff {
				a.terlambat++
			}
			if stamp > a.lastIn {
				a.lastIn = stamp
			}
		case attendance.TipePulang:
			a.pulang++
			if stamp > a.lastOut {
				a.lastOut = stamp
			}
		}
	}

	data := make([]SummaryRow, 0, len(byUser))
	for userID, a := range byUser {
		hadir := a.masuk
		if a.pulang < hadir {
			hadir = a.pulang
		}

		persentase := 0.0
		if workingDays > 0 {
			persentase = roundTwo(float64(hadir) / float64(workingDays) * 100)
		}

		row := SummaryRow{
			UserID:         userID,
			Nama:           a.nama,
			NIP:            a.nip,
			Jabatan:        a.jabatan,
			TotalMasuk:     a.masuk,
			TotalPulang:    a.pulang,
			Hadir:          hadir,
			TotalHariKerja: workingDays,
			Terlambat:      a.terlambat,
			Persentase:     persentase,
		}
		if a.lastIn != "" {
			v := a.lastIn
			row.CheckInTerakhir = &v
		}
		if a.lastOut != "" {
			v := a.lastOut
			row.CheckOutTerakhir = &v
		}
		data = append(data, row)
	}

	// Urutan stabil: nama lalu user_id, supaya report byte-identical
	sort.Slice(data, func(i, j int) bool {
		if data[i].Nama != data[j].Nama {
			return data[i].Nama < data[j].Nama
		}
		return data[i].UserID < data[j].UserID
	})
	for i := range data {
		data[i].No = i + 1
	}

	return SummaryReport{
		Bulan:          bulan,
		Tahun:          tahun,
		TotalHariKerja: workingDays,
		Data:           data,
	}, nil
}

func (s *service) Monthly(ctx context.Context, actor string, bulan, tahun int, jabatan string) (MonthlyReport, error) {
	start, end := MonthRange(bulan, tahun)
	rows, err := s.repo.FindRange(ctx, start, end, jabatan)
	if err != nil {
		return MonthlyReport{}, err
	}

	type dayKey struct {
		userID  string
		tanggal string
	}
	merged := map[dayKey]*DayRecord{}

	for _, r := range rows {
		key := dayKey{userID: r.UserID, tanggal: r.TanggalAbsensi.Format("2006-01-02")}
		rec, ok := merged[key]
		if !ok {
			rec = &DayRecord{
				UserID:  r.UserID,
				Nama:    r.Nama,
				NIP:     r.NIP,
				Jabatan: r.Jabatan,
				Tanggal: key.tanggal,
			}
			merged[key] = rec
		}

		waktu := r.WaktuAbsensi
		switch r.TipeAbsensi {
		case attendance.TipeMasuk:
			rec.CheckIn = &waktu
			// terlambat hanya dari check-in; hari yang cuma punya
			// check-out tidak pernah dihitung terlambat
			rec.Terlambat = waktu > LateCutoff
		case attendance.TipePulang:
			rec.CheckOut = &waktu
		}
	}

	records := make([]DayRecord, 0, len(merged))
	for _, rec := range merged {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Tanggal != records[j].Tanggal {
			return records[i].Tanggal < records[j].Tanggal
		}
		return records[i].UserID < records[j].UserID
	})

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionViewMonthly,
		Actor:  actor,
		Meta:   map[string]any{"bulan": bulan, "tahun": tahun, "jabatan": jabatan},
	})

	return MonthlyReport{
		Bulan:          bulan,
		Tahun:          tahun,
		TotalHariKerja: WorkingDays(bulan, tahun),
		Records:        records,
	}, nil
}

func (s *service) Dashboard(ctx context.Context, actor string, bulan, tahun int) (DashboardSummary, error) {
	start, end := MonthRange(bulan, tahun)
	rows, err := s.repo.FindRange(ctx, start, end, "")
	if err != nil {
		return DashboardSummary{}, err
	}

	workingDays := WorkingDays(bulan, tahun)
	summary := DashboardSummary{
		Bulan:          bulan,
		Tahun:          tahun,
		TotalHariKerja: workingDays,
		TotalRecords:   len(rows),
	}

	users := map[string]struct{}{}
	var lastIn, lastOut string

	for _, r := range rows {
		users[r.UserID] = struct{}{}

		switch r.Jabatan {
		case attendance.JabatanDosen:
			summary.TotalDosen++
		case attendance.JabatanKaryawan:
			summary.TotalKaryawan++
		}

		stamp := r.TanggalAbsensi.Format("2006-01-02") + " " + r.WaktuAbsensi
		switch r.TipeAbsensi {
		case attendance.TipeMasuk:
			summary.TotalMasuk++
			if r.WaktuAbsensi > LateCutoff {
				summary.TotalTerlambat++
			}
			if stamp > lastIn {
				lastIn = stamp
			}
		case attendance.TipePulang:
			summary.TotalPulang++
			if stamp > lastOut {
				lastOut = stamp
			}
		}
	}

	summary.TotalUsers = len(users)
	hadir := summary.TotalMasuk
	if summary.TotalPulang < hadir {
		hadir = summary.TotalPulang
	}
	if summary.TotalUsers > 0 && workingDays > 0 {
		summary.PersentaseKehadiran = roundTwo(float64(hadir) / float64(summary.TotalUsers*workingDays) * 100)
	}
	if lastIn != "" {
		summary.LastCheckIn = &lastIn
	}
	if lastOut != "" {
		summary.LastCheckOut = &lastOut
	}

	s.sink.Record(ctx, audit.Entry{
		Action: audit.ActionViewDashboard,
		Actor:  actor,
		Meta:   map[string]any{"bulan": bulan, "tahun": tahun},
	})

	return summary, nil
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
