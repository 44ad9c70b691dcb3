package adms

import (
	"strconv"
	"strings"
	"time"

	"kampus-absensi/internal/attendance"
	"kampus-absensi/internal/shared/apperror"
)

// PushRequest adalah payload mentah dari mesin fingerprint. Field keamanan
// (api_key, timestamp, signature, sn) ikut di body, mengikuti protokol ADMS.
type PushRequest struct {
	CloudID        string `json:"cloud_id" binding:"required,max=100"`
	DeviceID       string `json:"device_id" binding:"required,max=50"`
	UserID         string `json:"user_id" binding:"required,max=50"`
	Nama           string `json:"nama" binding:"required,max=255"`
	NIP            string `json:"nip" binding:"required,max=50"`
	Jabatan        string `json:"jabatan" binding:"required"`
	TanggalAbsensi string `json:"tanggal_absensi" binding:"required"`
	WaktuAbsensi   string `json:"waktu_absensi" binding:"required"`
	TipeAbsensi    string `json:"tipe_absensi" binding:"required"`
	Verifikasi     string `json:"verifikasi"`
	APIKey         string `json:"api_key" binding:"required"`
	Timestamp      string `json:"timestamp"`
	Signature      string `json:"signature"`
	SN             string `json:"sn"`
}

type PushResponse struct {
	AttendanceID string `json:"attendance_id"`
	Status       string `json:"status"`
}

const (
	StatusProcessed        = "processed"
	StatusAlreadyProcessed = "already_processed"
)

// normalized adalah hasil validasi schema: enum sudah dinormalisasi dan
// tanggal/waktu sudah terparse. Tidak ada logika bisnis yang boleh menyentuh
// field string mentah setelah tahap ini.
type normalized struct {
	Jabatan        string
	TipeAbsensi    string
	Verifikasi     string
	TanggalAbsensi time.Time
	WaktuAbsensi   string
}

// validateSchema menolak enum di luar himpunan tertutup dan format
// tanggal/waktu yang rusak. Berjalan sebelum lookup registry apa pun.
func (r *PushRequest) validateSchema() (normalized, error) {
	var n normalized

	n.Jabatan = strings.ToUpper(strings.TrimSpace(r.Jabatan))
	if !attendance.ValidJabatan(n.Jabatan) {
		return n, apperror.InvalidField("Jabatan")
	}

	n.TipeAbsensi = strings.ToUpper(strings.TrimSpace(r.TipeAbsensi))
	if !attendance.ValidTipeAbsensi(n.TipeAbsensi) {
		return n, apperror.InvalidField("Tipe Absensi")
	}

	tanggal, err := time.Parse("2006-01-02", r.TanggalAbsensi)
	if err != nil {
		return n, apperror.InvalidField("Tanggal Absensi")
	}
	n.TanggalAbsensi = tanggal

	waktu, err := time.Parse("15:04:05", r.WaktuAbsensi)
	if err != nil {
		return n, apperror.InvalidField("Waktu Absensi")
	}
	n.WaktuAbsensi = waktu.Format("15:04:05")

	n.Verifikasi = strings.TrimSpace(r.Verifikasi)
	if n.Verifikasi == "" {
		n.Verifikasi = attendance.VerifikasiDefault
	}

	return n, nil
}

// parseTimestamp menerima RFC3339, "YYYY-MM-DD HH:MM:SS", atau unix epoch
// (detik maupun milidetik) — firmware mesin tidak seragam.
func parseTimestamp(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
		return t, nil
	}
	epoch, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if epoch > 1e12 {
		return time.UnixMilli(epoch), nil
	}
	return time.Unix(epoch, 0), nil
}
