package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	TipeMasuk  = "MASUK"
	TipePulang = "PULANG"

	JabatanDosen    = "DOSEN"
	JabatanKaryawan = "KARYAWAN"

	// VerifikasiDefault dipakai ketika perangkat tidak mengirim metode capture.
	VerifikasiDefault = "fingerprint"
)

// Attendance adalah satu event absensi dari mesin fingerprint. Baris tidak
// pernah di-update setelah insert; penghapusan hanya lewat soft delete.
// Keunikan cloud_id dan (user_id, tanggal, tipe) atas baris non-deleted
// ditegakkan oleh partial unique index di level schema (lihat migrations).
type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CloudID        string     `gorm:"column:cloud_id;type:varchar(100);not null"`
	DeviceID       string     `gorm:"column:device_id;type:varchar(50);not null;index"`
	UserID         string     `gorm:"column:user_id;type:varchar(50);not null;index"`
	Nama           string     `gorm:"column:nama;type:varchar(255);not null"`
	NIP            string     `gorm:"column:nip;type:varchar(50);not null"`
	Jabatan        string     `gorm:"column:jabatan;type:varchar(20);not null;index"`
	TanggalAbsensi time.Time  `gorm:"column:tanggal_absensi;type:date;not null;index"`
	// WaktuAbsensi disimpan "HH:MM:SS"; lebar tetap sehingga perbandingan
	// leksikografis sama dengan perbandingan waktu.
	WaktuAbsensi  string     `gorm:"column:waktu_absensi;type:varchar(8);not null"`
	TipeAbsensi   string     `gorm:"column:tipe_absensi;type:varchar(10);not null;index"`
	Verifikasi    string     `gorm:"column:verifikasi;type:varchar(100);not null;default:fingerprint"`
	TanggalUpload time.Time  `gorm:"column:tanggal_upload;type:timestamptz;not null"`
	IsDeleted     bool       `gorm:"column:is_deleted;not null;default:false;index"`
	DeletedBy     *string    `gorm:"column:deleted_by;type:varchar(50)"`
	DeletedAt     *time.Time `gorm:"column:deleted_at;type:timestamptz"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

func ValidTipeAbsensi(v string) bool {
	return v == TipeMasuk || v == TipePulang
}

func ValidJabatan(v string) bool {
	return v == JabatanDosen || v == JabatanKaryawan
}
