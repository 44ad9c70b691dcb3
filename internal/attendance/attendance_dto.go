package attendance

import "time"

type ListFilter struct {
	UserID       string
	DeviceID     string
	Jabatan      string
	TipeAbsensi  string
	TanggalMulai *time.Time
	TanggalAkhir *time.Time
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	CloudID        string  `json:"cloud_id"`
	DeviceID       string  `json:"device_id"`
	UserID         string  `json:"user_id"`
	Nama           string  `json:"nama"`
	NIP            string  `json:"nip"`
	Jabatan        string  `json:"jabatan"`
	TanggalAbsensi string  `json:"tanggal_absensi"`
	WaktuAbsensi   string  `json:"waktu_absensi"`
	TipeAbsensi    string  `json:"tipe_absensi"`
	Verifikasi     string  `json:"verifikasi"`
	TanggalUpload  string  `json:"tanggal_upload"`
	IsDeleted      bool    `json:"is_deleted,omitempty"`
	DeletedBy      *string `json:"deleted_by,omitempty"`
	DeletedAt      *string `json:"deleted_at,omitempty"`
}

func MapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		CloudID:        a.CloudID,
		DeviceID:       a.DeviceID,
		UserID:         a.UserID,
		Nama:           a.Nama,
		NIP:            a.NIP,
		Jabatan:        a.Jabatan,
		TanggalAbsensi: a.TanggalAbsensi.Format("2006-01-02"),
		WaktuAbsensi:   a.WaktuAbsensi,
		TipeAbsensi:    a.TipeAbsensi,
		Verifikasi:     a.Verifikasi,
		TanggalUpload:  a.TanggalUpload.UTC().Format(time.RFC3339),
		IsDeleted:      a.IsDeleted,
		DeletedBy:      a.DeletedBy,
	}
	if a.DeletedAt != nil {
		v := a.DeletedAt.UTC().Format(time.RFC3339)
		resp.DeletedAt = &v
	}
	return resp
}
