package events

import "time"

const AttendanceRecordedTopic = "absensi.attendance.recorded.v1"

type AttendanceRecordedEvent struct {
	EventType      string    `json:"event_type"`
	AttendanceID   string    `json:"attendance_id"`
	CloudID        string    `json:"cloud_id"`
	DeviceID       string    `json:"device_id"`
	UserID         string    `json:"user_id"`
	Jabatan        string    `json:"jabatan"`
	TanggalAbsensi string    `json:"tanggal_absensi"`
	WaktuAbsensi   string    `json:"waktu_absensi"`
	TipeAbsensi    string    `json:"tipe_absensi"`
	OccurredAt     time.Time `json:"occurred_at"`
}
