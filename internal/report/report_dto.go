package report

// SummaryRow adalah rekap per user untuk satu periode. Derived, tidak pernah
// dipersist; dihitung ulang pada setiap request.
type SummaryRow struct {
	No               int     `json:"no"`
	UserID           string  `json:"user_id"`
	Nama             string  `json:"nama"`
	NIP              string  `json:"nip"`
	Jabatan          string  `json:"jabatan"`
	TotalMasuk       int     `json:"total_masuk"`
	TotalPulang      int     `json:"total_pulang"`
	Hadir            int     `json:"hadir"`
	TotalHariKerja   int     `json:"total_hari_kerja"`
	Terlambat        int     `json:"terlambat"`
	Persentase       float64 `json:"persentase"`
	CheckInTerakhir  *string `json:"check_in_terakhir"`
	CheckOutTerakhir *string `json:"check_out_terakhir"`
}

type SummaryReport struct {
	Bulan          int          `json:"bulan"`
	Tahun          int          `json:"tahun"`
	TotalHariKerja int          `json:"total_hari_kerja"`
	Data           []SummaryRow `json:"data"`
}

// DayRecord adalah satu baris laporan harian: pasangan check-in/check-out
// hasil merge, bukan daftar event mentah. Salah satu sisi boleh kosong.
type DayRecord struct {
	UserID    string  `json:"user_id"`
	Nama      string  `json:"nama"`
	NIP       string  `json:"nip"`
	Jabatan   string  `json:"jabatan"`
	Tanggal   string  `json:"tanggal"`
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
	Terlambat bool    `json:"terlambat"`
}

type MonthlyReport struct {
	Bulan          int         `json:"bulan"`
	Tahun          int         `json:"tahun"`
	TotalHariKerja int         `json:"total_hari_kerja"`
	Records        []DayRecord `json:"records"`
}

type DashboardSummary struct {
	Bulan               int     `json:"bulan"`
	Tahun               int     `json:"tahun"`
	TotalHariKerja      int     `json:"total_hari_kerja"`
	TotalRecords        int     `json:"total_records"`
	TotalUsers          int     `json:"total_users"`
	TotalMasuk          int     `json:"total_masuk"`
	TotalPulang         int     `json:"total_pulang"`
	TotalDosen          int     `json:"total_dosen"`
	TotalKaryawan       int     `json:"total_karyawan"`
	TotalTerlambat      int     `json:"total_terlambat"`
	PersentaseKehadiran float64 `json:"persentase_kehadiran"`
	LastCheckIn         *string `json:"last_check_in"`
	LastCheckOut        *string `json:"last_check_out"`
}
