package report

import "time"

// LateCutoff adalah batas keterlambatan organisasi, tetap 08:00:00.
// Perbandingan string aman karena waktu disimpan "HH:MM:SS" lebar tetap.
const LateCutoff = "08:00:00"

// WorkingDays menghitung jumlah hari kerja (Senin–Jumat) dalam satu bulan.
// Hari libur nasional tidak dimodelkan, hanya akhir pekan.
func WorkingDays(month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	workingDays := 0
	for day := 1; day <= daysInMonth; day++ {
		wd := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			workingDays++
		}
	}
	return workingDays
}

// MonthRange mengembalikan tanggal pertama dan terakhir bulan tersebut.
func MonthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
