package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kampus-absensi/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	summaryFn   func(ctx context.Context, actor string, bulan, tahun int, jabatan string) (report.SummaryReport, error)
	monthlyFn   func(ctx context.Context, actor string, bulan, tahun int, jabatan string) (report.MonthlyReport, error)
	dashboardFn func(ctx context.Context, actor string, bulan, tahun int) (report.DashboardSummary, error)
}

func (f *fakeService) Summary(ctx context.Context, actor string, bulan, tahun int, jabatan string) (report.SummaryReport, error) {
	return f.summaryFn(ctx, actor, bulan, tahun, jabatan)
}
func (f *fakeService) Monthly(ctx context.Context, actor string, bulan, tahun int, jabatan string) (report.MonthlyReport, error) {
	return f.monthlyFn(ctx, actor, bulan, tahun, jabatan)
}
func (f *fakeService) Dashboard(ctx context.Context, actor string, bulan, tahun int) (report.DashboardSummary, error) {
	return f.dashboardFn(ctx, actor, bulan, tahun)
}

func doGet(h gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("admin_id", "admin-1")
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	h(c)
	return w
}

func TestHandler_Summary(t *testing.T) {
	svc := &fakeService{
		summaryFn: func(ctx context.Context, actor string, bulan, tahun int, jabatan string) (report.SummaryReport, error) {
			assert.Equal(t, "admin-1", actor)
			assert.Equal(t, 6, bulan)
			assert.Equal(t, 2026, tahun)
			assert.Equal(t, "DOSEN", jabatan)
			return report.SummaryReport{Bulan: bulan, Tahun: tahun, TotalHariKerja: 22}, nil
		},
	}

	h := report.NewHandler(svc)
	w := doGet(h.Summary, "/reports/rekap?bulan=6&tahun=2026&jabatan=dosen")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_hari_kerja":22`)
}

func TestHandler_Summary_MissingPeriod(t *testing.T) {
	svc := &fakeService{
		summaryFn: func(ctx context.Context, actor string, bulan, tahun int, jabatan string) (report.SummaryReport, error) {
			t.Fatal("service tidak boleh terpanggil tanpa periode")
			return report.SummaryReport{}, nil
		},
	}

	h := report.NewHandler(svc)
	w := doGet(h.Summary, "/reports/rekap")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Summary_InvalidBulan(t *testing.T) {
	svc := &fakeService{}
	h := report.NewHandler(svc)
	w := doGet(h.Summary, "/reports/rekap?bulan=13&tahun=2026")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Dashboard_DefaultsToCurrentMonth(t *testing.T) {
	var gotBulan, gotTahun int
	svc := &fakeService{
		dashboardFn: func(ctx context.Context, actor string, bulan, tahun int) (report.DashboardSummary, error) {
			gotBulan, gotTahun = bulan, tahun
			return report.DashboardSummary{Bulan: bulan, Tahun: tahun}, nil
		},
	}

	h := report.NewHandler(svc)
	w := doGet(h.Dashboard, "/dashboard/summary")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, gotBulan)
	assert.NotZero(t, gotTahun)
}
