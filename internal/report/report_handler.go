package report

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"kampus-absensi/internal/shared/apperror"
	"kampus-absensi/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// parsePeriod membaca bulan/tahun dari query. required=false memberi default
// bulan berjalan (dipakai dashboard).
func parsePeriod(c *gin.Context, required bool) (int, int, bool) {
	bulanStr := c.Query("bulan")
	tahunStr := c.Query("tahun")

	if bulanStr == "" || tahunStr == "" {
		if required {
			response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Bulan dan tahun diperlukan", nil)
			return 0, 0, false
		}
		now := time.Now()
		return int(now.Month()), now.Year(), true
	}

	bulan, err := strconv.Atoi(bulanStr)
	if err != nil || bulan < 1 || bulan > 12 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Bulan harus 1-12", nil)
		return 0, 0, false
	}
	tahun, err := strconv.Atoi(tahunStr)
	if err != nil || tahun < 2000 || tahun > 2100 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Tahun tidak valid", nil)
		return 0, 0, false
	}
	return bulan, tahun, true
}

func (h *Handler) Summary(c *gin.Context) {
	bulan, tahun, ok := parsePeriod(c, true)
	if !ok {
		return
	}
	jabatan := strings.ToUpper(strings.TrimSpace(c.Query("jabatan")))

	resp, err := h.service.Summary(c.Request.Context(), c.GetString("admin_id"), bulan, tahun, jabatan)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Monthly(c *gin.Context) {
	bulan, tahun, ok := parsePeriod(c, true)
	if !ok {
		return
	}
	jabatan := strings.ToUpper(strings.TrimSpace(c.Query("jabatan")))

	resp, err := h.service.Monthly(c.Request.Context(), c.GetString("admin_id"), bulan, tahun, jabatan)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Dashboard(c *gin.Context) {
	bulan, tahun, ok := parsePeriod(c, false)
	if !ok {
		return
	}

	resp, err := h.service.Dashboard(c.Request.Context(), c.GetString("admin_id"), bulan, tahun)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
