package attendance

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

func (h *Handler) GetAll(c *gin.Context) {
	h.list(c, "")
}

// GetDosen dan GetKaryawan adalah view per kategori dari daftar yang sama.
func (h *Handler) GetDosen(c *gin.Context) {
	h.list(c, JabatanDosen)
}

func (h *Handler) GetKaryawan(c *gin.Context) {
	h.list(c, JabatanKaryawan)
}

func (h *Handler) list(c *gin.Context, forcedJabatan string) {
	actor := c.GetString("admin_id")

	filter := ListFilter{
		UserID:      c.Query("user_id"),
		DeviceID:    c.Query("device_id"),
		Jabatan:     strings.ToUpper(strings.TrimSpace(c.Query("jabatan"))),
		TipeAbsensi: strings.ToUpper(strings.TrimSpace(c.Query("tipe_absensi"))),
	}
	if forcedJabatan != "" {
		filter.Jabatan = forcedJabatan
	}

	if v := c.Query("tanggal_mulai"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "tanggal_mulai harus berformat YYYY-MM-DD", nil)
			return
		}
		filter.TanggalMulai = &t
	}
	if v := c.Query("tanggal_akhir"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "tanggal_akhir harus berformat YYYY-MM-DD", nil)
			return
		}
		filter.TanggalAkhir = &t
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 {
		limit = 50
	}

	rows, total, err := h.service.GetAll(c.Request.Context(), actor, filter, page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, limit)
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) GetDeleted(c *gin.Context) {
	resp, err := h.service.GetDeleted(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	actor := c.GetString("admin_id")

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Attendance record deleted successfully"}, nil)
}
