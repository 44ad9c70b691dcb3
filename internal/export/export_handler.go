package export

import (
	"net/http"
	"strconv"
	"strings"

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

func (h *Handler) Export(c *gin.Context) {
	bulan, err := strconv.Atoi(c.Query("bulan"))
	if err != nil || bulan < 1 || bulan > 12 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Bulan dan tahun diperlukan", nil)
		return
	}
	tahun, err := strconv.Atoi(c.Query("tahun"))
	if err != nil || tahun < 2000 || tahun > 2100 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Bulan dan tahun diperlukan", nil)
		return
	}
	jabatan := strings.ToUpper(strings.TrimSpace(c.Query("jabatan")))
	format := Format(c.Param("format"))

	res, err := h.service.ExportRecords(c.Request.Context(), c.GetString("admin_id"), bulan, tahun, jabatan, format)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, res.ContentType, res.Bytes)
}
