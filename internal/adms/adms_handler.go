package adms

import (
	"errors"
	"net/http"
	"time"

	attendanceerrors "kampus-absensi/internal/attendance/errors"
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

func (h *Handler) Push(c *gin.Context) {
	var req PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Push(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		// Retransmisi cloud_id membawa id record aslinya di details supaya
		// perangkat bisa memperlakukannya sebagai benign.
		if errors.Is(err, attendanceerrors.ErrAlreadyProcessed) && resp.AttendanceID != "" {
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, resp)
			return
		}
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// Health adalah liveness check untuk mesin ADMS, tanpa autentikasi.
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"service":   "kampus-absensi-adms",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil)
}
