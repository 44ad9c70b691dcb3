package adms_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kampus-absensi/internal/adms"
	attendanceerrors "kampus-absensi/internal/attendance/errors"
	"kampus-absensi/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	pushFn func(ctx context.Context, req adms.PushRequest, clientIP string) (adms.PushResponse, error)
}

func (f *fakeService) Push(ctx context.Context, req adms.PushRequest, clientIP string) (adms.PushResponse, error) {
	return f.pushFn(ctx, req, clientIP)
}

const pushBody = `{
	"cloud_id": "cloud-001",
	"device_id": "FP-GEDUNG-A",
	"user_id": "198802",
	"nama": "Budi Santoso",
	"nip": "198802152015041001",
	"jabatan": "DOSEN",
	"tanggal_absensi": "2026-03-02",
	"waktu_absensi": "07:45:10",
	"tipe_absensi": "MASUK",
	"api_key": "secret-key"
}`

func doPush(h *adms.Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/adms/push", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Push(c)
	return w
}

func TestHandler_Push_Created(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeService{
		pushFn: func(ctx context.Context, req adms.PushRequest, clientIP string) (adms.PushResponse, error) {
			assert.Equal(t, "cloud-001", req.CloudID)
			return adms.PushResponse{AttendanceID: id, Status: adms.StatusProcessed}, nil
		},
	}

	w := doPush(adms.NewHandler(svc), pushBody)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id)
	assert.Contains(t, w.Body.String(), adms.StatusProcessed)
}

func TestHandler_Push_MissingField(t *testing.T) {
	svc := &fakeService{
		pushFn: func(ctx context.Context, req adms.PushRequest, clientIP string) (adms.PushResponse, error) {
			t.Fatal("service tidak boleh terpanggil saat binding gagal")
			return adms.PushResponse{}, nil
		},
	}

	w := doPush(adms.NewHandler(svc), `{"device_id": "FP-GEDUNG-A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Push_AlreadyProcessedConflict(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeService{
		pushFn: func(ctx context.Context, req adms.PushRequest, clientIP string) (adms.PushResponse, error) {
			return adms.PushResponse{
				AttendanceID: id,
				Status:       adms.StatusAlreadyProcessed,
			}, attendanceerrors.ErrAlreadyProcessed
		},
	}

	w := doPush(adms.NewHandler(svc), pushBody)
	assert.Equal(t, http.StatusConflict, w.Code)
	// id record asli ikut di details supaya mesin bisa menganggapnya benign
	assert.Contains(t, w.Body.String(), id)
	assert.Contains(t, w.Body.String(), adms.StatusAlreadyProcessed)
}

func TestHandler_Push_BusinessDuplicateConflict(t *testing.T) {
	svc := &fakeService{
		pushFn: func(ctx context.Context, req adms.PushRequest, clientIP string) (adms.PushResponse, error) {
			return adms.PushResponse{}, attendanceerrors.ErrDuplicateAttendance
		},
	}

	w := doPush(adms.NewHandler(svc), pushBody)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Push_GenericInternalError(t *testing.T) {
	svc := &fakeService{
		pushFn: func(ctx context.Context, req adms.PushRequest, clientIP string) (adms.PushResponse, error) {
			return adms.PushResponse{}, errors.New("connection reset")
		},
	}

	w := doPush(adms.NewHandler(svc), pushBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeInternalError)
}
