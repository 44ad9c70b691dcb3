package adms

import (
	"context"
	"errors"
	"time"

	admserrors "kampus-absensi/internal/adms/errors"
	"kampus-absensi/internal/audit"
	"kampus-absensi/internal/device"
	deviceerrors "kampus-absensi/internal/device/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultReplayTolerance = 5 * time.Minute

// Rejection classes, dicatat di audit log untuk analisis intrusi.
const (
	rejectSchema    = "SCHEMA"
	rejectIP        = "IP_BLOCKED"
	rejectAuth      = "DEVICE_AUTH"
	rejectSerial    = "SERIAL_MISMATCH"
	rejectReplay    = "REPLAY"
	rejectSignature = "SIGNATURE"
)

type GuardConfig struct {
	// AllowedIPs kosong = allowlist nonaktif.
	AllowedIPs []string
	// DevMode melewati pemeriksaan IP (konfigurasi non-produksi eksplisit).
	DevMode         bool
	ReplayTolerance time.Duration
}

// Guard adalah pipeline validasi ingestion: terurut dan short-circuit.
// Urutan penting — tahap belakangan mengandalkan tahap sebelumnya (misal
// pemeriksaan signature butuh secret perangkat yang sudah resolved).
// Tidak ada tahap yang menulis ke ledger; semua penolakan bebas side effect
// kecuali logging.
type Guard struct {
	devices device.Repository
	cfg     GuardConfig
	sink    audit.Sink
	logger  *zap.Logger
	now     func() time.Time
}

func NewGuard(devices device.Repository, cfg GuardConfig, sink audit.Sink, logger *zap.Logger) *Guard {
	if cfg.ReplayTolerance <= 0 {
		cfg.ReplayTolerance = DefaultReplayTolerance
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Guard{
		devices: devices,
		cfg:     cfg,
		sink:    sink,
		logger:  logger.Named("adms.guard"),
		now:     time.Now,
	}
}

// Check menjalankan seluruh tahapan guard dan mengembalikan perangkat yang
// sudah terautentikasi plus payload ternormalisasi.
func (g *Guard) Check(ctx context.Context, req PushRequest, clientIP string) (*device.Device, normalized, error) {
	// 1. Schema / enum — penolakan murah sebelum menyentuh registry.
	n, err := req.validateSchema()
	if err != nil {
		g.reject(ctx, rejectSchema, req, "", clientIP, map[string]any{"error": err.Error()})
		return nil, n, err
	}

	// 2. IP allowlist (opsional, di-gate konfigurasi).
	if !g.ipAllowed(clientIP) {
		g.reject(ctx, rejectIP, req, "", clientIP, nil)
		return nil, n, admserrors.ErrIPNotAllowed
	}

	// 3. Autentikasi perangkat lewat shared secret. Unknown, nonaktif, dan
	// key salah sengaja tidak bisa dibedakan oleh caller.
	dev, err := g.devices.FindActiveByAPIKey(ctx, req.APIKey)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, n, err
		}
		g.reject(ctx, rejectAuth, req, "", clientIP, nil)
		return nil, n, deviceerrors.ErrInvalidDevice
	}

	// 4. Serial cross-check: api_key benar tapi serial salah berarti unit
	// ter-compromise atau salah provisioning — tetap ditolak.
	if req.SN != "" && dev.SerialNumber != req.SN {
		g.reject(ctx, rejectSerial, req, dev.DeviceID, clientIP, map[string]any{
			"expected": dev.SerialNumber,
			"received": req.SN,
		})
		return nil, n, admserrors.ErrDeviceValidation
	}

	// 5. Replay window: membatasi nilai request yang berhasil di-capture.
	if req.Timestamp != "" {
		reqTime, err := parseTimestamp(req.Timestamp)
		if err != nil {
			g.reject(ctx, rejectReplay, req, dev.DeviceID, clientIP, map[string]any{"timestamp": req.Timestamp})
			return nil, n, admserrors.ErrStaleRequest
		}
		skew := g.now().Sub(reqTime)
		if skew < 0 {
			skew = -skew
		}
		if skew > g.cfg.ReplayTolerance {
			g.reject(ctx, rejectReplay, req, dev.DeviceID, clientIP, map[string]any{
				"timestamp": req.Timestamp,
				"skew_ms":   skew.Milliseconds(),
			})
			return nil, n, admserrors.ErrStaleRequest
		}
	}

	// 6. Signature HMAC (opsional, bila perangkat mengirimnya).
	if req.Signature != "" && !verifySignature(req, dev.APIKey) {
		g.reject(ctx, rejectSignature, req, dev.DeviceID, clientIP, nil)
		return nil, n, admserrors.ErrDeviceValidation
	}

	return dev, n, nil
}

func (g *Guard) ipAllowed(clientIP string) bool {
	if g.cfg.DevMode || len(g.cfg.AllowedIPs) == 0 {
		return true
	}
	for _, ip := range g.cfg.AllowedIPs {
		if ip == clientIP {
			return true
		}
	}
	return false
}

func (g *Guard) reject(ctx context.Context, class string, req PushRequest, deviceID, clientIP string, meta map[string]any) {
	if meta == nil {
		meta = map[string]any{}
	}
	meta["class"] = class
	meta["ip"] = clientIP
	meta["cloud_id"] = req.CloudID
	if deviceID != "" {
		meta["device_id"] = deviceID
	}

	g.logger.Warn("adms push rejected",
		zap.String("class", class),
		zap.String("ip", clientIP),
		zap.String("device_id", deviceID),
		zap.String("cloud_id", req.CloudID),
	)

	g.sink.Record(ctx, audit.Entry{
		Action: audit.ActionPushRejected,
		Actor:  deviceID,
		Meta:   meta,
	})
}
