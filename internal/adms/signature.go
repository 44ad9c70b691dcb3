package adms

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
)

// canonicalPayload menserialisasi payload secara deterministik: JSON object
// dengan key terurut (encoding/json mengurutkan key map), semua field kecuali
// signature, field kosong dibuang. Mesin dan server harus menghitung HMAC
// atas byte yang identik.
func canonicalPayload(req PushRequest) []byte {
	fields := map[string]string{
		"cloud_id":        req.CloudID,
		"device_id":       req.DeviceID,
		"user_id":         req.UserID,
		"nama":            req.Nama,
		"nip":             req.NIP,
		"jabatan":         req.Jabatan,
		"tanggal_absensi": req.TanggalAbsensi,
		"waktu_absensi":   req.WaktuAbsensi,
		"tipe_absensi":    req.TipeAbsensi,
		"verifikasi":      req.Verifikasi,
		"api_key":         req.APIKey,
		"timestamp":       req.Timestamp,
		"sn":              req.SN,
	}
	for k, v := range fields {
		if v == "" {
			delete(fields, k)
		}
	}

	// map[string]string tidak pernah gagal di-marshal
	b, _ := json.Marshal(fields)
	return b
}

// ComputeSignature menghitung HMAC-SHA256 (hex) atas canonical payload,
// dikunci dengan api_key perangkat. Diekspor untuk dipakai test dan tooling
// provisioning.
func ComputeSignature(req PushRequest, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(canonicalPayload(req))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature membandingkan signature secara constant-time.
func verifySignature(req PushRequest, secret string) bool {
	expected := ComputeSignature(req, secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.Signature)) == 1
}
