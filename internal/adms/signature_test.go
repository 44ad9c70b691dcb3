package adms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature_Deterministic(t *testing.T) {
	req := validPush("secret-key")
	first := ComputeSignature(req, "secret-key")
	second := ComputeSignature(req, "secret-key")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex dari SHA-256
}

func TestComputeSignature_EmptyFieldsExcluded(t *testing.T) {
	req := validPush("secret-key")
	req.SN = ""
	req.Timestamp = ""
	withEmpty := ComputeSignature(req, "secret-key")

	// Field kosong tidak boleh mengubah canonical payload.
	req2 := validPush("secret-key")
	assert.Equal(t, withEmpty, ComputeSignature(req2, "secret-key"))

	req2.SN = "SN-001122"
	assert.NotEqual(t, withEmpty, ComputeSignature(req2, "secret-key"))
}

func TestComputeSignature_SignatureFieldIgnored(t *testing.T) {
	req := validPush("secret-key")
	base := ComputeSignature(req, "secret-key")

	req.Signature = "apapun"
	assert.Equal(t, base, ComputeSignature(req, "secret-key"))
}

func TestComputeSignature_KeyedBySecret(t *testing.T) {
	req := validPush("secret-key")
	assert.NotEqual(t,
		ComputeSignature(req, "secret-key"),
		ComputeSignature(req, "secret-lain"),
	)
}

func TestVerifySignature(t *testing.T) {
	req := validPush("secret-key")
	req.Signature = ComputeSignature(req, "secret-key")
	assert.True(t, verifySignature(req, "secret-key"))

	req.Signature = "0000"
	assert.False(t, verifySignature(req, "secret-key"))
}
