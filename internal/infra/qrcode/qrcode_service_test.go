package qrcode

import (
	"testing"

	"pawtrack/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.errorCorrectionLevel, "https://example.com/p")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
			assert.Equal(t, "https://example.com/p/", svc.baseURL)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultBaseURL, svc.baseURL)
}

func TestQRCodeService_GenerateProviderQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}})

	qrBytes, err := svc.GenerateProviderQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseProviderQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://pawtrack.example.com/providers/")
	providerID := uuid.New()

	parsed, err := svc.ParseProviderQR(svc.profileURL(providerID))
	require.NoError(t, err)
	assert.Equal(t, providerID, parsed)

	parsed, err = svc.ParseProviderQR(providerID.String())
	require.NoError(t, err)
	assert.Equal(t, providerID, parsed)
}

func TestQRCodeService_ParseProviderQR_Invalid(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://pawtrack.example.com/providers/")

	_, err := svc.ParseProviderQR("https://elsewhere.example.com/providers/" + uuid.NewString())
	assert.ErrorContains(t, err, "does not point at a provider profile")

	_, err = svc.ParseProviderQR("https://pawtrack.example.com/providers/not-a-uuid")
	assert.ErrorContains(t, err, "failed to parse provider ID")
}
