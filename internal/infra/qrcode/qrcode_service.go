package qrcode

import (
	"net/url"
	"path"
	"strings"

	"pawtrack/config"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://pawtrack.app/providers/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from config, falling back to defaults.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateProviderQR renders the provider profile URL as a PNG.
func (s *qrcodeService) GenerateProviderQR(providerID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.profileURL(providerID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProviderQR accepts either a profile URL or a bare provider ID.
func (s *qrcodeService) ParseProviderQR(qrData string) (uuid.UUID, error) {
	raw := strings.TrimSpace(qrData)

	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	if !strings.HasPrefix(raw, s.baseURL) {
		return uuid.Nil, errors.Errorf("QR code does not point at a provider profile: %s", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}

	providerID, err := uuid.Parse(path.Base(u.Path))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse provider ID")
	}

	return providerID, nil
}

func (s *qrcodeService) profileURL(providerID uuid.UUID) string {
	return s.baseURL + providerID.String()
}
