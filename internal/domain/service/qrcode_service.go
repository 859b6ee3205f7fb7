package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for provider share QR codes
type QRCodeService interface {
	// GenerateProviderQR renders a PNG QR code pointing at the provider profile
	GenerateProviderQR(providerID uuid.UUID) ([]byte, error)

	// ParseProviderQR extracts the provider ID from scanned QR content
	ParseProviderQR(qrData string) (uuid.UUID, error)
}
