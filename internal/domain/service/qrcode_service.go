package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for product share QR codes
type QRCodeService interface {
	// GenerateProductQR returns a PNG encoding the product's public page URL
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
