package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://shop.example.com", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService("https://shop.example.com/", 256, "M")

	qrBytes, err := service.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ProductURL(t *testing.T) {
	service := NewQRCodeService("https://shop.example.com/", 256, "M").(*qrcodeService)
	productID := uuid.New()

	assert.Equal(t, "https://shop.example.com/products/"+productID.String(), service.ProductURL(productID))
}

func TestNew_FromConfig(t *testing.T) {
	service := New(Params{Config: &config.Config{
		Site:   config.SiteConfig{PublicBaseURL: "https://shop.example.com"},
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}}).(*qrcodeService)

	assert.Equal(t, 128, service.size)
	assert.Equal(t, "https://shop.example.com", service.baseURL)
}
