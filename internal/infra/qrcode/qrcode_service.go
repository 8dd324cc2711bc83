package qrcode

import (
	"strings"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// Params holds dependencies for the QR code service, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the product QR code service from configuration
func New(params Params) service.QRCodeService {
	var size int
	var level string
	if params.Config.QRCode != nil {
		size = params.Config.QRCode.Size
		level = params.Config.QRCode.ErrorCorrectionLevel
	}

	return NewQRCodeService(params.Config.Site.PublicBaseURL, size, level)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(publicBaseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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

	return &qrcodeService{
		baseURL:              strings.TrimRight(publicBaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ProductURL returns the public page URL a product QR code encodes
func (s *qrcodeService) ProductURL(productID uuid.UUID) string {
	return s.baseURL + constants.ProductPath(productID.String())
}

// GenerateProductQR returns a PNG encoding the product's public page URL
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

