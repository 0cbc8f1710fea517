package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

// CertificateService renders the scannable authenticity code for a product.
// The encoded content is the canonical public certificate URL for the id.
type CertificateService struct {
	baseURL   string
	artifacts *ArtifactService
}

// NewCertificateService constructs a CertificateService. baseURL is the
// configured public base URL; it is never hardcoded here.
func NewCertificateService(baseURL string, artifacts *ArtifactService) *CertificateService {
	return &CertificateService{baseURL: baseURL, artifacts: artifacts}
}

// CertificateURL returns the canonical certificate page URL for a product id.
func (s *CertificateService) CertificateURL(productID string) string {
	return fmt.Sprintf("%s/certificate/%s", s.baseURL, productID)
}

// Encode generates the QR PNG for a product id and persists it as an
// artifact keyed by the id. Encoding is idempotent per id: re-invocation
// overwrites the same file. It returns the stored artifact filename.
func (s *CertificateService) Encode(productID string) (string, error) {
	certURL := s.CertificateURL(productID)

	png, err := qrcode.Encode(certURL, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode certificate QR: %w", err)
	}

	filename, err := s.artifacts.SaveQR(productID, png)
	if err != nil {
		return "", err
	}
	log.Debug().Str("product_id", productID).Str("url", certURL).Msg("certificate QR generated")
	return filename, nil
}
