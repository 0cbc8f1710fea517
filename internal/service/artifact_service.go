package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/CraftLedger/craft_api/internal/config"
	"github.com/CraftLedger/craft_api/internal/utils"
)

// ArtifactService stores binary artifacts (uploaded images and audio,
// generated QR codes) on the local filesystem. Each upload is stored under
// a collision-resistant filename, so concurrent writes need no coordination.
type ArtifactService struct {
	uploadsDir string
	imagesDir  string
	audioDir   string
	qrDir      string
}

// NewArtifactService creates the artifact store rooted at the configured
// data directory and bootstraps the category directories.
func NewArtifactService(cfg *config.StorageConfig) (*ArtifactService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config is nil")
	}

	uploads := filepath.Join(cfg.DataDir, "uploads")
	s := &ArtifactService{
		uploadsDir: uploads,
		imagesDir:  filepath.Join(uploads, "images"),
		audioDir:   filepath.Join(uploads, "audio"),
		qrDir:      filepath.Join(uploads, "qrcodes"),
	}

	for _, dir := range []string{s.imagesDir, s.audioDir, s.qrDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
		}
	}
	log.Debug().Str("uploads_dir", uploads).Msg("artifact directories ready")
	return s, nil
}

// SaveImage stores an uploaded image and returns the stored filename.
func (s *ArtifactService) SaveImage(data []byte, originalFilename string) (string, error) {
	return s.save(s.imagesDir, utils.ArtifactName(originalFilename), data)
}

// SaveAudio stores an uploaded audio file and returns the stored filename.
func (s *ArtifactService) SaveAudio(data []byte, originalFilename string) (string, error) {
	return s.save(s.audioDir, utils.ArtifactName(originalFilename), data)
}

// SaveQR stores the QR PNG for a product id and returns the stored filename.
// Re-invocation for the same id overwrites the same file.
func (s *ArtifactService) SaveQR(productID string, png []byte) (string, error) {
	return s.save(s.qrDir, productID+".png", png)
}

// UploadsDir returns the root uploads directory for static file serving.
func (s *ArtifactService) UploadsDir() string {
	return s.uploadsDir
}

func (s *ArtifactService) save(dir, filename string, data []byte) (string, error) {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	return filename, nil
}
