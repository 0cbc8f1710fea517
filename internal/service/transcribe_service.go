package service

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultTranscript is used when a submission carries neither transcript
// text nor an audio recording. It deliberately avoids the "my name is"
// phrase so that downstream name extraction falls back to the generic
// artisan name.
const defaultTranscript = "This product is made by a local artisan using traditional handcraft techniques passed down through generations."

// TranscribeService resolves the effective spoken text for a submission.
// It is a deterministic stand-in for a real speech-to-text engine; a real
// engine is a drop-in replacement behind the same signature.
type TranscribeService struct{}

// NewTranscribeService constructs a TranscribeService.
func NewTranscribeService() *TranscribeService {
	return &TranscribeService{}
}

// Resolve returns the transcript for a submission. Explicit text wins when
// non-blank; otherwise a placeholder is derived from the stored audio
// filename; otherwise a fixed default is returned. Resolve is total and
// never returns an empty string.
func (s *TranscribeService) Resolve(explicitText, audioRef string) string {
	if t := strings.TrimSpace(explicitText); t != "" {
		return t
	}
	if audioRef != "" {
		stem := strings.TrimSuffix(audioRef, filepath.Ext(audioRef))
		// A fresh Caser per call: cases.Caser carries transformer state and
		// is not safe for concurrent use across request goroutines.
		derived := cases.Title(language.Und).String(strings.ReplaceAll(stem, "_", " "))
		return "My name is " + derived + ". I make this product with traditional techniques learned from my family."
	}
	return defaultTranscript
}
