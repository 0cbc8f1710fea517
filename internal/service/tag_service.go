package service

import (
	"path/filepath"
	"strings"
)

// tagVocabulary is the fixed ordered keyword list used for filename-based
// tag inference. Order matters: matches are collected in vocabulary order.
var tagVocabulary = []string{
	"saree", "shawl", "pottery", "mug", "bottle", "wood",
	"carving", "painting", "handloom", "jewelry", "bangle",
}

// defaultTags is returned when neither explicit tags nor the image filename
// yield anything.
var defaultTags = []string{"handmade", "traditional"}

// TagService resolves the normalized tag set for a submission. The filename
// heuristic is a deliberately simple stand-in for a real vision model; a
// real classifier can replace it behind the same signature.
type TagService struct{}

// NewTagService constructs a TagService.
func NewTagService() *TagService {
	return &TagService{}
}

// Classify resolves tags for a submission. Explicit comma-separated tags win
// (trimmed, lower-cased, empties dropped, order and duplicates preserved);
// otherwise the image filename stem is scanned against the fixed vocabulary;
// otherwise the default set is returned. The result is never empty.
func (s *TagService) Classify(explicitTags, imageRef string) []string {
	if explicitTags != "" {
		parts := []string{}
		for _, p := range strings.Split(explicitTags, ",") {
			if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}

	if imageRef != "" {
		stem := strings.ToLower(strings.TrimSuffix(imageRef, filepath.Ext(imageRef)))
		guesses := []string{}
		for _, key := range tagVocabulary {
			if strings.Contains(stem, key) {
				guesses = append(guesses, key)
			}
		}
		if len(guesses) > 0 {
			return guesses
		}
	}

	return defaultTags
}
