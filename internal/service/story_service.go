package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackName is returned whenever a speaker name cannot be extracted.
const fallbackName = "A Local Artisan"

// StoryService synthesizes the marketing micro-story for a product from its
// resolved transcript. Both operations are total, deterministic functions.
type StoryService struct{}

// NewStoryService constructs a StoryService.
func NewStoryService() *StoryService {
	return &StoryService{}
}

// ExtractName pulls the presumed speaker name out of a transcript. It looks
// for the phrase "my name is" case-insensitively and takes the next one or
// two tokens, with trailing commas and periods stripped. Extraction never
// fails: any transcript it cannot parse yields the fixed fallback name.
func (s *StoryService) ExtractName(transcript string) string {
	const phrase = "my name is "

	// Search and slice the same lowered string: lowercasing can change a
	// rune's UTF-8 length, so an index into the lowered text is not valid
	// in the original. Title-casing below restores capitalization.
	lower := strings.ToLower(transcript)
	idx := strings.Index(lower, phrase)
	if idx < 0 {
		return fallbackName
	}

	tokens := strings.Fields(lower[idx+len(phrase):])
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	name := strings.TrimRight(strings.Join(tokens, " "), ",.")
	if name == "" {
		return fallbackName
	}
	return cases.Title(language.Und).String(name)
}

// SynthesizeStory composes a short themed story from the transcript. Theme
// selection is a case-insensitive keyword scan, first match wins: weaving,
// then pottery, then a generic craftsman template.
func (s *StoryService) SynthesizeStory(transcript string) string {
	name := s.ExtractName(transcript)
	lower := strings.ToLower(transcript)

	switch {
	case strings.Contains(lower, "loom") || strings.Contains(lower, "weave"):
		return fmt.Sprintf("Handwoven by %s on a traditional loom — preserving ancestral textile art.", name)
	case strings.Contains(lower, "potter") || strings.Contains(lower, "clay"):
		// "potter" also covers "pottery"
		return fmt.Sprintf("Shaped by %s's hands — pottery that carries generations of craft.", name)
	default:
		return fmt.Sprintf("Made by %s, a craftsman keeping local traditions alive.", name)
	}
}
