package lyrics

import (
	"fmt"
	"strings"
)

// SectionType identifies the structural role of a lyrics section
type SectionType string

const (
	SectionVerse  SectionType = "VERSE"
	SectionChorus SectionType = "CHORUS"
	SectionBridge SectionType = "BRIDGE"
	SectionOutro  SectionType = "OUTRO"
)

// validSectionTypes is the closed set of section types the extractor accepts
var validSectionTypes = map[SectionType]bool{
	SectionVerse:  true,
	SectionChorus: true,
	SectionBridge: true,
	SectionOutro:  true,
}

// Valid reports whether the section type is one of the four known values
func (s SectionType) Valid() bool {
	return validSectionTypes[s]
}

// ParseSectionType validates a raw section type string against the closed enum
func ParseSectionType(raw string) (SectionType, error) {
	st := SectionType(raw)
	if !st.Valid() {
		return "", fmt.Errorf("invalid section type: %q", raw)
	}
	return st, nil
}

// LyricsSection is a single typed section of a song
type LyricsSection struct {
	SectionType SectionType `json:"section_type"`
	Content     string      `json:"content"`
}

// SongStructure is the validated output of structured lyrics extraction.
// It is constructed once per generation request and not mutated afterwards.
type SongStructure struct {
	Title    string          `json:"title"`
	Sections []LyricsSection `json:"sections"`
}

// Validate checks the structural invariants: a title, at least one section,
// known section types, and non-empty content after trimming.
func (s *SongStructure) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("missing title")
	}
	if len(s.Sections) == 0 {
		return fmt.Errorf("song has no sections")
	}
	for i, section := range s.Sections {
		if !section.SectionType.Valid() {
			return fmt.Errorf("section %d: invalid section type: %q", i, section.SectionType)
		}
		if strings.TrimSpace(section.Content) == "" {
			return fmt.Errorf("section %d (%s): empty content", i, section.SectionType)
		}
	}
	return nil
}

// ExtractionError wraps any failure to obtain or validate structured lyrics.
// The caller surfaces it to the user; nothing is retried automatically.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lyrics extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("lyrics extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func newExtractionError(reason string, err error) *ExtractionError {
	return &ExtractionError{Reason: reason, Err: err}
}
