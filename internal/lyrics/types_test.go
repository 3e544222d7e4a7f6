package lyrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionTypeValid(t *testing.T) {
	assert.True(t, SectionVerse.Valid())
	assert.True(t, SectionChorus.Valid())
	assert.True(t, SectionBridge.Valid())
	assert.True(t, SectionOutro.Valid())

	assert.False(t, SectionType("HOOK").Valid())
	assert.False(t, SectionType("verse").Valid()) // enum values are uppercase
	assert.False(t, SectionType("").Valid())
}

func TestParseSectionType(t *testing.T) {
	st, err := ParseSectionType("VERSE")
	require.NoError(t, err)
	assert.Equal(t, SectionVerse, st)

	_, err = ParseSectionType("HOOK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid section type")
}

func TestSongStructureValidate(t *testing.T) {
	valid := &SongStructure{
		Title: "Midnight Drive",
		Sections: []LyricsSection{
			{SectionType: SectionVerse, Content: "Headlights on the highway"},
			{SectionType: SectionChorus, Content: "We keep driving"},
		},
	}
	require.NoError(t, valid.Validate())

	noTitle := &SongStructure{
		Sections: []LyricsSection{{SectionType: SectionVerse, Content: "line"}},
	}
	assert.Error(t, noTitle.Validate())

	noSections := &SongStructure{Title: "Empty"}
	assert.Error(t, noSections.Validate())

	badType := &SongStructure{
		Title:    "Bad",
		Sections: []LyricsSection{{SectionType: "HOOK", Content: "line"}},
	}
	assert.Error(t, badType.Validate())

	emptyContent := &SongStructure{
		Title:    "Blank",
		Sections: []LyricsSection{{SectionType: SectionVerse, Content: "   \n  "}},
	}
	assert.Error(t, emptyContent.Validate())
}

func TestExtractionErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := newExtractionError("generation call failed", cause)

	assert.Contains(t, err.Error(), "generation call failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)

	var extractionErr *ExtractionError
	assert.ErrorAs(t, error(err), &extractionErr)
}
