package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestConvertSchemaToGemini(t *testing.T) {
	// The song structure schema must survive translation so the map form
	// and the genai form cannot drift apart
	converted := convertSchemaToGemini(GetSongStructureSchema())
	require.NotNil(t, converted)

	assert.Equal(t, genai.TypeObject, converted.Type)
	assert.Equal(t, []string{"title", "sections"}, converted.Required)

	require.Contains(t, converted.Properties, "title")
	assert.Equal(t, genai.TypeString, converted.Properties["title"].Type)

	require.Contains(t, converted.Properties, "sections")
	sections := converted.Properties["sections"]
	assert.Equal(t, genai.TypeArray, sections.Type)
	require.NotNil(t, sections.Items)
	assert.Equal(t, genai.TypeObject, sections.Items.Type)
	assert.Equal(t, []string{"section_type", "content"}, sections.Items.Required)

	sectionType := sections.Items.Properties["section_type"]
	require.NotNil(t, sectionType)
	assert.Equal(t, genai.TypeString, sectionType.Type)
	assert.Equal(t, []string{"VERSE", "CHORUS", "BRIDGE", "OUTRO"}, sectionType.Enum)

	content := sections.Items.Properties["content"]
	require.NotNil(t, content)
	assert.Equal(t, genai.TypeString, content.Type)
}

func TestConvertSchemaToGeminiNil(t *testing.T) {
	assert.Nil(t, convertSchemaToGemini(nil))
}
