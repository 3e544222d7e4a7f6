package llm

// GetSongStructureSchema returns the JSON schema for structured lyrics output.
// The section_type enum is closed: providers must reject anything outside it.
func GetSongStructureSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"section_type": map[string]any{
							"type": "string",
							"enum": []string{"VERSE", "CHORUS", "BRIDGE", "OUTRO"},
						},
						"content": map[string]any{"type": "string"},
					},
					"required":             []string{"section_type", "content"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"title", "sections"},
		"additionalProperties": false,
	}
}
