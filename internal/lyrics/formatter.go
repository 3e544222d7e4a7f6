package lyrics

import "strings"

// generationPreamble is the fixed first line of the music-generation prompt
const generationPreamble = "Generate music from the given lyrics segment by segment."

// genreDescriptors maps each known genre to the instrumentation descriptor
// injected into the generation prompt. Unknown genres map to "".
var genreDescriptors = map[string]string{
	"pop":        "pop vocal clear melodic synthesizer",
	"rock":       "rock electric-guitar drums powerful energetic",
	"jazz":       "jazz piano smooth saxophone melodic",
	"hip-hop":    "rap hip-hop beats vocal rhythmic",
	"electronic": "electronic synthesizer beats modern",
}

// moodDescriptors maps each known mood to its style descriptor
var moodDescriptors = map[string]string{
	"upbeat":    "energetic bright positive",
	"sad":       "melancholic emotional soft",
	"energetic": "dynamic powerful strong",
	"chill":     "relaxed smooth gentle",
	"romantic":  "soft emotional intimate",
}

// GenreDescriptor returns the fixed descriptor for a genre, or "" when the
// genre is unknown. Unknown values are not an error.
func GenreDescriptor(genre string) string {
	return genreDescriptors[strings.ToLower(genre)]
}

// MoodDescriptor returns the fixed descriptor for a mood, or "" when the
// mood is unknown.
func MoodDescriptor(mood string) string {
	return moodDescriptors[strings.ToLower(mood)]
}

// FormatDisplay renders the song for human-readable display:
// "TITLE: ..." followed by each section as "TYPE:\ncontent" in order.
// Deterministic: the same structure always yields byte-identical output.
func FormatDisplay(song *SongStructure) string {
	var b strings.Builder
	b.WriteString("TITLE: " + song.Title + "\n\n")

	for _, section := range song.Sections {
		b.WriteString(string(section.SectionType) + ":\n" + section.Content + "\n\n")
	}

	return strings.TrimSpace(b.String())
}

// FormatForGeneration renders the song in the annotated format the music
// generation model expects: a fixed preamble, a [Genre] line combining the
// genre and mood descriptors, the [Title], then each section under a
// lowercase [type] header with per-line trimming and blank lines dropped.
// Section order is preserved exactly.
func FormatForGeneration(song *SongStructure, genre, mood, _ string) string {
	genreDesc := GenreDescriptor(genre)
	moodDesc := MoodDescriptor(mood)

	var b strings.Builder
	b.WriteString(generationPreamble + "\n")
	b.WriteString("[Genre] " + genreDesc + " " + moodDesc + " clear vocal\n\n")
	b.WriteString("[Title] " + song.Title + "\n\n")

	for _, section := range song.Sections {
		b.WriteString("[" + strings.ToLower(string(section.SectionType)) + "]\n")

		lines := strings.Split(strings.TrimSpace(section.Content), "\n")
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				kept = append(kept, trimmed)
			}
		}
		b.WriteString(strings.Join(kept, "\n"))
		b.WriteString("\n\n")
	}

	return strings.TrimSpace(b.String())
}
