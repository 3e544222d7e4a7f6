package models

import (
	"time"

	"gorm.io/gorm"
)

// MusicGeneration records one completed lyrics generation: the conversation
// input, the rendered outputs, and the session parameters that shaped them.
// MusicFile stays empty until audio synthesis exists; the column is kept so
// records don't need a migration when it does.
type MusicGeneration struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	SessionID        string         `gorm:"index" json:"session_id"`
	UserInput        string         `gorm:"type:text" json:"user_input"`        // serialized conversation
	GeneratedLyrics  string         `gorm:"type:text" json:"generated_lyrics"`  // display-formatted lyrics
	GenerationPrompt string         `gorm:"type:text" json:"generation_prompt"` // music-generation formatted lyrics
	Title            string         `json:"title"`
	Genre            string         `json:"genre"`
	Mood             string         `json:"mood"`
	Theme            string         `json:"theme"`
	MusicFile        string         `json:"music_file"`
}
