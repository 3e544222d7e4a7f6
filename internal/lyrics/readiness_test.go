package lyrics

import (
	"testing"

	"github.com/milomusic/milo-api/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestReady(t *testing.T) {
	tests := []struct {
		name         string
		conversation []session.Turn
		want         bool
	}{
		{
			name:         "empty conversation",
			conversation: nil,
			want:         false,
		},
		{
			name: "assistant mentions verse and chorus",
			conversation: []session.Turn{
				{Role: session.RoleUser, Content: "write me a song"},
				{Role: session.RoleAssistant, Content: "Here's a verse:\n...\nAnd a chorus:\n..."},
			},
			want: true,
		},
		{
			name: "case insensitive match",
			conversation: []session.Turn{
				{Role: session.RoleAssistant, Content: "VERSE one... CHORUS here"},
			},
			want: true,
		},
		{
			name: "verse only is not enough",
			conversation: []session.Turn{
				{Role: session.RoleAssistant, Content: "Here's a verse to start with"},
			},
			want: false,
		},
		{
			name: "user turns do not count",
			conversation: []session.Turn{
				{Role: session.RoleUser, Content: "give me a verse and a chorus"},
			},
			want: false,
		},
		{
			name: "earlier assistant turn still counts",
			conversation: []session.Turn{
				{Role: session.RoleAssistant, Content: "verse... chorus..."},
				{Role: session.RoleUser, Content: "make it sadder"},
				{Role: session.RoleAssistant, Content: "Sure, let me rework it"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ready(tt.conversation))
		})
	}
}
