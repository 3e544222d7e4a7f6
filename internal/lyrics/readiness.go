package lyrics

import (
	"strings"

	"github.com/milomusic/milo-api/internal/session"
)

// NotReadyMessage is the fixed status returned when the readiness gate
// rejects a generation request.
const NotReadyMessage = "No complete lyrics found yet. Keep talking until the assistant writes a verse and a chorus."

// Ready scans the conversation in reverse for the most recent assistant
// turn mentioning both "verse" and "chorus" (case-insensitive). This is a
// heuristic gate, not a structural guarantee: it only decides whether the
// extractor is worth calling at all.
func Ready(conversation []session.Turn) bool {
	for i := len(conversation) - 1; i >= 0; i-- {
		turn := conversation[i]
		if turn.Role != session.RoleAssistant {
			continue
		}
		content := strings.ToLower(turn.Content)
		if strings.Contains(content, "verse") && strings.Contains(content, "chorus") {
			return true
		}
	}
	return false
}
