package session

// Turn roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Default song parameters for a fresh session
const (
	DefaultGenre = "pop"
	DefaultMood  = "upbeat"
	DefaultTheme = "love"
)

// Genres, Moods and Themes are the fixed option sets a session accepts
var (
	Genres = []string{"pop", "rock", "jazz", "hip-hop", "electronic"}
	Moods  = []string{"upbeat", "sad", "energetic", "chill", "romantic"}
	Themes = []string{"love", "breakup", "party", "reflection", "adventure"}
)

// Turn is one message in the session conversation, tagged with a role
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State holds everything a songwriting session accumulates: the ordered
// conversation and the selected song parameters. State values are passed
// through transition functions rather than mutated in place; the Manager
// owns the single stored copy per session.
type State struct {
	Conversation []Turn `json:"conversation"`
	Genre        string `json:"genre"`
	Mood         string `json:"mood"`
	Theme        string `json:"theme"`
	Stopped      bool   `json:"stopped"`
}

// NewState returns a fresh session state with default parameters
func NewState() State {
	return State{
		Conversation: []Turn{},
		Genre:        DefaultGenre,
		Mood:         DefaultMood,
		Theme:        DefaultTheme,
	}
}

// Event is a state transition applied to a session
type Event interface {
	apply(State) State
}

// SettingsChanged updates the song parameters. Empty fields keep the
// current value.
type SettingsChanged struct {
	Genre string
	Mood  string
	Theme string
}

func (e SettingsChanged) apply(s State) State {
	if e.Genre != "" {
		s.Genre = e.Genre
	}
	if e.Mood != "" {
		s.Mood = e.Mood
	}
	if e.Theme != "" {
		s.Theme = e.Theme
	}
	return s
}

// TurnAppended appends one conversation turn
type TurnAppended struct {
	Role    string
	Content string
}

func (e TurnAppended) apply(s State) State {
	conversation := make([]Turn, len(s.Conversation), len(s.Conversation)+1)
	copy(conversation, s.Conversation)
	s.Conversation = append(conversation, Turn{Role: e.Role, Content: e.Content})
	return s
}

// Stopped marks the session as stopped (recording ended by the user)
type Stopped struct{}

func (e Stopped) apply(s State) State {
	s.Stopped = true
	return s
}

// Reset discards the session and starts over with defaults ("New Song")
type Reset struct{}

func (e Reset) apply(State) State {
	return NewState()
}

// Apply returns the state produced by applying the event. The input state
// is not modified.
func Apply(s State, e Event) State {
	return e.apply(s)
}

// ValidGenre reports whether the value is in the fixed genre option set
func ValidGenre(v string) bool { return contains(Genres, v) }

// ValidMood reports whether the value is in the fixed mood option set
func ValidMood(v string) bool { return contains(Moods, v) }

// ValidTheme reports whether the value is in the fixed theme option set
func ValidTheme(v string) bool { return contains(Themes, v) }

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
