package session

// Phase is the session's top-level mode. Paused and GameOver never overlap.
type Phase int

const (
	Playing Phase = iota
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is everything the session owns outside the world.
type State struct {
	Score     int
	HighScore int
	Phase     Phase
}
