package config

// SessionStateID represents the current phase of a game session.
// Exactly one state is active at any time.
type SessionStateID int

const (
	StateStart      SessionStateID = iota // title card
	StateModeSelect                       // picking who controls each paddle
	StateVersusAI                         // mode held, waiting for enter
	StateTwoPlayer
	StateSpectator
	StateServe // ball armed, waiting for enter
	StatePlay  // live rally
	StateDone  // game over, winner shown
)

func (s SessionStateID) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateModeSelect:
		return "mode-select"
	case StateVersusAI:
		return "vs-ai"
	case StateTwoPlayer:
		return "two-player"
	case StateSpectator:
		return "spectator"
	case StateServe:
		return "serve"
	case StatePlay:
		return "play"
	case StateDone:
		return "done"
	}
	return "unknown"
}
