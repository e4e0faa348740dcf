package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// SessionData stores the state of the running game session.
// This is a singleton component - only one session exists at a time.
type SessionData struct {
	State         cfg.SessionStateID
	Player1Score  int
	Player2Score  int
	ServingPlayer int // 1 or 2; set to the player last scored against
	WinningPlayer int // 0 until the session reaches done
}

var Session = donburi.NewComponentType[SessionData]()

// ScoreFor returns the score of the given player.
func (s *SessionData) ScoreFor(playerIndex int) int {
	if playerIndex == 1 {
		return s.Player1Score
	}
	return s.Player2Score
}

// AddPoint increments the given player's score and returns the new value.
func (s *SessionData) AddPoint(playerIndex int) int {
	if playerIndex == 1 {
		s.Player1Score++
		return s.Player1Score
	}
	s.Player2Score++
	return s.Player2Score
}

// ResetScores zeroes both scores and clears the recorded winner.
func (s *SessionData) ResetScores() {
	s.Player1Score = 0
	s.Player2Score = 0
	s.WinningPlayer = 0
}

// Opponent returns the other player index.
func Opponent(playerIndex int) int {
	if playerIndex == 1 {
		return 2
	}
	return 1
}
