package main

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

type Player struct {
	PlayerId     int    `db:"player_id"`
	Username     string `db:"username"`
	PasswordHash []byte `db:"password_hash"`
}

type GameSession struct {
	SessionId int
	PlayerId  *int
	Game      mines.Game
	StartedAt time.Time
	EndedAt   time.Time
}

type GameSessionJSON struct {
	SessionId string `json:"session_id"`
	mines.Snapshot
	MineCount int    `json:"mine_count"`
	StartedAt int64  `json:"started_at"`
	EndedAt   *int64 `json:"ended_at,omitempty"`
}

func (s GameSession) MarshalJSON() ([]byte, error) {
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return json.Marshal(GameSessionJSON{
		SessionId: strconv.Itoa(s.SessionId),
		Snapshot:  s.Game.Snapshot(),
		MineCount: s.Game.MineCount,
		StartedAt: s.StartedAt.UnixMilli(),
		EndedAt:   endedAt,
	})
}

// finish stamps the end of a terminal game. Stray calls after the first
// keep the original timestamp.
func (s *GameSession) finish() {
	if s.EndedAt.IsZero() {
		s.EndedAt = time.Now().UTC()
	}
}

// restart drops the end stamp after a reset puts the game back in play,
// so a session is never persisted as both playing and ended.
func (s *GameSession) restart() {
	s.EndedAt = time.Time{}
}

// syncOutcome runs after every engine mutation, keeping the end stamp
// in step with the game: terminal games get stamped once, a reset
// clears the stamp again so the next terminal transition stamps fresh.
func (s *GameSession) syncOutcome() {
	if s.Game.Over() {
		s.finish()
	} else {
		s.restart()
	}
}
