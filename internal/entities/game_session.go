package entities

import "time"

// GameSession binds a live connection to a GameSave. A session exists only
// while active; terminating it deletes it.
type GameSession struct {
	ConnectionID string    `json:"connection_id"`
	GameSaveID   string    `json:"game_save_id"`
	UserID       string    `json:"user_id"`
	DateCreated  time.Time `json:"date_created"`
}

// GetID returns the connection ID
func (s *GameSession) GetID() string {
	return s.ConnectionID
}

// GetType returns the entity type
func (s *GameSession) GetType() string {
	return EntityTypeGameSession
}
