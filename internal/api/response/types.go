package response

import "github.com/mcoot/gobang/internal/model"

// Player represents a player record in API responses.
// Field order is part of the contract: username, scores, then the store id.
type Player struct {
	Username string `json:"username"`
	Scores   []any  `json:"scores"`
	ID       string `json:"id,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	scores := p.Scores
	if scores == nil {
		scores = []any{}
	}
	return Player{
		Username: p.Username,
		Scores:   scores,
		ID:       p.ID,
	}
}

// Health is the response of the health endpoint
type Health struct {
	Status string `json:"status"`
}
