package model

// Player is the persisted record for a registered username and its score history
type Player struct {
	// ID is assigned by the storage backend on insert and passed through untouched
	ID       string
	Username string // immutable after registration

	// Scores holds every submitted score in submission order. Values are untyped:
	// whatever JSON value the client submitted is kept as-is.
	Scores []any
}

// NewPlayer creates a player with an empty score history
func NewPlayer(username string) *Player {
	return &Player{
		Username: username,
		Scores:   []any{},
	}
}

// AppendScore records a score at the end of the history
func (p *Player) AppendScore(score any) {
	p.Scores = append(p.Scores, score)
}

// Clone returns a copy that shares no slice storage with p
func (p *Player) Clone() *Player {
	scores := make([]any, len(p.Scores))
	copy(scores, p.Scores)
	return &Player{
		ID:       p.ID,
		Username: p.Username,
		Scores:   scores,
	}
}
