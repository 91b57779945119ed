package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username string `json:"username"`
}

// ScoreRequest is the request body for submitting a score.
// Score is left untyped; a missing or null score decodes to nil.
type ScoreRequest struct {
	Username string `json:"username"`
	Score    any    `json:"score"`
}
