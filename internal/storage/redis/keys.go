package redis

import "fmt"

const defaultKeyPrefix = "gobang"

// keys builds the key names for one prefix.
// Documents and score lists live under different namespaces, so no username
// can produce another player's key. The braces make both keys of a player
// share a cluster hash slot for the append script.
type keys struct {
	prefix string
}

// player returns the key holding the player document (id + username)
func (k keys) player(username string) string {
	return fmt.Sprintf("%s:player:{%s}", k.prefix, username)
}

// scores returns the key of the LIST holding a player's scores
func (k keys) scores(username string) string {
	return fmt.Sprintf("%s:scores:{%s}", k.prefix, username)
}
