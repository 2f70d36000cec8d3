package domain

import "strings"

// Conversation is the append-only history of one logical dialog: alternating
// request and response turns. It is a value: Append returns a new
// Conversation and never mutates the receiver's backing array, so a
// conversation can be handed to a call and the updated copy taken back.
type Conversation struct {
	Turns []string `json:"turns"`
}

// Append returns a copy of c with the given turns added at the end.
func (c Conversation) Append(turns ...string) Conversation {
	next := make([]string, len(c.Turns), len(c.Turns)+len(turns))
	copy(next, c.Turns)
	return Conversation{Turns: append(next, turns...)}
}

// Len returns the number of turns.
func (c Conversation) Len() int {
	return len(c.Turns)
}

// Transcript joins all turns with newlines.
func (c Conversation) Transcript() string {
	return strings.Join(c.Turns, "\n")
}
