/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

// Gateway delivers outbound events. Calls are fire-and-forget.
type Gateway interface {
	// Send delivers msg to one connection.
	Send(connID string, msg any)
	// Broadcast delivers msg to every connection in the room.
	Broadcast(msg any)
	// Chat delivers a plain chat line to every connection in the room.
	Chat(line string)
}

// Inbound event kinds.
const (
	KindJoin       = "join"
	KindDisconnect = "disconnect"
	KindLeave      = "leave"
	KindWord       = "word"
	KindGuess      = "guess"
	KindChat       = "chat"
	KindReady      = "ready"
)

// Inbound is one room-scoped event from a connection. Text carries the
// display name, word, letter or chat text depending on Kind.
type Inbound struct {
	Kind   string
	ConnID string
	Text   string
}

// Roles as sent to clients.
const (
	RoleExecutioner = "executioner"
	RoleGuesser     = "guesser"
)

// RoleMessage privately tells a connection its role for the round.
type RoleMessage struct {
	Type string `json:"type"` // "role"
	Role string `json:"role"`
}

// ScoresMessage is the full score table.
type ScoresMessage struct {
	Type   string         `json:"type"` // "scores"
	Scores map[string]int `json:"scores"`
}

// ChatMessage carries one chat line.
type ChatMessage struct {
	Type string `json:"type"` // "chat"
	Text string `json:"text"`
}

// WordAcceptedMessage confirms the secret word to the executioner.
type WordAcceptedMessage struct {
	Type string `json:"type"` // "word_accepted"
	Word string `json:"word"`
}

// WordMessage gives the guesser the length and current pattern.
type WordMessage struct {
	Type    string `json:"type"` // "word"
	Length  int    `json:"length"`
	Pattern string `json:"pattern"`
}

// NoticeMessage is a private human-readable notification, including every
// rejected input.
type NoticeMessage struct {
	Type    string `json:"type"` // "notice"
	Message string `json:"message"`
}

// AlreadyGuessedMessage tells the guesser a letter was already tried.
type AlreadyGuessedMessage struct {
	Type    string `json:"type"` // "already_guessed"
	Letter  string `json:"letter"`
	Message string `json:"message"`
}

// GuessMessage is the incremental result of a guess.
type GuessMessage struct {
	Type        string `json:"type"` // "guess"
	Letter      string `json:"letter"`
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guesses_left"`
	Correct     bool   `json:"correct"`
}

// RoundOverMessage ends a round. Type is "round_won" when the guesser
// revealed the word and "round_lost" when guesses ran out.
type RoundOverMessage struct {
	Type        string `json:"type"`
	Word        string `json:"word"`
	Letter      string `json:"letter"`
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guesses_left"`
	Correct     bool   `json:"correct"`
}

// OpponentLeftMessage aborts a started round.
type OpponentLeftMessage struct {
	Type    string `json:"type"` // "opponent_left"
	Message string `json:"message"`
}

// ReadyWaitingMessage reports a ready-up while the other player has not.
type ReadyWaitingMessage struct {
	Type    string `json:"type"` // "ready_waiting"
	Name    string `json:"name"`
	Message string `json:"message"`
}

// RedirectMessage sends a connection back to the lobby. The transport fills
// in the URL; Reason is the rejection text, if any.
type RedirectMessage struct {
	Type   string `json:"type"` // "redirect"
	URL    string `json:"url,omitempty"`
	Reason string `json:"reason,omitempty"`
}
