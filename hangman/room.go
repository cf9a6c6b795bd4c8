/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package hangman implements room-scoped two-player hangman.
//
// Each Room owns a connection registry (capacity two), a score table and a
// game session. The first two arrivals are paired: the first becomes the
// executioner and picks a secret word, the second guesses letters until the
// word is revealed or the guesses run out. After a round both players may
// ready up to play again with roles swapped. A disconnect during a started
// round aborts it.
//
// A Room handles one event at a time to completion, broadcasts included.
// Rooms share nothing but their read-only Settings.
package hangman

import (
	"errors"
	"fmt"
	"sync"
)

// Settings is the process-wide, read-only game configuration.
type Settings struct {
	Placeholder    rune
	InitialGuesses int
	Logf           func(format string, args ...any)
}

// RoomStatus is a point-in-time summary for lobby listings.
type RoomStatus struct {
	Name    string
	Players int
	Phase   Phase
}

// Room is one independent game instance.
type Room struct {
	name     string
	settings Settings
	gw       Gateway

	mu       sync.Mutex
	registry Registry
	scores   *Scores
	session  *Session
	messages int
}

// NewRoom builds a room that emits through gw.
func NewRoom(name string, settings Settings, gw Gateway) *Room {
	if settings.Logf == nil {
		settings.Logf = func(string, ...any) {}
	}

	return &Room{
		name:     name,
		settings: settings,
		gw:       gw,
		scores:   newScores(),
		session:  newSession(settings.Placeholder, settings.InitialGuesses),
	}
}

func (r *Room) Name() string {
	return r.name
}

// Status reports occupancy and phase.
func (r *Room) Status() RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return RoomStatus{
		Name:    r.name,
		Players: r.registry.Len(),
		Phase:   r.session.Phase(),
	}
}

// Dispatch routes one inbound event.
func (r *Room) Dispatch(ev Inbound) {
	switch ev.Kind {
	case KindJoin:
		_ = r.Join(ev.ConnID, ev.Text)
	case KindDisconnect:
		r.Disconnect(ev.ConnID)
	case KindLeave:
		r.Leave(ev.ConnID)
	case KindWord:
		r.SubmitWord(ev.ConnID, ev.Text)
	case KindGuess:
		r.GuessLetter(ev.ConnID, ev.Text)
	case KindChat:
		r.Chat(ev.ConnID, ev.Text)
	case KindReady:
		r.ReadyUp(ev.ConnID)
	default:
		r.settings.Logf("GAMES: Ignoring unknown event %q in %s", ev.Kind, r.name)
	}
}

// Join registers a display name for connID. On rejection the connection is
// told why and redirected to the lobby, and the error is returned.
func (r *Room) Join(connID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registry.Name(connID); ok {
		return nil
	}

	if err := r.registry.Join(connID, name); err != nil {
		r.gw.Send(connID, NoticeMessage{Type: "notice", Message: err.Error()})
		r.gw.Send(connID, RedirectMessage{Type: "redirect", Reason: err.Error()})
		r.settings.Logf("GAMES: Rejected %q in %s: %v", name, r.name, err)

		return err
	}

	r.scores.Add(name)
	r.broadcastScores()

	r.gw.Chat(fmt.Sprintf("%s has joined the game! There are now %d/%d users in the game.", name, r.registry.Len(), Capacity))
	r.settings.Logf("GAMES: Player %q joined %s", name, r.name)

	if r.registry.Len() == Capacity && !r.session.Started() {
		ids := r.registry.ConnIDs()
		r.startRound(ids[0], ids[1])
	}

	return nil
}

// Disconnect handles the loss of connID. Unknown connections are ignored.
func (r *Room) Disconnect(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disconnect(connID)
}

// Leave is a voluntary disconnect followed by a redirect to the lobby.
func (r *Room) Leave(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disconnect(connID)
	r.gw.Send(connID, RedirectMessage{Type: "redirect"})
}

func (r *Room) disconnect(connID string) {
	name, ok := r.registry.Leave(connID)
	if !ok {
		return
	}

	r.scores.Remove(name)
	r.broadcastScores()

	r.gw.Chat(fmt.Sprintf("%s has left the game! There are now %d/%d users in this game.", name, r.registry.Len(), Capacity))
	r.settings.Logf("GAMES: Player %q left %s", name, r.name)

	if r.session.Started() {
		r.gw.Broadcast(OpponentLeftMessage{
			Type:    "opponent_left",
			Message: "Game ended: your opponent disconnected.",
		})
		r.session.Abort()
		r.settings.Logf("GAMES: Round in %s ended by disconnect", r.name)
	}
}

// SubmitWord sets the secret word from the executioner.
func (r *Room) SubmitWord(connID, word string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.session.SetWord(connID, word)
	switch {
	case errors.Is(err, errOutOfTurn):
		r.settings.Logf("GAMES: Dropped word from %s in %s (phase %s)", connID, r.name, r.session.Phase())

		return
	case err != nil:
		r.gw.Send(connID, NoticeMessage{Type: "notice", Message: err.Error()})

		return
	}

	r.gw.Send(r.session.Executioner(), WordAcceptedMessage{Type: "word_accepted", Word: r.session.Word()})
	r.gw.Send(r.session.Guesser(), WordMessage{
		Type:    "word",
		Length:  len([]rune(r.session.Word())),
		Pattern: r.session.Pattern(),
	})
	r.settings.Logf("GAMES: Word set in %s", r.name)
}

// GuessLetter applies a letter from the guesser.
func (r *Room) GuessLetter(connID, letter string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.session.Guess(connID, letter)
	switch {
	case errors.Is(err, errOutOfTurn):
		r.settings.Logf("GAMES: Dropped guess from %s in %s (phase %s)", connID, r.name, r.session.Phase())

		return
	case errors.Is(err, ErrAlreadyGuessed):
		r.gw.Send(connID, AlreadyGuessedMessage{Type: "already_guessed", Letter: letter, Message: err.Error()})

		return
	case err != nil:
		r.gw.Send(connID, NoticeMessage{Type: "notice", Message: err.Error()})

		return
	}

	r.settings.Logf("GAMES: Guess %q in %s, correct: %t", res.Letter, r.name, res.Correct)

	switch res.Outcome {
	case GuesserWon:
		r.finishRound("round_won", res, r.session.Guesser())
	case ExecutionerWon:
		r.finishRound("round_lost", res, r.session.Executioner())
	default:
		r.gw.Broadcast(GuessMessage{
			Type:        "guess",
			Letter:      res.Letter,
			Pattern:     res.Pattern,
			GuessesLeft: res.GuessesLeft,
			Correct:     res.Correct,
		})
	}
}

func (r *Room) finishRound(kind string, res GuessResult, winnerID string) {
	r.gw.Broadcast(RoundOverMessage{
		Type:        kind,
		Word:        r.session.Word(),
		Letter:      res.Letter,
		Pattern:     res.Pattern,
		GuessesLeft: res.GuessesLeft,
		Correct:     res.Correct,
	})

	winner, ok := r.registry.Name(winnerID)
	if !ok {
		return
	}

	r.scores.Increment(winner)
	r.broadcastScores()
	r.settings.Logf("GAMES: %q won the round in %s", winner, r.name)
}

// Chat relays a numbered, escaped chat line. Messages from connections
// without a display name are dropped.
func (r *Room) Chat(connID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.registry.Name(connID)
	if !ok {
		return
	}

	r.messages++
	r.gw.Chat(fmt.Sprintf("[#%04d] %s: %s", r.messages, name, escapeHTML(text)))
}

// ReadyUp opts connID into a rematch with swapped roles.
func (r *Room) ReadyUp(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.registry.Name(connID)
	if !ok {
		return
	}

	n, err := r.session.Ready(name)
	if err != nil {
		return
	}

	r.settings.Logf("GAMES: Player %q readied up in %s", name, r.name)

	if n >= Capacity {
		r.startRound(r.session.Guesser(), r.session.Executioner())

		return
	}

	r.gw.Broadcast(ReadyWaitingMessage{
		Type:    "ready_waiting",
		Name:    name,
		Message: "Waiting on the other player to ready up.",
	})
}

func (r *Room) startRound(executionerID, guesserID string) {
	r.broadcastScores()
	r.session.Start(executionerID, guesserID)

	r.gw.Send(executionerID, RoleMessage{Type: "role", Role: RoleExecutioner})
	r.gw.Send(guesserID, RoleMessage{Type: "role", Role: RoleGuesser})

	executioner, _ := r.registry.Name(executionerID)
	guesser, _ := r.registry.Name(guesserID)
	r.gw.Chat(fmt.Sprintf("Game is starting! The guesser is %s and the executioner is %s", guesser, executioner))
	r.settings.Logf("GAMES: Round started in %s, executioner %q, guesser %q", r.name, executioner, guesser)
}

func (r *Room) broadcastScores() {
	r.gw.Broadcast(ScoresMessage{Type: "scores", Scores: r.scores.Snapshot()})
}
