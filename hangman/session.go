/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import (
	"strings"
	"unicode/utf8"
)

// Phase is the state of a game session.
type Phase int

const (
	WaitingForPlayers Phase = iota
	RoleAssigned
	InProgress
	RoundOver
)

func (p Phase) String() string {
	switch p {
	case WaitingForPlayers:
		return "waiting_for_players"
	case RoleAssigned:
		return "role_assigned"
	case InProgress:
		return "in_progress"
	case RoundOver:
		return "round_over"
	}

	return "unknown"
}

// Outcome of a single guess.
type Outcome int

const (
	Continue Outcome = iota
	GuesserWon
	ExecutionerWon
)

// GuessResult describes the session after an accepted guess.
type GuessResult struct {
	Letter      string
	Pattern     string
	GuessesLeft int
	Correct     bool
	Outcome     Outcome
}

// Session is the hangman round state machine for one room.
type Session struct {
	placeholder rune
	initial     int

	phase         Phase
	started       bool
	executionerID string
	guesserID     string

	word      string
	pattern   string
	guessed   map[rune]struct{}
	remaining int
	ready     map[string]struct{}
}

func newSession(placeholder rune, initial int) *Session {
	s := &Session{
		placeholder: placeholder,
		initial:     initial,
		guessed:     make(map[rune]struct{}),
		ready:       make(map[string]struct{}),
	}
	s.reset()

	return s
}

// reset clears round-scoped fields. Roles and started are left alone.
func (s *Session) reset() {
	s.word = ""
	s.pattern = ""
	s.remaining = s.initial
	clear(s.guessed)
	clear(s.ready)
}

// Start begins a round with the given roles, waiting on the executioner's word.
func (s *Session) Start(executionerID, guesserID string) {
	s.reset()

	s.started = true
	s.executionerID = executionerID
	s.guesserID = guesserID
	s.phase = RoleAssigned
}

// Abort ends any started round and returns the session to waiting for players.
func (s *Session) Abort() {
	s.reset()

	s.started = false
	s.executionerID = ""
	s.guesserID = ""
	s.phase = WaitingForPlayers
}

// SetWord stores the executioner's secret word, case as submitted.
func (s *Session) SetWord(connID, word string) error {
	if s.phase != RoleAssigned || connID != s.executionerID {
		return errOutOfTurn
	}

	if err := checkWord(word); err != nil {
		return err
	}

	s.word = word
	s.pattern = strings.Repeat(string(s.placeholder), utf8.RuneCountInString(word))
	s.phase = InProgress

	return nil
}

// Guess applies one letter from the guesser. Letters match by exact
// character equality.
func (s *Session) Guess(connID, letter string) (GuessResult, error) {
	if s.phase != InProgress || connID != s.guesserID {
		return GuessResult{}, errOutOfTurn
	}

	r, err := checkLetter(letter)
	if err != nil {
		return GuessResult{}, err
	}

	if _, ok := s.guessed[r]; ok {
		return GuessResult{}, ErrAlreadyGuessed
	}

	s.guessed[r] = struct{}{}
	s.pattern = censor(s.word, s.guessed, s.placeholder)

	result := GuessResult{
		Letter:  letter,
		Correct: strings.ContainsRune(s.word, r),
	}

	switch {
	case result.Correct && s.pattern == s.word:
		result.Outcome = GuesserWon
		s.phase = RoundOver
	case !result.Correct:
		s.remaining--
		if s.remaining <= 0 {
			s.remaining = 0
			result.Outcome = ExecutionerWon
			s.phase = RoundOver
		}
	}

	result.Pattern = s.pattern
	result.GuessesLeft = s.remaining

	return result, nil
}

// Ready records a rematch opt-in for name and returns how many players are ready.
func (s *Session) Ready(name string) (int, error) {
	if s.phase != RoundOver {
		return len(s.ready), errOutOfTurn
	}

	if _, ok := s.ready[name]; ok {
		return len(s.ready), errOutOfTurn
	}

	s.ready[name] = struct{}{}

	return len(s.ready), nil
}

// RoleOf returns the role held by connID this round, or "" for none.
func (s *Session) RoleOf(connID string) string {
	switch {
	case connID == "":
		return ""
	case connID == s.executionerID:
		return RoleExecutioner
	case connID == s.guesserID:
		return RoleGuesser
	}

	return ""
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Started() bool { return s.started }
func (s *Session) Executioner() string { return s.executionerID }
func (s *Session) Guesser() string { return s.guesserID }
func (s *Session) Word() string { return s.word }
func (s *Session) Pattern() string { return s.pattern }
func (s *Session) GuessesLeft() int { return s.remaining }
func (s *Session) GuessedCount() int { return len(s.guessed) }
func (s *Session) ReadyCount() int { return len(s.ready) }
