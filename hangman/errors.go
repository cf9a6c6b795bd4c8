/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import (
	"errors"
	"fmt"
)

// Rejections are shown to the originating connection verbatim, so the error
// text is the user-facing message.
var (
	ErrNameEmpty        = errors.New("Invalid username: too short.")
	ErrRoomFull         = errors.New("This game is full. Sorry!")
	ErrNameInvalid      = errors.New("Your username must contain only letters, numbers and underscores.")
	ErrNameLeadingDigit = errors.New("Your username cannot start with a number.")

	ErrWordEmpty      = errors.New("word cannot be empty")
	ErrWordTooLong    = errors.New("word cannot be more than 25 characters")
	ErrWordNotLetters = errors.New("word must be composed of only letters")

	ErrLetterEmpty    = errors.New("guess cannot be empty")
	ErrLetterTooLong  = errors.New("guess must be a single letter")
	ErrLetterNotAlpha = errors.New("guess must be a letter")

	ErrAlreadyGuessed = errors.New("that letter has already been guessed")
)

// NameTakenError rejects a display name that matches a registered one
// ignoring case. Name is the registered spelling.
type NameTakenError struct {
	Name string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("Username %q is already in use.", e.Name)
}

// errOutOfTurn marks an event that the current phase or role does not allow.
var errOutOfTurn = errors.New("event not allowed in this phase")
