/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxWordLength is the longest secret word an executioner may submit.
const MaxWordLength = 25

// CheckName applies the identifier rule to a display name: letters, digits
// and underscores, not starting with a digit.
func CheckName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}

	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ErrNameInvalid
		}
	}

	first, _ := utf8.DecodeRuneInString(name)
	if unicode.IsDigit(first) {
		return ErrNameLeadingDigit
	}

	return nil
}

func checkWord(word string) error {
	switch {
	case word == "":
		return ErrWordEmpty
	case utf8.RuneCountInString(word) > MaxWordLength:
		return ErrWordTooLong
	}

	for _, r := range word {
		if !unicode.IsLetter(r) {
			return ErrWordNotLetters
		}
	}

	return nil
}

func checkLetter(letter string) (rune, error) {
	switch {
	case letter == "":
		return 0, ErrLetterEmpty
	case utf8.RuneCountInString(letter) > 1:
		return 0, ErrLetterTooLong
	}

	r, _ := utf8.DecodeRuneInString(letter)
	if !unicode.IsLetter(r) {
		return 0, ErrLetterNotAlpha
	}

	return r, nil
}

// censor rebuilds the revealed pattern position by position. Each position
// depends only on membership of its character in guessed.
func censor(word string, guessed map[rune]struct{}, placeholder rune) string {
	var b strings.Builder

	for _, r := range word {
		if _, ok := guessed[r]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(placeholder)
		}
	}

	return b.String()
}

var htmlEscaper = strings.NewReplacer(">", "&gt;", "<", "&lt;")

func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
