/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import (
	"errors"
	"fmt"
	"unicode"
)

// Lobby is the fixed set of rooms built at startup.
type Lobby struct {
	names []string
	rooms map[string]*Room
}

// NewLobby creates one Room per name. gateway is called once per room to
// obtain its outbound channel.
func NewLobby(names []string, settings Settings, gateway func(room string) Gateway) (*Lobby, error) {
	if len(names) == 0 {
		return nil, errors.New("at least one room is required")
	}

	if unicode.IsLetter(settings.Placeholder) || settings.Placeholder == 0 {
		return nil, fmt.Errorf("invalid placeholder %q: must be a single non-letter character", settings.Placeholder)
	}

	if settings.InitialGuesses < 1 {
		return nil, fmt.Errorf("invalid guess allowance %d: must be at least 1", settings.InitialGuesses)
	}

	l := &Lobby{
		names: make([]string, 0, len(names)),
		rooms: make(map[string]*Room, len(names)),
	}

	for _, name := range names {
		if err := CheckName(name); err != nil {
			return nil, fmt.Errorf("invalid room name %q: %w", name, err)
		}

		if _, ok := l.rooms[name]; ok {
			return nil, fmt.Errorf("duplicate room name %q", name)
		}

		l.names = append(l.names, name)
		l.rooms[name] = NewRoom(name, settings, gateway(name))
	}

	return l, nil
}

// Room returns the named room.
func (l *Lobby) Room(name string) (*Room, bool) {
	r, ok := l.rooms[name]

	return r, ok
}

// Rooms returns every room in configured order.
func (l *Lobby) Rooms() []*Room {
	rooms := make([]*Room, 0, len(l.names))
	for _, name := range l.names {
		rooms = append(rooms, l.rooms[name])
	}

	return rooms
}
