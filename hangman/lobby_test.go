/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import "testing"

func TestNewLobby(t *testing.T) {
	gateways := map[string]*recorder{}
	factory := func(room string) Gateway {
		g := &recorder{}
		gateways[room] = g
		return g
	}

	l, err := NewLobby([]string{"Alpha", "Bravo"}, testSettings(), factory)
	if err != nil {
		t.Fatalf("NewLobby() = %v", err)
	}

	rooms := l.Rooms()
	if len(rooms) != 2 || rooms[0].Name() != "Alpha" || rooms[1].Name() != "Bravo" {
		t.Fatalf("Rooms() in wrong order")
	}

	alpha, ok := l.Room("Alpha")
	if !ok {
		t.Fatal("Alpha missing")
	}
	if _, ok := l.Room("Charlie"); ok {
		t.Error("unexpected room Charlie")
	}

	// Rooms are independent.
	_ = alpha.Join("c1", "Ann")
	bravo, _ := l.Room("Bravo")
	if err := bravo.Join("c2", "Ann"); err != nil {
		t.Errorf("same name in another room = %v", err)
	}
	if len(gateways["Alpha"].chats) != 1 || len(gateways["Bravo"].chats) != 1 {
		t.Error("events crossed rooms")
	}
}

func TestNewLobbyRejects(t *testing.T) {
	factory := func(string) Gateway { return &recorder{} }

	tests := []struct {
		name     string
		rooms    []string
		settings Settings
	}{
		{"no rooms", nil, testSettings()},
		{"duplicate", []string{"Alpha", "Alpha"}, testSettings()},
		{"bad name", []string{"Al pha"}, testSettings()},
		{"letter placeholder", []string{"Alpha"}, Settings{Placeholder: 'x', InitialGuesses: 6}},
		{"no guesses", []string{"Alpha"}, Settings{Placeholder: '-', InitialGuesses: 0}},
	}

	for _, tt := range tests {
		if _, err := NewLobby(tt.rooms, tt.settings, factory); err == nil {
			t.Errorf("%s: NewLobby() succeeded", tt.name)
		}
	}
}
