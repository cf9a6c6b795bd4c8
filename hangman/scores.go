/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import "maps"

// Scores holds win counts per display name for one room.
type Scores struct {
	wins map[string]int
}

func newScores() *Scores {
	return &Scores{wins: make(map[string]int)}
}

// Add creates an entry at zero if name has none.
func (s *Scores) Add(name string) {
	if _, ok := s.wins[name]; !ok {
		s.wins[name] = 0
	}
}

// Increment adds a win for name, creating the entry first if absent.
func (s *Scores) Increment(name string) {
	s.wins[name]++
}

// Remove drops name from the table.
func (s *Scores) Remove(name string) {
	delete(s.wins, name)
}

// Get returns the win count for name.
func (s *Scores) Get(name string) (int, bool) {
	n, ok := s.wins[name]

	return n, ok
}

// Snapshot returns a copy of the table safe to hand to the transport.
func (s *Scores) Snapshot() map[string]int {
	return maps.Clone(s.wins)
}
