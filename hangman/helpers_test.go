/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

// broadcastTo marks recorded messages that went to the whole room.
const broadcastTo = "*"

type delivery struct {
	to  string
	msg any
}

type recorder struct {
	deliveries []delivery
	chats      []string
}

func (g *recorder) Send(connID string, msg any) {
	g.deliveries = append(g.deliveries, delivery{to: connID, msg: msg})
}

func (g *recorder) Broadcast(msg any) {
	g.deliveries = append(g.deliveries, delivery{to: broadcastTo, msg: msg})
}

func (g *recorder) Chat(line string) {
	g.chats = append(g.chats, line)
}

func (g *recorder) reset() {
	g.deliveries = nil
	g.chats = nil
}

// lastTo returns the most recent message of type T delivered to to.
func lastTo[T any](g *recorder, to string) (T, bool) {
	for i := len(g.deliveries) - 1; i >= 0; i-- {
		d := g.deliveries[i]
		if d.to != to {
			continue
		}
		if m, ok := d.msg.(T); ok {
			return m, true
		}
	}

	var zero T

	return zero, false
}

func countTo[T any](g *recorder, to string) int {
	n := 0
	for _, d := range g.deliveries {
		if d.to != to {
			continue
		}
		if _, ok := d.msg.(T); ok {
			n++
		}
	}

	return n
}

func testSettings() Settings {
	return Settings{Placeholder: '-', InitialGuesses: 6}
}

func newTestRoom() (*Room, *recorder) {
	g := &recorder{}

	return NewRoom("Alpha", testSettings(), g), g
}

// pairedRoom returns a room where ann (executioner) and bob (guesser) have joined.
func pairedRoom() (*Room, *recorder) {
	r, g := newTestRoom()
	_ = r.Join("c1", "Ann")
	_ = r.Join("c2", "Bob")
	g.reset()

	return r, g
}

// playingRoom returns a paired room with word already set.
func playingRoom(word string) (*Room, *recorder) {
	r, g := pairedRoom()
	r.SubmitWord("c1", word)
	g.reset()

	return r, g
}
