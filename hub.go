/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/Seednode/hangman/hangman"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBuffer     = 32
)

// ClientMessage is any message a browser sends over the room socket.
type ClientMessage struct {
	Type     string `json:"type"`               // "join", "word", "guess", "chat", "ready", "leave"
	Username string `json:"username,omitempty"` // join
	Word     string `json:"word,omitempty"`     // word
	Letter   string `json:"letter,omitempty"`   // guess
	Text     string `json:"text,omitempty"`     // chat
}

func (m ClientMessage) inbound(connID string) (hangman.Inbound, bool) {
	ev := hangman.Inbound{ConnID: connID}

	switch m.Type {
	case "join":
		ev.Kind, ev.Text = hangman.KindJoin, m.Username
	case "word":
		ev.Kind, ev.Text = hangman.KindWord, m.Word
	case "guess":
		ev.Kind, ev.Text = hangman.KindGuess, m.Letter
	case "chat":
		ev.Kind, ev.Text = hangman.KindChat, m.Text
	case "ready":
		ev.Kind = hangman.KindReady
	case "leave":
		ev.Kind = hangman.KindLeave
	default:
		return ev, false
	}

	return ev, true
}

type Client struct {
	id   string
	conn *websocket.Conn
	send chan any
}

// Hub is the transport for one room. Its run loop is the only goroutine that
// calls into the room, so events for a room never interleave.
type Hub struct {
	cfg  *Config
	room *hangman.Room

	clients map[string]*Client
	mu      sync.Mutex

	register chan *Client
	unreg    chan *Client
	events   chan hangman.Inbound
	done     <-chan struct{}
}

func newHub(ctx context.Context, cfg *Config) *Hub {
	return &Hub{
		cfg:      cfg,
		clients:  make(map[string]*Client),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		events:   make(chan hangman.Inbound),
		done:     ctx.Done(),
	}
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			h.closeAll()

			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.id] = c
			h.mu.Unlock()

			logf(h.cfg, "GAMES: Connection %s opened in %s", c.id, h.room.Name())

		case c := <-h.unreg:
			h.mu.Lock()
			if _, ok := h.clients[c.id]; ok {
				delete(h.clients, c.id)
				close(c.send)
			}
			h.mu.Unlock()

			h.room.Dispatch(hangman.Inbound{Kind: hangman.KindDisconnect, ConnID: c.id})

			logf(h.cfg, "GAMES: Connection %s closed in %s", c.id, h.room.Name())

		case ev := <-h.events:
			h.room.Dispatch(ev)
		}
	}
}

// submit hands an event to the run loop. It reports false once the hub has stopped.
func submit[T any](h *Hub, ch chan T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-h.done:
		return false
	}
}

// Send implements hangman.Gateway.
func (h *Hub) Send(connID string, msg any) {
	if m, ok := msg.(hangman.RedirectMessage); ok {
		m.URL = lobbyURL(h.cfg, m.Reason)
		msg = m
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[connID]; ok {
		h.deliverLocked(c, msg)
	}
}

// Broadcast implements hangman.Gateway.
func (h *Hub) Broadcast(msg any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.clients {
		h.deliverLocked(c, msg)
	}
}

// Chat implements hangman.Gateway.
func (h *Hub) Chat(line string) {
	h.Broadcast(hangman.ChatMessage{Type: "chat", Text: line})
}

// deliverLocked drops clients that cannot keep up. Their pumps then wind
// down and the room sees an ordinary disconnect.
func (h *Hub) deliverLocked(c *Client, msg any) {
	select {
	case c.send <- msg:
	default:
		delete(h.clients, c.id)
		close(c.send)
		logf(h.cfg, "GAMES: Dropped slow connection %s in %s", c.id, h.room.Name())
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, id)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWS(cfg *Config, hubs map[string]*Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		hub, ok := hubs[ps.ByName("room")]
		if !ok {
			http.NotFound(w, r)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "ERROR: websocket upgrade from %s: %v", realIP(r), err)
			return
		}

		client := &Client{
			id:   uuid.NewString(),
			conn: conn,
			send: make(chan any, sendBuffer),
		}

		if !submit(hub, hub.register, client) {
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		submit(h, h.unreg, c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logf(h.cfg, "ERROR: read from %s: %v", c.id, err)
			}
			return
		}

		ev, ok := msg.inbound(c.id)
		if !ok {
			// ignore unknown types
			continue
		}

		if !submit(h, h.events, ev) {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// serveQR renders a PNG QR code linking to the room page.
func serveQR(cfg *Config, hubs map[string]*Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := ps.ByName("room")
		if _, ok := hubs[room]; !ok {
			http.NotFound(w, r)
			return
		}

		scheme := cfg.scheme()
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		target := scheme + "://" + r.Host + cfg.prefix + "/hangman/" + room

		const qrSize = 320
		png, err := qrcode.Encode(target, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)
		_, _ = w.Write(png)
	}
}

// newRooms builds the lobby and one hub per configured room.
func newRooms(ctx context.Context, cfg *Config) (*hangman.Lobby, map[string]*Hub, error) {
	hubs := make(map[string]*Hub, len(cfg.rooms))

	lobby, err := hangman.NewLobby(cfg.rooms, cfg.settings(), func(room string) hangman.Gateway {
		hub := newHub(ctx, cfg)
		hubs[room] = hub
		return hub
	})
	if err != nil {
		return nil, nil, err
	}

	for _, room := range lobby.Rooms() {
		hubs[room.Name()].room = room
		go hubs[room.Name()].run()
	}

	return lobby, hubs, nil
}
