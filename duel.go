// Duelbox
//
// Two players share one keyboard: Player 1 on LShift, Player 2 on RShift.
// The server owns the session and ticks it at a fixed rate; every connected
// browser tab is a display that also forwards key presses.
//
// Features:
// - One session per process, driven by a single hub goroutine
// - WebSocket at /ws: key press/release/restart in, presentation events out
// - Press edges are queued between ticks, so fast mashing is never dropped
// - Late joiners receive a full replay of the current display
// - In-browser QR button to open the display on another screen, backed by go-qrcode

package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/Seednode/duelbox/games/minigame"
)

// Messages coming from clients
type ClientMessage struct {
	Type   string `json:"type"`             // "press", "release", "restart"
	Player int    `json:"player,omitempty"` // 1 or 2, for press / release
}

// EventsMessage carries presentation events, in order, to every display.
type EventsMessage struct {
	Type   string           `json:"type"` // "events"
	Events []minigame.Event `json:"events"`
}

type Client struct {
	conn *websocket.Conn
	send chan any
	id   string
}

type inputRequest struct {
	client *Client
	msg    ClientMessage
}

// inputQueue collects button activity between two ticks.
type inputQueue struct {
	presses [2]int
	held    [2]bool
	restart bool
}

func playerFromMessage(n int) (minigame.Player, bool) {
	switch n {
	case 1:
		return minigame.P1, true
	case 2:
		return minigame.P2, true
	}
	return 0, false
}

func (q *inputQueue) apply(msg ClientMessage) {
	if msg.Type == "restart" {
		q.restart = true
		return
	}

	p, ok := playerFromMessage(msg.Player)
	if !ok {
		return
	}

	switch msg.Type {
	case "press":
		if !q.held[p] {
			q.presses[p]++
		}
		q.held[p] = true
	case "release":
		q.held[p] = false
	}
}

// take returns the input for one tick. Held state carries over.
func (q *inputQueue) take() minigame.Input {
	var in minigame.Input
	for _, p := range minigame.Players {
		in.Buttons[p] = minigame.Button{Presses: q.presses[p], Held: q.held[p]}
	}
	in.Restart = q.restart

	q.presses = [2]int{}
	q.restart = false

	return in
}

type Hub struct {
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	inputs   chan inputRequest

	session *minigame.Session
	events  *minigame.Recorder
	queue   inputQueue
	tick    time.Duration
}

func newHub(cfg *Config, seed int64) *Hub {
	h := &Hub{
		clients:  make(map[*Client]bool),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		inputs:   make(chan inputRequest, 64),
		events:   &minigame.Recorder{},
		tick:     time.Second / time.Duration(cfg.tickRate),
	}

	opts := cfg.options()
	opts.OnResolved = func(r minigame.Report) {
		logf(cfg, "GAMES: Round %d (%s) ended %s, score %d-%d",
			r.Round, r.Kind, r.Outcome.Result, r.Score.Get(minigame.P1), r.Score.Get(minigame.P2))
	}
	h.session = minigame.NewSession(newRand(seed), h.events, opts)

	return h
}

func (h *Hub) run(ctx context.Context, cfg *Config) {
	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.clients[c] = true

			replay := &minigame.Recorder{}
			h.session.Replay(replay)
			h.sendTo(c, EventsMessage{Type: "events", Events: replay.Events})

			logf(cfg, "GAMES: Display %s connected (%d total)", c.id, len(h.clients))

		case c := <-h.unreg:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				logf(cfg, "GAMES: Display %s disconnected (%d total)", c.id, len(h.clients))
			}

		case ir := <-h.inputs:
			if ir.msg.Type == "restart" {
				logf(cfg, "GAMES: Restart requested by %s", ir.client.id)
			}
			h.queue.apply(ir.msg)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			h.session.Tick(h.queue.take(), dt)

			if events := h.events.Flush(); len(events) > 0 {
				h.broadcast(EventsMessage{Type: "events", Events: events})
			}
		}
	}
}

// sendTo drops clients that cannot keep up.
func (h *Hub) sendTo(c *Client, msg any) {
	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcast(msg any) {
	for client := range h.clients {
		h.sendTo(client, msg)
	}
}

// closeAll disconnects all clients of this hub.
func (h *Hub) closeAll() {
	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(1024)

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "press", "release", "restart":
			h.inputs <- inputRequest{
				client: c,
				msg:    msg,
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

func serveWS(cfg *Config, hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan any, 256),
			id:   uuid.NewString(),
		}

		logf(cfg, "SERVE: WebSocket upgrade from %s as %s", realIP(r), client.id)

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

// serveQR generates a PNG QR code for the display URL using go-qrcode.
func serveQR(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		// We are at /.../qr; strip trailing "/qr" to get the display URL.
		path := strings.TrimSuffix(r.URL.Path, "/qr") + "/"

		url := scheme + "://" + r.Host + path

		const qrSize = 320
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)
		_, _ = w.Write(png)
	}
}

// registerDuel sets up routes so that:
//   - $prefix/ws → WebSocket for the running session
//   - $prefix/qr → PNG QR code for the display URL
func registerDuel(cfg *Config, hub *Hub, mux *httprouter.Router) {
	mux.GET(cfg.prefix+"/ws", serveWS(cfg, hub))
	mux.GET(cfg.prefix+"/qr", serveQR(cfg))
}
