// Package websocket streams the game display to remote spectators.
//
// A Relay sits beside the local display and turns every paint, resize and
// status message into an Event. The Hub fans those events out to all
// connected clients and keeps the latest frame so that a spectator who
// joins mid-level sees the whole board at once.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//	http.HandleFunc("/ws", hub.ServeWS)
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Events queued between the game loop and the hub.
	publishBuffer = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event kinds.
const (
	EventResize  = "resize"
	EventPaint   = "paint"
	EventPlayer  = "player"
	EventMessage = "message"
	EventClear   = "clear"
	EventFrame   = "frame"
)

// Event is one display update as sent to spectators.
type Event struct {
	Event string  `json:"event"`
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Rows  int     `json:"rows,omitempty"`
	Cols  int     `json:"cols,omitempty"`
	Cell  string  `json:"cell,omitempty"`
	Color string  `json:"color,omitempty"`
	Text  string  `json:"text,omitempty"`
	Frame []Event `json:"frame,omitempty"`
}

// Client represents a WebSocket spectator
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts events
type Hub struct {
	clients map[*Client]bool

	// Events from the game loop
	broadcast chan Event

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Latest frame, owned by Run
	rows, cols int
	cells      map[[2]int]Event
	message    string
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, publishBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		cells:      make(map[[2]int]Event),
	}
}

// Run is the hub's event loop. It returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.unregisterClient(client)
			}
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case ev := <-h.broadcast:
			h.apply(ev)
			h.broadcastEvent(ev)
		}
	}
}

// Publish queues an event without blocking. Events are dropped when the
// hub falls behind.
func (h *Hub) Publish(ev Event) {
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("websocket: dropping %s event, hub is behind", ev.Event)
	}
}

// ServeWS upgrades a spectator connection
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// apply folds an event into the stored frame.
func (h *Hub) apply(ev Event) {
	switch ev.Event {
	case EventResize:
		h.rows, h.cols = ev.Rows, ev.Cols
		clear(h.cells)
	case EventPaint, EventPlayer:
		h.cells[[2]int{ev.Row, ev.Col}] = ev
	case EventMessage:
		h.message = ev.Text
	case EventClear:
		h.message = ""
	}
}

// snapshot returns the stored frame as a single event, bottom row first.
func (h *Hub) snapshot() Event {
	frame := Event{Event: EventFrame, Rows: h.rows, Cols: h.cols, Text: h.message}
	for row := 0; row < h.rows; row++ {
		for col := 0; col < h.cols; col++ {
			if ev, ok := h.cells[[2]int{row, col}]; ok {
				frame.Frame = append(frame.Frame, ev)
			}
		}
	}
	return frame
}

// registerClient adds a client and replays the current frame to it
func (h *Hub) registerClient(client *Client) {
	h.clients[client] = true

	if data, err := json.Marshal(h.snapshot()); err != nil {
		log.Printf("Failed to marshal frame: %v", err)
	} else {
		client.send <- data
	}

	log.Printf("Spectator registered (total clients: %d)", len(h.clients))
}

// unregisterClient removes a client
func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		log.Printf("Spectator unregistered (remaining clients: %d)", len(h.clients))
	}
}

// broadcastEvent sends an event to all clients
func (h *Hub) broadcastEvent(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Failed to marshal broadcast event: %v", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.unregisterClient(client)
		}
	}
}

// readPump drains the connection so that pongs and close frames are seen
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Spectators cannot send moves
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps events from the hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued events to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
