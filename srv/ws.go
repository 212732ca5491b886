package srv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSMessage is the envelope for all client WebSocket messages.
type WSMessage struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`  // draft, check
	Query string `json:"query,omitempty"` // autocomplete
}

// mustMarshal marshals v to JSON or panics.
func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("json marshal: %v", err))
	}
	return b
}

// session is one live-editing connection. Reports for drafts are sent after the
// writer pauses; explicit checks run at once.
type session struct {
	id     string
	server *Server
	send   chan []byte
	ctx    context.Context
	log    *slog.Logger

	mu     sync.Mutex
	closed bool
}

// push queues data for the writer, dropping it when the queue is full or the
// session has ended.
func (c *session) push(v any) {
	data := mustMarshal(v)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		// drop if channel full
	}
}

func (c *session) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *session) sendErr(message string) {
	c.push(map[string]any{
		"type":    "error",
		"message": message,
	})
}

// runCheck checks text and pushes the report. Stale drafts are not special-cased:
// the client renders whichever report arrives last.
func (c *session) runCheck(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if int64(len(text)) > c.server.Config.MaxTextBytes {
		c.sendErr("ข้อความยาวเกินไป")
		return
	}
	report, err := c.server.check(c.ctx, text)
	if err != nil {
		if c.ctx.Err() == nil {
			c.log.Warn("live check", "error", err)
			c.sendErr("ตรวจสอบไม่สำเร็จ")
		}
		return
	}
	c.push(map[string]any{
		"type":   "report",
		"report": report,
	})
}

// HandleWS handles WebSocket connections for live checking.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &session{
		id:     uuid.NewString(),
		server: s,
		send:   make(chan []byte, 64),
		ctx:    ctx,
	}
	c.log = slog.With("session", c.id)
	limiter := NewConnectionRateLimiter()
	debounce := NewDebouncer(s.Config.Debounce, c.runCheck)

	done := make(chan struct{})
	go func() {
		writePump(conn, c.send)
		close(done)
	}()
	c.log.Debug("session opened")

	// Cleanup on disconnect
	defer func() {
		debounce.Stop()
		cancel()
		c.close()
		<-done
		conn.Close()
		c.log.Debug("session closed")
	}()

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read", "error", err)
			}
			return
		}

		allowed, disconnect := limiter.Allow(msg.Type)
		if disconnect {
			c.log.Warn("rate limit exceeded, disconnecting")
			return
		}
		if !allowed {
			c.sendErr("ส่งข้อความถี่เกินไป กรุณารอสักครู่")
			continue
		}

		switch msg.Type {
		case "draft":
			debounce.Trigger(msg.Text)

		case "check":
			debounce.Stop()
			go c.runCheck(msg.Text)

		case "autocomplete":
			c.push(map[string]any{
				"type":        "suggestions",
				"query":       msg.Query,
				"suggestions": s.suggest(msg.Query),
			})

		case "ping":
			c.push(map[string]any{"type": "pong"})

		default:
			c.sendErr(fmt.Sprintf("unknown message type: %s", msg.Type))
		}
	}
}

// writePump pumps queued messages to the WebSocket until send is closed.
func writePump(conn *websocket.Conn, send <-chan []byte) {
	for msg := range send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			// Keep draining so pushes never block.
			for range send {
			}
			return
		}
	}
}
