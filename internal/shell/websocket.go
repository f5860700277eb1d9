package shell

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/axes/internal/content"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Command is one UI instruction sent to the page.
type Command struct {
	Op      string        `json:"op"`
	Region  Region        `json:"region,omitempty"`
	Classes []string      `json:"classes,omitempty"`
	Text    string        `json:"text,omitempty"`
	Value   *string       `json:"value,omitempty"`
	Target  *ScrollTarget `json:"target,omitempty"`
	Cards   []CardCommand `json:"cards,omitempty"`
}

// CardCommand is a rendered card with its reveal delay in milliseconds.
type CardCommand struct {
	Title   string `json:"title"`
	HTML    string `json:"html"`
	Link    string `json:"link,omitempty"`
	DelayMS int64  `json:"delay_ms"`
}

// Command ops.
const (
	OpSession     = "session"
	OpError       = "error"
	OpShow        = "show"
	OpHide        = "hide"
	OpRemove      = "remove"
	OpAddClass    = "add_class"
	OpRemoveClass = "remove_class"
	OpSetText     = "set_text"
	OpSetValue    = "set_value"
	OpScrollTo    = "scroll_to"
	OpRenderCards = "render_cards"
)

// CardRenderer turns a card body into HTML.
type CardRenderer func(card content.Card) (string, error)

// commandWriter is the part of a websocket connection the surface uses.
type commandWriter interface {
	WriteJSON(v any) error
}

// WebSocketSurface implements Surface by streaming commands to a browser.
// Write failures are kept and reported by Err; later commands are dropped.
type WebSocketSurface struct {
	mu     sync.Mutex
	conn   commandWriter
	render CardRenderer
	err    error
}

// NewWebSocketSurface wraps a connection. render may be nil, in which case
// card bodies are sent as plain text.
func NewWebSocketSurface(conn commandWriter, render CardRenderer) *WebSocketSurface {
	return &WebSocketSurface{conn: conn, render: render}
}

// Err returns the first write error.
func (s *WebSocketSurface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *WebSocketSurface) send(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	if err := s.conn.WriteJSON(cmd); err != nil {
		s.err = err
		log.Printf("shell: websocket write: %v", err)
	}
}

func (s *WebSocketSurface) Show(r Region)   { s.send(Command{Op: OpShow, Region: r}) }
func (s *WebSocketSurface) Hide(r Region)   { s.send(Command{Op: OpHide, Region: r}) }
func (s *WebSocketSurface) Remove(r Region) { s.send(Command{Op: OpRemove, Region: r}) }

func (s *WebSocketSurface) AddClass(r Region, classes ...string) {
	s.send(Command{Op: OpAddClass, Region: r, Classes: classes})
}

func (s *WebSocketSurface) RemoveClass(r Region, classes ...string) {
	s.send(Command{Op: OpRemoveClass, Region: r, Classes: classes})
}

func (s *WebSocketSurface) SetText(r Region, text string) {
	s.send(Command{Op: OpSetText, Region: r, Text: text})
}

func (s *WebSocketSurface) SetValue(r Region, value string) {
	s.send(Command{Op: OpSetValue, Region: r, Value: &value})
}

func (s *WebSocketSurface) ScrollTo(target ScrollTarget) {
	s.send(Command{Op: OpScrollTo, Target: &target})
}

func (s *WebSocketSurface) RenderCards(cards []CardReveal) {
	out := make([]CardCommand, 0, len(cards))
	for _, c := range cards {
		html := c.Card.Body
		if s.render != nil {
			rendered, err := s.render(c.Card)
			if err != nil {
				log.Printf("shell: rendering card %q: %v", c.Card.Title, err)
			} else {
				html = rendered
			}
		}
		out = append(out, CardCommand{
			Title:   c.Card.Title,
			HTML:    html,
			Link:    c.Card.Link,
			DelayMS: c.Delay.Milliseconds(),
		})
	}
	s.send(Command{Op: OpRenderCards, Region: RegionFilteredView, Cards: out})
}

// Handler serves the live shell over a websocket. Each connection gets its
// own session and controller.
type Handler struct {
	source content.Source
	opts   Options
	render CardRenderer
}

// NewHandler creates a websocket Handler.
func NewHandler(source content.Source, opts Options, render CardRenderer) *Handler {
	return &Handler{source: source, opts: opts, render: render}
}

// ServeHTTP upgrades the connection and runs the event loop until the peer
// goes away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, err := h.source.Page(r.Context())
	if err != nil {
		log.Printf("shell: loading content: %v", err)
		http.Error(w, "content unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("shell: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	surface := NewWebSocketSurface(conn, h.render)
	sched := &TimerScheduler{}
	defer sched.Stop()
	ctrl := NewController(page, surface, sched, h.opts)
	defer ctrl.Close()

	surface.send(Command{Op: OpSession, Text: sessionID})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("shell: websocket read (session %s): %v", sessionID, err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			surface.send(Command{Op: OpError, Text: "invalid event format"})
			continue
		}
		if err := ctrl.Dispatch(ev); err != nil {
			surface.send(Command{Op: OpError, Text: err.Error()})
		}
		if surface.Err() != nil {
			return
		}
	}
}
