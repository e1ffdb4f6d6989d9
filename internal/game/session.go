package game

import (
	"strings"

	"github.com/gorilla/websocket"
)

// Session wraps a WebSocket connection with a buffered outbound queue so
// the simulation never blocks on a slow client. Outbound text is drained by
// a single write pump goroutine.
type Session struct {
	ws   *websocket.Conn
	send chan string
	done chan struct{}
}

// NewSession builds a session around an upgraded connection.
func NewSession(ws *websocket.Conn) *Session {
	return &Session{
		ws:   ws,
		send: make(chan string, outputBuffer),
		done: make(chan struct{}),
	}
}

// ReadLine blocks until the client sends a line of text.
func (s *Session) ReadLine() (string, error) {
	_, data, err := s.ws.ReadMessage()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Write queues text for the client. A vanished or saturated session drops
// the text silently.
func (s *Session) Write(text string) {
	select {
	case s.send <- text:
	case <-s.done:
	default:
	}
}

// WritePump forwards queued text to the socket until the session closes.
func (s *Session) WritePump() {
	defer s.ws.Close()
	for {
		select {
		case text := <-s.send:
			if err := s.ws.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

// Close tears the session down and releases the write pump. The server
// closes each session exactly once.
func (s *Session) Close() {
	close(s.done)
	s.ws.Close()
}
