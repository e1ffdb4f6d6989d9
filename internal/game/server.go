package game

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/text/unicode/norm"
)

// Dispatcher executes a command line for the connected player.
// Returning true indicates the connection should terminate.
type Dispatcher func(*World, *Player, string) bool

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client is served from the same process; any origin may
	// connect, as with a telnet MUD.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Server accepts WebSocket sessions and feeds their input to the command
// dispatcher.
type Server struct {
	world    *World
	dispatch Dispatcher
}

// NewServer wires a world and a command dispatcher into an HTTP handler set.
func NewServer(world *World, dispatch Dispatcher) *Server {
	return &Server{world: world, dispatch: dispatch}
}

// Handler returns the HTTP routes: the browser client at / and the game
// socket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", serveClient)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe serves the game on the provided address.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}
	session := NewSession(ws)
	go session.WritePump()
	s.handleSession(session)
}

// handleSession owns one connection from name prompt to disconnect.
func (s *Server) handleSession(session *Session) {
	defer session.Close()

	p, err := s.login(session)
	if err != nil {
		return
	}

	// Forward game output to the socket for the life of the session.
	go func() {
		for {
			select {
			case out := <-p.Output:
				session.Write(out)
			case <-session.done:
				return
			}
		}
	}()

	p.Send("Joining game as " + p.Name)
	s.world.StartRoom().Enter(p)
	log.Printf("%s joined", p.Name)

	for {
		line, err := session.ReadLine()
		if err != nil {
			break
		}
		if !p.Alive() {
			break
		}
		if line == "" {
			continue
		}
		if quit := s.dispatch(s.world, p, line); quit {
			break
		}
	}

	s.world.Disconnect(p)
	log.Printf("%s disconnected", p.Name)
}

// login prompts until the client supplies a usable, unclaimed name. Names
// are NFC-normalized so visually identical input cannot yield two distinct
// registry keys.
func (s *Server) login(session *Session) (*Player, error) {
	session.Write("What is your name?")
	for {
		name, err := session.ReadLine()
		if err != nil {
			return nil, err
		}
		name = norm.NFC.String(name)
		if name == "" {
			session.Write("A name is required. What is your name?")
			continue
		}
		p, err := s.world.AddPlayer(name)
		if errors.Is(err, ErrNameTaken) {
			session.Write("That name is already taken. What is your name?")
			continue
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

const clientPage = `<!DOCTYPE html>
<html>
<head><title>Duskmire</title></head>
<body>
<h1>Duskmire</h1>
<form action="" onsubmit="sendMessage(event)">
    <input type="text" id="input" autocomplete="off" autofocus/>
    <button>Send</button>
</form>
<pre id="log"></pre>
<script>
    var ws = new WebSocket("ws://" + location.host + "/ws");
    ws.onmessage = function(event) {
        var log = document.getElementById("log");
        log.textContent += event.data + "\n";
        log.scrollTop = log.scrollHeight;
    };
    function sendMessage(event) {
        var input = document.getElementById("input");
        ws.send(input.value);
        input.value = "";
        event.preventDefault();
    }
</script>
</body>
</html>
`

func serveClient(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(clientPage))
}
