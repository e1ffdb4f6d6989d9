package game

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// World holds the room graph and the registry of connected players. Rooms
// are created once at load time and never added or removed afterwards, so
// reading the graph needs no locking; the player registry has its own lock,
// independent of any room lock, because name lookups must work no matter
// which room the player occupies.
type World struct {
	rooms     map[RoomID]*Room
	roomOrder []RoomID
	start     RoomID

	mu      sync.Mutex
	players map[string]*Player
}

// NewWorld loads the room graph from the area files under areasPath.
func NewWorld(areasPath string, start RoomID) (*World, error) {
	rooms, err := LoadAreas(areasPath)
	if err != nil {
		return nil, err
	}
	w := NewWorldWithRooms(rooms)
	if _, ok := w.rooms[start]; !ok {
		return nil, fmt.Errorf("%w: start room %d", ErrUnknownRoom, start)
	}
	w.start = start
	return w, nil
}

// NewWorldWithRooms constructs a world around a prebuilt room graph. The
// room update order is fixed at construction and stable for the process
// lifetime.
func NewWorldWithRooms(rooms map[RoomID]*Room) *World {
	order := make([]RoomID, 0, len(rooms))
	for id := range rooms {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	start := RoomNone
	if len(order) > 0 {
		start = order[0]
	}
	return &World{
		rooms:     rooms,
		roomOrder: order,
		start:     start,
		players:   make(map[string]*Player),
	}
}

// Room looks up a room by id.
func (w *World) Room(id RoomID) (*Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// StartRoom returns the room new players are placed in.
func (w *World) StartRoom() *Room {
	return w.rooms[w.start]
}

// AddPlayer registers a newly named player. Names are the registry key, so
// a name held by a concurrently connected player is rejected rather than
// silently replaced.
func (w *World) AddPlayer(name string) (*Player, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.players[name]; exists {
		return nil, ErrNameTaken
	}
	p := NewPlayer(name)
	w.players[name] = p
	return p, nil
}

// RemovePlayer drops a player from the registry. Missing names are ignored
// so death and disconnect can both call it.
func (w *World) RemovePlayer(name string) {
	w.mu.Lock()
	delete(w.players, name)
	w.mu.Unlock()
}

// FindPlayer returns the connected player with the given name.
func (w *World) FindPlayer(name string) (*Player, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[name]
	return p, ok
}

// ListPlayers returns the names of all connected players, sorted.
func (w *World) ListPlayers() []string {
	w.mu.Lock()
	names := make([]string, 0, len(w.players))
	for name := range w.players {
		names = append(names, name)
	}
	w.mu.Unlock()
	sort.Strings(names)
	return names
}

// Disconnect removes a player from gameplay when its session goes away:
// the room occupants are told, membership is cleared, and the registry
// entry is dropped.
func (w *World) Disconnect(p *Player) {
	p.mu.Lock()
	room := p.room
	combat := p.combat
	p.combat = nil
	p.room = RoomNone
	p.alive = false
	p.mu.Unlock()

	if combat != nil {
		combat.release(w)
	}

	if r, ok := w.Room(room); ok {
		r.mu.Lock()
		delete(r.players, p.Name)
		r.broadcastLocked(p.Name + " leaves.")
		r.mu.Unlock()
	}
	w.RemovePlayer(p.Name)
}

// Advance runs one simulation tick over every room in the fixed order. A
// panic inside a single room's update is logged and contained so one bad
// room cannot halt the scheduler.
func (w *World) Advance() {
	for _, id := range w.roomOrder {
		w.updateRoom(w.rooms[id])
	}
}

func (w *World) updateRoom(r *Room) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("room %d: update panic: %v", r.ID, err)
		}
	}()
	r.Update(w)
}
