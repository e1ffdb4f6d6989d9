package game

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// RoomID identifies a room in the world graph. Zero is reserved for
// "nowhere": dead or disconnected entities point there.
type RoomID int

// RoomNone marks an entity as removed from the world.
const RoomNone RoomID = 0

// spawnCooldown is the room-wide number of ticks between spawn attempts.
const spawnCooldown = 10

// SpawnRule keeps a room populated with a steady-state number of mobs cut
// from one template. current tracks live instances, wherever they wander.
type SpawnRule struct {
	Template *MobTemplate
	Desired  int

	current int
}

// Current returns the number of live instances attributed to the rule.
func (s *SpawnRule) Current() int {
	return s.current
}

// Room is a node in the world graph and the unit of concurrency control:
// the occupant maps and spawn counters may only be touched while holding
// the room's lock. Exits are immutable after world load.
type Room struct {
	ID          RoomID
	Title       string
	Description string
	Exits       map[Direction]RoomID

	mu        sync.Mutex
	players   map[string]*Player
	mobs      map[uuid.UUID]*Mob
	spawns    []*SpawnRule
	spawnLock int
}

// NewRoom constructs an empty room.
func NewRoom(id RoomID, title, description string, exits map[Direction]RoomID) *Room {
	if exits == nil {
		exits = make(map[Direction]RoomID)
	}
	return &Room{
		ID:          id,
		Title:       title,
		Description: description,
		Exits:       exits,
		players:     make(map[string]*Player),
		mobs:        make(map[uuid.UUID]*Mob),
	}
}

// AddSpawnRule registers a spawn rule. Rules are evaluated in the order
// they were added.
func (r *Room) AddSpawnRule(t *MobTemplate, desired int) *SpawnRule {
	rule := &SpawnRule{Template: t, Desired: desired}
	r.mu.Lock()
	r.spawns = append(r.spawns, rule)
	r.mu.Unlock()
	return rule
}

// broadcastLocked sends text to every player present. Callers must hold the
// room lock, which pins the announcement order to the mutation order any
// concurrent reader of the occupant map observes.
func (r *Room) broadcastLocked(text string) {
	for _, p := range r.players {
		p.Send(text)
	}
}

// Broadcast sends text to every player currently in the room.
func (r *Room) Broadcast(text string) {
	r.mu.Lock()
	r.broadcastLocked(text)
	r.mu.Unlock()
}

// Enter adds a player to the room. Occupants are told first, so the
// entering player never sees its own arrival line; it receives the full
// room description instead.
func (r *Room) Enter(p *Player) {
	r.mu.Lock()
	r.broadcastLocked(p.Name + " enters.")
	r.players[p.Name] = p
	r.mu.Unlock()

	p.setRoom(r.ID)
	p.Send(r.Describe())
}

// Leave moves the player through the exit in the given direction. With no
// matching exit, ErrNoExit is returned and nothing changes. Otherwise the
// player is removed here, enters the destination, and the remaining
// occupants of this room are told afterwards. The two room locks are never
// held at once.
func (r *Room) Leave(w *World, p *Player, dir Direction) error {
	target, ok := r.Exits[dir]
	if !ok {
		return ErrNoExit
	}
	next, ok := w.Room(target)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRoom, target)
	}

	r.mu.Lock()
	delete(r.players, p.Name)
	r.mu.Unlock()

	next.Enter(p)
	r.Broadcast(p.Name + " leaves.")
	return nil
}

// AddMob places a mob in the room and announces its arrival.
func (r *Room) AddMob(m *Mob) {
	r.mu.Lock()
	r.mobs[m.ID] = m
	r.mu.Unlock()

	m.room = r.ID
	r.Broadcast(m.FormatEnter())
}

// MoveMob walks a mob through an exit, announcing its departure to the room
// it left.
func (r *Room) MoveMob(w *World, m *Mob, dir Direction) {
	target, ok := r.Exits[dir]
	if !ok {
		return
	}
	next, ok := w.Room(target)
	if !ok {
		return
	}

	r.mu.Lock()
	delete(r.mobs, m.ID)
	r.mu.Unlock()

	next.AddMob(m)
	r.Broadcast(m.FormatLeave(dir))
}

// spawn attempts to restock the room's spawn rules. The room-wide cooldown
// gates the whole pass: while it runs down, no rule is even considered.
// Each successful spawn re-arms the cooldown, so at most one mob appears
// per room per tick.
func (r *Room) spawn(w *World) {
	for _, rule := range r.spawns {
		r.mu.Lock()
		if r.spawnLock > 0 {
			r.mu.Unlock()
			return
		}
		if rule.current >= rule.Desired {
			r.mu.Unlock()
			continue
		}
		rule.current++
		r.spawnLock += spawnCooldown
		r.mu.Unlock()

		log.Printf("spawning %s in room %d", rule.Template.Name, r.ID)
		r.AddMob(rule.Template.NewMob(r.ID))
	}
}

// noteDeath consumes a death event for a mob this room spawned, freeing a
// population slot on the matching rule.
func (r *Room) noteDeath(ev DeathEvent) {
	r.mu.Lock()
	for _, rule := range r.spawns {
		if rule.Template.Name == ev.Template && rule.current > 0 {
			rule.current--
			break
		}
	}
	r.mu.Unlock()
}

// Update runs one simulation tick for the room: the spawn cooldown burns
// down, spawn rules restock, then every player and every mob present is
// advanced. Updates walk a snapshot of the occupant maps taken at the start
// of the tick, so entities that move or die mid-tick cannot skip others.
func (r *Room) Update(w *World) {
	r.mu.Lock()
	if r.spawnLock > 0 {
		r.spawnLock--
	}
	r.mu.Unlock()

	r.spawn(w)

	r.mu.Lock()
	players := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	mobs := make([]*Mob, 0, len(r.mobs))
	for _, m := range r.mobs {
		mobs = append(mobs, m)
	}
	r.mu.Unlock()

	for _, p := range players {
		p.update(w)
	}
	for _, m := range mobs {
		m.update(w)
	}
}

// MobByName finds a mob in the room by its display name.
func (r *Room) MobByName(name string) (*Mob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mobByNameLocked(name)
}

func (r *Room) mobByNameLocked(name string) (*Mob, error) {
	for _, m := range r.mobs {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// RandomExit picks a uniformly random exit direction.
func (r *Room) RandomExit() (Direction, error) {
	if len(r.Exits) == 0 {
		return "", ErrNoExits
	}
	dirs := make([]Direction, 0, len(r.Exits))
	for dir := range r.Exits {
		dirs = append(dirs, dir)
	}
	return dirs[rand.Intn(len(dirs))], nil
}

// Describe renders the full room view: title, body, exit list, and the
// mobs present.
func (r *Room) Describe() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.Title)
	b.WriteString("\n\n")
	b.WriteString(r.Description)
	b.WriteString("\n\nExits: ")
	b.WriteString(FormatExits(r.Exits))
	b.WriteString("\n")

	r.mu.Lock()
	for _, m := range r.mobs {
		b.WriteString("\n")
		b.WriteString(m.FormatPresent())
	}
	r.mu.Unlock()
	return b.String()
}

// Players returns a snapshot of the names present in the room.
func (r *Room) Players() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.players))
	for name := range r.players {
		names = append(names, name)
	}
	return names
}

// Mobs returns a snapshot of the mobs present in the room.
func (r *Room) Mobs() []*Mob {
	r.mu.Lock()
	defer r.mu.Unlock()
	mobs := make([]*Mob, 0, len(r.mobs))
	for _, m := range r.mobs {
		mobs = append(mobs, m)
	}
	return mobs
}

// HasPlayer reports whether the named player is in the occupant map.
func (r *Room) HasPlayer(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.players[name]
	return ok
}
