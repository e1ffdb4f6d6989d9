package game

import "sync"

const outputBuffer = 256

// Player represents a connected adventurer in the world.
type Player struct {
	Name   string
	Output chan string
	Damage DamageRange

	mu     sync.Mutex
	room   RoomID
	health int
	combat *Combat
	alive  bool
}

// NewPlayer constructs a player with the default stat block. The output
// channel is buffered so broadcasts never block the simulation on a slow
// client.
func NewPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Output: make(chan string, outputBuffer),
		Damage: DamageRange{Min: 4, Max: 6},
		room:   RoomNone,
		health: 10,
		alive:  true,
	}
}

// Send queues text for delivery to the player's session. A full buffer is
// treated like a vanished session and the message is dropped.
func (p *Player) Send(text string) {
	select {
	case p.Output <- text:
	default:
	}
}

// Room returns the id of the room the player occupies, or RoomNone when the
// player has been removed from gameplay.
func (p *Player) Room() RoomID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.room
}

func (p *Player) setRoom(id RoomID) {
	p.mu.Lock()
	p.room = id
	p.mu.Unlock()
}

// Health returns the player's current health.
func (p *Player) Health() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.health
}

// Alive reports whether the player is still part of the game.
func (p *Player) Alive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alive
}

// InCombat reports whether the player currently has an active combat session.
func (p *Player) InCombat() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.combat != nil
}

// Move walks the player through the exit in the given direction. ErrNoExit
// is returned unchanged so the command layer can render the exit list.
func (p *Player) Move(w *World, dir Direction) error {
	r, ok := w.Room(p.Room())
	if !ok {
		return ErrUnknownRoom
	}
	return r.Leave(w, p, dir)
}

// StartCombat opens a combat session against a mob in the player's room,
// identified by name. Initiative starts with the player.
func (p *Player) StartCombat(w *World, target string) error {
	r, ok := w.Room(p.Room())
	if !ok {
		return ErrUnknownRoom
	}

	r.mu.Lock()
	mob, err := r.mobByNameLocked(target)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	mob.inCombat = true
	r.mu.Unlock()

	p.mu.Lock()
	prev := p.combat
	p.combat = &Combat{target: mob, playerInitiative: true}
	p.mu.Unlock()

	// Re-targeting ends the old session, so its mob must be freed to
	// wander again - unless the player re-attacked the same mob.
	if prev != nil && prev.target != mob {
		prev.release(w)
	}
	return nil
}

// update advances the player by one tick, resolving one combat exchange
// when a session is active.
func (p *Player) update(w *World) {
	p.mu.Lock()
	combat := p.combat
	p.mu.Unlock()
	if combat == nil {
		return
	}
	combat.update(w, p)
}

func (p *Player) endCombat() {
	p.mu.Lock()
	p.combat = nil
	p.mu.Unlock()
}

// takeDamage applies combat damage and reports whether the player died.
func (p *Player) takeDamage(w *World, damage int) bool {
	p.mu.Lock()
	p.health -= damage
	dead := p.health < 0
	p.mu.Unlock()
	if !dead {
		return false
	}
	p.die(w)
	return true
}

// die removes the player from gameplay: the opposing mob is released from
// combat, the session is torn down, and the player leaves both the room
// occupant map and the world registry.
func (p *Player) die(w *World) {
	p.mu.Lock()
	combat := p.combat
	p.combat = nil
	room := p.room
	p.room = RoomNone
	p.alive = false
	p.mu.Unlock()

	if combat != nil {
		combat.release(w)
	}

	p.Send("You die.")

	if r, ok := w.Room(room); ok {
		r.mu.Lock()
		delete(r.players, p.Name)
		r.broadcastLocked(p.Name + " dies.")
		r.mu.Unlock()
	}
	w.RemovePlayer(p.Name)
}
