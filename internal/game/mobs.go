package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// DamageRange bounds the damage an attack may deal, inclusive on both ends.
type DamageRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Roll draws a uniform random damage value from the range.
func (d DamageRange) Roll() int {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + rand.Intn(d.Max-d.Min+1)
}

// MobTemplate describes a kind of mob that spawn rules can instantiate.
type MobTemplate struct {
	Name         string      `json:"name"`
	Level        int         `json:"level"`
	Strength     int         `json:"strength"`
	Constitution int         `json:"constitution"`
	Dexterity    int         `json:"dexterity"`
	Intelligence int         `json:"intelligence"`
	Health       int         `json:"health"`
	Damage       DamageRange `json:"damage"`
	MoveCooldown int         `json:"move_cooldown"`
	MoveChance   float64     `json:"move_chance"`
	EnterText    string      `json:"enter_text"`
	LeaveText    string      `json:"leave_text"`
	PresentText  string      `json:"present_text"`
	Wanders      bool        `json:"wanders"`
}

func normalizeTemplate(t *MobTemplate) {
	if t.Intelligence == 0 {
		t.Intelligence = 10
	}
	if t.Health == 0 {
		t.Health = 10
	}
	if t.Damage == (DamageRange{}) {
		t.Damage = DamageRange{Min: 1, Max: 2}
	}
	if t.MoveCooldown == 0 {
		t.MoveCooldown = 20
	}
	if t.MoveChance == 0 {
		t.MoveChance = 0.1
	}
	if t.EnterText == "" {
		t.EnterText = "arrives"
	}
	if t.LeaveText == "" {
		t.LeaveText = "leaves"
	}
	if t.PresentText == "" {
		t.PresentText = "is here"
	}
}

// NewMob instantiates a fresh mob from the template, remembering the room
// that spawned it so its death can be reported back for spawn bookkeeping.
func (t *MobTemplate) NewMob(origin RoomID) *Mob {
	return &Mob{
		ID:           uuid.New(),
		Name:         t.Name,
		Level:        t.Level,
		Strength:     t.Strength,
		Constitution: t.Constitution,
		Dexterity:    t.Dexterity,
		Intelligence: t.Intelligence,
		Health:       t.Health,
		Damage:       t.Damage,
		MoveCooldown: t.MoveCooldown,
		MoveChance:   t.MoveChance,
		EnterText:    t.EnterText,
		LeaveText:    t.LeaveText,
		PresentText:  t.PresentText,
		Wanders:      t.Wanders,
		template:     t.Name,
		origin:       origin,
		room:         RoomNone,
	}
}

// Mob is an autonomous entity living in the world.
type Mob struct {
	ID           uuid.UUID
	Name         string
	Level        int
	Strength     int
	Constitution int
	Dexterity    int
	Intelligence int
	Health       int
	Damage       DamageRange
	MoveCooldown int
	MoveChance   float64
	EnterText    string
	LeaveText    string
	PresentText  string
	Wanders      bool

	template string
	origin   RoomID

	// Mutable simulation state. room changes only on the tick goroutine;
	// moveLock and inCombat are guarded by the lock of the room the mob
	// currently occupies.
	room     RoomID
	moveLock int
	inCombat bool
}

// Room returns the id of the room the mob currently occupies, or RoomNone
// when the mob has been removed from the world.
func (m *Mob) Room() RoomID {
	return m.room
}

// FormatEnter renders the line shown when the mob enters a room.
func (m *Mob) FormatEnter() string {
	return Capitalize(m.Name) + " " + m.EnterText + "."
}

// FormatLeave renders the line shown when the mob leaves through an exit.
func (m *Mob) FormatLeave(dir Direction) string {
	return Capitalize(m.Name) + " " + m.LeaveText + " " + dir.String() + "."
}

// FormatPresent renders the "is here" line for room descriptions.
func (m *Mob) FormatPresent() string {
	return Capitalize(m.Name) + " " + m.PresentText + "."
}

// update advances the mob by one tick. Mobs without a location are inert,
// and a fighting mob is frozen entirely so its move cooldown does not burn
// down during combat and let it bolt the instant the fight ends.
func (m *Mob) update(w *World) {
	if m.room == RoomNone {
		return
	}
	r, ok := w.Room(m.room)
	if !ok {
		return
	}

	r.mu.Lock()
	if m.inCombat {
		r.mu.Unlock()
		return
	}
	if m.moveLock > 0 {
		m.moveLock--
		r.mu.Unlock()
		return
	}
	// The chance gate gives wandering some slack: an eligible mob retries
	// every tick until the draw succeeds.
	wander := m.Wanders && len(r.Exits) > 0 && rand.Float64() <= m.MoveChance
	if wander {
		m.moveLock += m.MoveCooldown
	}
	r.mu.Unlock()

	if !wander {
		return
	}
	dir, err := r.RandomExit()
	if err != nil {
		return
	}
	r.MoveMob(w, m, dir)
}

// takeDamage applies combat damage and reports whether the mob died.
func (m *Mob) takeDamage(w *World, damage int) bool {
	m.Health -= damage
	if m.Health >= 0 {
		return false
	}
	m.die(w)
	return true
}

// die removes the mob from its room, announces the death, and reports a
// death event back to the room that spawned it.
func (m *Mob) die(w *World) {
	if r, ok := w.Room(m.room); ok {
		r.mu.Lock()
		delete(r.mobs, m.ID)
		r.broadcastLocked(Capitalize(m.Name) + " dies.")
		r.mu.Unlock()
	}
	m.room = RoomNone
	m.inCombat = false

	if origin, ok := w.Room(m.origin); ok {
		origin.noteDeath(DeathEvent{ID: m.ID, Template: m.template})
	}
}

// DeathEvent reports that a spawned mob instance has died. It is consumed
// by the spawning room's bookkeeping to free up a population slot.
type DeathEvent struct {
	ID       uuid.UUID
	Template string
}
