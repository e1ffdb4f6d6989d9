package game

import "fmt"

// Combat pairs one player with one mob. The session lives until either side
// dies or the player disconnects; one exchange of blows resolves per tick.
type Combat struct {
	target           *Mob
	playerInitiative bool
}

// Target exposes the mob this session is fighting.
func (c *Combat) Target() *Mob {
	return c.target
}

// release frees the session's mob so it resumes autonomous behavior. Used
// whenever a session ends without the mob dying: player death, disconnect,
// or re-targeting.
func (c *Combat) release(w *World) {
	if c.target == nil {
		return
	}
	if r, ok := w.Room(c.target.room); ok {
		r.mu.Lock()
		c.target.inCombat = false
		r.mu.Unlock()
	}
}

// update resolves one combat exchange. Both sides act every tick; initiative
// only governs the order the two blows are narrated and applied in. A dead
// or missing target tears the session down without acting.
func (c *Combat) update(w *World, p *Player) {
	mob := c.target
	if mob == nil || mob.room == RoomNone {
		p.endCombat()
		return
	}

	toMob := p.Damage.Roll()
	toPlayer := mob.Damage.Roll()

	if c.playerInitiative {
		if c.playerBlow(w, p, mob, toMob) {
			return
		}
		c.mobBlow(w, p, mob, toPlayer)
		return
	}
	if c.mobBlow(w, p, mob, toPlayer) {
		return
	}
	c.playerBlow(w, p, mob, toMob)
}

// playerBlow applies the player's strike. It reports whether the exchange
// is over because the mob died.
func (c *Combat) playerBlow(w *World, p *Player, mob *Mob, damage int) bool {
	p.Send(fmt.Sprintf("You attack %s for %d damage.", mob.Name, damage))
	if mob.takeDamage(w, damage) {
		p.endCombat()
		return true
	}
	return false
}

// mobBlow applies the mob's counter. It reports whether the exchange is over
// because the player died.
func (c *Combat) mobBlow(w *World, p *Player, mob *Mob, damage int) bool {
	p.Send(fmt.Sprintf("%s attacks you for %d damage.", Capitalize(mob.Name), damage))
	return p.takeDamage(w, damage)
}
