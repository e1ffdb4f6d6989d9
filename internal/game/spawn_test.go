package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnTemplate(name string) *MobTemplate {
	t := &MobTemplate{Name: name, Health: 10}
	normalizeTemplate(t)
	t.Wanders = false
	return t
}

func TestSpawnNeverExceedsDesired(t *testing.T) {
	w, _, trail := twoRoomWorld()
	rule := trail.AddSpawnRule(spawnTemplate("a rat"), 2)

	for tick := 0; tick < 50; tick++ {
		trail.Update(w)
		assert.LessOrEqual(t, rule.Current(), 2, "rule current exceeded desired on tick %d", tick)
		assert.LessOrEqual(t, len(trail.Mobs()), 2, "room mob count exceeded desired on tick %d", tick)
	}
	assert.Equal(t, 2, rule.Current(), "population never reached steady state")
}

func TestSpawnCooldownGatesWholePass(t *testing.T) {
	w, _, trail := twoRoomWorld()
	first := trail.AddSpawnRule(spawnTemplate("a rat"), 1)
	second := trail.AddSpawnRule(spawnTemplate("a bat"), 1)

	trail.Update(w)

	// The first spawn arms the room-wide cooldown, so the second rule is
	// not even considered this tick.
	assert.Equal(t, 1, first.Current())
	assert.Equal(t, 0, second.Current())
	assert.Len(t, trail.Mobs(), 1, "more than one spawn in a single tick")
}

func TestDeathFreesExactlyOneSlot(t *testing.T) {
	w, _, trail := twoRoomWorld()
	rule := trail.AddSpawnRule(spawnTemplate("a rat"), 1)

	trail.Update(w)
	mobs := trail.Mobs()
	require.Len(t, mobs, 1)
	require.Equal(t, 1, rule.Current())

	mob := mobs[0]
	died := mob.takeDamage(w, 1000)
	require.True(t, died)

	assert.Empty(t, trail.Mobs(), "dead mob still present in room")
	assert.Equal(t, RoomNone, mob.Room(), "dead mob still has a location")
	assert.Equal(t, 0, rule.Current(), "death did not free the spawn slot")

	// A second death report for the same template must not drive the
	// counter negative.
	trail.noteDeath(DeathEvent{ID: mob.ID, Template: mob.template})
	assert.Equal(t, 0, rule.Current())
}

func TestWanderingMobDeathReportsToSpawnRoom(t *testing.T) {
	w, clearing, trail := twoRoomWorld()
	rule := trail.AddSpawnRule(spawnTemplate("a rat"), 1)

	trail.Update(w)
	mobs := trail.Mobs()
	require.Len(t, mobs, 1)
	mob := mobs[0]

	// Walk the mob into the other room, then kill it there.
	trail.MoveMob(w, mob, South)
	require.Len(t, clearing.Mobs(), 1)
	require.Empty(t, trail.Mobs())

	mob.takeDamage(w, 1000)
	assert.Equal(t, 0, rule.Current(), "death abroad did not reach the spawning room")
	assert.Empty(t, clearing.Mobs())
}
