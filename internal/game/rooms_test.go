package game

import (
	"errors"
	"sync"
	"testing"
)

func twoRoomWorld() (*World, *Room, *Room) {
	clearing := NewRoom(1, "Forest Clearing", "A clearing in the forest.", map[Direction]RoomID{North: 2})
	trail := NewRoom(2, "A forest trail", "A trail through a forest.", map[Direction]RoomID{South: 1})
	w := NewWorldWithRooms(map[RoomID]*Room{1: clearing, 2: trail})
	return w, clearing, trail
}

func drainOutput(p *Player) []string {
	var out []string
	for {
		select {
		case msg := <-p.Output:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestEnterDoesNotAnnounceToSelf(t *testing.T) {
	_, clearing, _ := twoRoomWorld()
	first := NewPlayer("hero")
	second := NewPlayer("rogue")

	clearing.Enter(first)
	drainOutput(first)

	clearing.Enter(second)

	for _, msg := range drainOutput(second) {
		if msg == "rogue enters." {
			t.Fatalf("entering player saw its own arrival broadcast")
		}
	}
	msgs := drainOutput(first)
	if len(msgs) != 1 || msgs[0] != "rogue enters." {
		t.Fatalf("occupant broadcasts = %q, want [%q]", msgs, "rogue enters.")
	}
}

func TestLeaveWithoutExitChangesNothing(t *testing.T) {
	w, clearing, trail := twoRoomWorld()
	p := NewPlayer("hero")
	clearing.Enter(p)

	err := clearing.Leave(w, p, West)
	if !errors.Is(err, ErrNoExit) {
		t.Fatalf("Leave() error = %v, want ErrNoExit", err)
	}
	if !clearing.HasPlayer("hero") {
		t.Fatalf("player missing from origin room after failed move")
	}
	if trail.HasPlayer("hero") {
		t.Fatalf("player leaked into destination room after failed move")
	}
	if p.Room() != clearing.ID {
		t.Fatalf("player location = %d, want %d", p.Room(), clearing.ID)
	}
}

func TestMoveRoundTripRestoresOccupancy(t *testing.T) {
	w, clearing, trail := twoRoomWorld()
	p := NewPlayer("hero")
	clearing.Enter(p)

	if err := p.Move(w, North); err != nil {
		t.Fatalf("move north: %v", err)
	}
	if !trail.HasPlayer("hero") || clearing.HasPlayer("hero") {
		t.Fatalf("player not solely in trail after moving north")
	}
	if err := p.Move(w, South); err != nil {
		t.Fatalf("move south: %v", err)
	}
	if !clearing.HasPlayer("hero") || trail.HasPlayer("hero") {
		t.Fatalf("player not solely in clearing after round trip")
	}
	if p.Room() != clearing.ID {
		t.Fatalf("player location = %d, want %d", p.Room(), clearing.ID)
	}
}

func TestOppositeConcurrentMovesStayConsistent(t *testing.T) {
	w, clearing, trail := twoRoomWorld()
	a := NewPlayer("alice")
	b := NewPlayer("bob")
	clearing.Enter(a)
	trail.Enter(b)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = a.Move(w, North)
	}()
	go func() {
		defer wg.Done()
		_ = b.Move(w, South)
	}()
	wg.Wait()

	for _, p := range []*Player{a, b} {
		room, ok := w.Room(p.Room())
		if !ok {
			t.Fatalf("%s has no room after concurrent moves", p.Name)
		}
		if !room.HasPlayer(p.Name) {
			t.Fatalf("%s location %d does not match room membership", p.Name, p.Room())
		}
	}
	total := len(clearing.Players()) + len(trail.Players())
	if total != 2 {
		t.Fatalf("total occupancy = %d, want 2", total)
	}
}

func TestRandomExitWithNoExits(t *testing.T) {
	r := NewRoom(3, "A pit", "There is no way out.", nil)
	if _, err := r.RandomExit(); !errors.Is(err, ErrNoExits) {
		t.Fatalf("RandomExit() error = %v, want ErrNoExits", err)
	}
}

func TestFormatExitsSortsDirections(t *testing.T) {
	exits := map[Direction]RoomID{West: 1, North: 2, East: 3}
	const want = "[e, n, w]"
	for i := 0; i < 5; i++ {
		if got := FormatExits(exits); got != want {
			t.Fatalf("FormatExits() = %q, want %q", got, want)
		}
	}
	if got := FormatExits(nil); got != "[]" {
		t.Fatalf("FormatExits(nil) = %q, want %q", got, "[]")
	}
}

func TestMobByNameMatches(t *testing.T) {
	_, _, trail := twoRoomWorld()
	tmpl := &MobTemplate{Name: "a rat"}
	normalizeTemplate(tmpl)
	trail.AddMob(tmpl.NewMob(trail.ID))

	if _, err := trail.MobByName("A Rat"); err != nil {
		t.Fatalf("MobByName() case-insensitive match failed: %v", err)
	}
	if _, err := trail.MobByName("a dragon"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MobByName() error = %v, want ErrNotFound", err)
	}
}
