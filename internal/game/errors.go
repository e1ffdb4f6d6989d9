package game

import "errors"

var (
	// ErrNoExit indicates movement was attempted in a direction with no exit.
	ErrNoExit = errors.New("no exit in that direction")
	// ErrNoExits indicates a room has no exits at all.
	ErrNoExits = errors.New("there are no exits")
	// ErrNotFound indicates a named target is not present in the room.
	ErrNotFound = errors.New("not found")
	// ErrNameTaken indicates another connected player already uses the name.
	ErrNameTaken = errors.New("that name is already taken")
	// ErrUnknownRoom indicates a room id that is not part of the world graph.
	ErrUnknownRoom = errors.New("unknown room")
)
