package commands

import (
	"errors"
	"fmt"

	"Duskmire/internal/game"
)

var Move = Define(Definition{
	Name:        "north",
	Aliases:     []string{"n", "east", "e", "south", "s", "west", "w"},
	Usage:       "north|east|south|west",
	Description: "move through an exit (n/e/s/w)",
}, func(ctx *Context) bool {
	dir, ok := game.ParseDirection(ctx.Input)
	if !ok {
		ctx.Player.Send("Which way?")
		return false
	}

	err := ctx.Player.Move(ctx.World, dir)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNoExit):
		exits := "[]"
		if room, ok := ctx.World.Room(ctx.Player.Room()); ok {
			exits = game.FormatExits(room.Exits)
		}
		ctx.Player.Send(fmt.Sprintf("You cannot go that way. Exits: %s", exits))
	case errors.Is(err, game.ErrUnknownRoom):
		ctx.Player.Send("It's dark here.")
	default:
		ctx.Player.Send(err.Error())
	}
	return false
})
