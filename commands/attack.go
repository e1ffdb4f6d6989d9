package commands

import (
	"errors"
	"fmt"
	"strings"

	"Duskmire/internal/game"
)

var Attack = Define(Definition{
	Name:        "attack",
	Aliases:     []string{"kill", "k"},
	Usage:       "attack <target>",
	Description: "engage a nearby foe in combat",
}, func(ctx *Context) bool {
	target := strings.TrimSpace(ctx.Arg)
	if target == "" {
		ctx.Player.Send("Usage: attack <target>")
		return false
	}

	err := ctx.Player.StartCombat(ctx.World, target)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNotFound):
		ctx.Player.Send(fmt.Sprintf("There's nobody named %s here.", target))
	case errors.Is(err, game.ErrUnknownRoom):
		ctx.Player.Send("It's dark here.")
	default:
		ctx.Player.Send(err.Error())
	}
	return false
})
