package commands

import (
	"fmt"
	"strings"
)

var Whisper = Define(Definition{
	Name:        "whisper",
	Aliases:     []string{"t", "tell", "whisp"},
	Usage:       "whisper <player> <message>",
	Description: "send a private message",
}, func(ctx *Context) bool {
	parts := strings.SplitN(ctx.Arg, " ", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		ctx.Player.Send("Usage: whisper <player> <message>")
		return false
	}
	target, msg := parts[0], strings.TrimSpace(parts[1])

	other, ok := ctx.World.FindPlayer(target)
	if !ok {
		ctx.Player.Send(fmt.Sprintf("No player named %s online.", target))
		return false
	}
	other.Send(fmt.Sprintf("%s whispers: %s", ctx.Player.Name, msg))
	ctx.Player.Send(fmt.Sprintf("You whisper to %s: %s", target, msg))
	return false
})
