package commands

import "strings"

var List = Define(Definition{
	Name:        "list",
	Aliases:     []string{"who"},
	Usage:       "list",
	Description: "list connected adventurers",
}, func(ctx *Context) bool {
	names := ctx.World.ListPlayers()
	ctx.Player.Send("\nAdventurers\n-----------\n" + strings.Join(names, "\n"))
	return false
})
