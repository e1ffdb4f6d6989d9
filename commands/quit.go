package commands

var Quit = Define(Definition{
	Name:        "quit",
	Aliases:     []string{"exit"},
	Usage:       "quit",
	Description: "leave the game",
}, func(ctx *Context) bool {
	ctx.Player.Send("Farewell.")
	return true
})
