package commands

var Look = Define(Definition{
	Name:        "look",
	Aliases:     []string{"l"},
	Usage:       "look",
	Description: "absorb your surroundings",
}, func(ctx *Context) bool {
	room, ok := ctx.World.Room(ctx.Player.Room())
	if !ok {
		ctx.Player.Send("It's dark here.")
		return false
	}
	ctx.Player.Send(room.Describe())
	return false
})
