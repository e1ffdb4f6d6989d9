package commands

import "fmt"

var Say = Define(Definition{
	Name:        "say",
	Usage:       "say <message>",
	Description: "chat to the room",
}, func(ctx *Context) bool {
	msg := ctx.Arg
	if msg == "" {
		ctx.Player.Send("Say what?")
		return false
	}
	room, ok := ctx.World.Room(ctx.Player.Room())
	if !ok {
		ctx.Player.Send("Nobody can hear you.")
		return false
	}
	room.Broadcast(fmt.Sprintf("%s says %s", ctx.Player.Name, msg))
	return false
})
