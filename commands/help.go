package commands

import (
	"fmt"
	"strings"
)

var Help = Define(Definition{
	Name:        "help",
	Aliases:     []string{"?"},
	Usage:       "help [command]",
	Description: "list commands, or describe one",
}, func(ctx *Context) bool {
	if name := strings.TrimSpace(ctx.Arg); name != "" {
		cmd, ok := Find(name)
		if !ok {
			ctx.Player.Send(fmt.Sprintf("No command named %s. Type 'help'.", name))
			return false
		}
		ctx.Player.Send(fmt.Sprintf("\n%s\n  %s", cmd.Usage, cmd.Description))
		return false
	}

	var b strings.Builder
	b.WriteString("\nCommands\n--------")
	for _, cmd := range All() {
		b.WriteString(fmt.Sprintf("\n%-28s %s", cmd.Usage, cmd.Description))
	}
	ctx.Player.Send(b.String())
	return false
})
