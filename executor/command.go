package executor

import (
	"github.com/Berison/gocounter/errs"
	"github.com/Berison/gocounter/types"
)

const commandPrefix = ":"

const (
	CommandHelp types.CommandName = "help"
	CommandList types.CommandName = "list"
)

// Commands はREPLで使えるメタコマンドと説明の一覧
var Commands = []struct {
	Name        types.CommandName
	Description string
}{
	{Name: CommandHelp, Description: "Show usage"},
	{Name: CommandList, Description: "List declared variables"},
}

func (e *Executor) runCommand(name types.CommandName) error {
	switch name {
	case CommandHelp:
		e.printHelp()
	case CommandList:
		e.printDecls(e.declRegistry.Decls())
	default:
		return errs.NewBadInputError("unknown command: " + commandPrefix + string(name))
	}
	return nil
}
