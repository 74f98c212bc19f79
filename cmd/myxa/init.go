package main

import (
	"flag"

	"github.com/myxa-lang/myxa"
)

const initShortHelp = `Create a new package manifest in the current (or given) directory`
const initLongHelp = `
Creates package.json in the given directory (or the current directory, if
none is given) with the package's name, an empty dependency set, and an
empty interface model.
`

type initCommand struct {
	name        string
	description string
}

func (cmd *initCommand) Name() string      { return "init" }
func (cmd *initCommand) Args() string      { return "[path]" }
func (cmd *initCommand) ShortHelp() string { return initShortHelp }
func (cmd *initCommand) LongHelp() string  { return initLongHelp }

func (cmd *initCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.name, "name", "", "the new package's name (required)")
	fs.StringVar(&cmd.description, "description", "", "the new package's description")
}

func (cmd *initCommand) Run(ctx *appContext, args []string) error {
	path := ctx.WorkingDir
	if len(args) > 0 {
		path = args[0]
	}

	pkg, err := myxa.Init(path, cmd.name, cmd.description)
	if err != nil {
		return err
	}

	ctx.Logger.Infof("initialized %s %s at %s", pkg.Info.Name, pkg.Info.Version, path)
	return nil
}
