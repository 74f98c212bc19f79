package main

import (
	"flag"

	"github.com/myxa-lang/myxa"
	"github.com/myxa-lang/myxa/internal/merr"
)

const removeShortHelp = `Remove a direct dependency from the local package`
const removeLongHelp = `
Removes dep-name from the package's direct dependencies.
`

type removeCommand struct{}

func (cmd *removeCommand) Name() string      { return "remove" }
func (cmd *removeCommand) Args() string      { return "<dep-name>" }
func (cmd *removeCommand) ShortHelp() string { return removeShortHelp }
func (cmd *removeCommand) LongHelp() string  { return removeLongHelp }
func (cmd *removeCommand) Register(fs *flag.FlagSet) {}

func (cmd *removeCommand) Run(ctx *appContext, args []string) error {
	if len(args) < 1 {
		return merr.User(merr.BadName, "remove requires a dependency name")
	}
	depName := args[0]

	pkg, err := myxa.Load(ctx.WorkingDir)
	if err != nil {
		return err
	}

	if err := myxa.Remove(pkg, depName); err != nil {
		return err
	}

	if err := myxa.Save(ctx.WorkingDir, pkg); err != nil {
		return err
	}

	ctx.Logger.Infof("removed %s", depName)
	return nil
}
