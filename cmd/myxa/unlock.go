package main

import (
	"flag"

	"github.com/myxa-lang/myxa"
)

const unlockShortHelp = `Clear the local package's lock`
const unlockLongHelp = `
Removes the package's lock entirely. Fails with NoLock if it has none.
`

type unlockCommand struct{}

func (cmd *unlockCommand) Name() string      { return "unlock" }
func (cmd *unlockCommand) Args() string      { return "" }
func (cmd *unlockCommand) ShortHelp() string { return unlockShortHelp }
func (cmd *unlockCommand) LongHelp() string  { return unlockLongHelp }
func (cmd *unlockCommand) Register(fs *flag.FlagSet) {}

func (cmd *unlockCommand) Run(ctx *appContext, args []string) error {
	pkg, err := myxa.Load(ctx.WorkingDir)
	if err != nil {
		return err
	}

	if err := myxa.Unlock(pkg); err != nil {
		return err
	}

	if err := myxa.Save(ctx.WorkingDir, pkg); err != nil {
		return err
	}

	ctx.Logger.Infof("unlocked %s", pkg.Info.Name)
	return nil
}
