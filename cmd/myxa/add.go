package main

import (
	"flag"

	"github.com/myxa-lang/myxa"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/mver"
)

const addShortHelp = `Add a direct dependency to the local package`
const addLongHelp = `
Adds dep-name as a direct dependency. If version is omitted, the latest
version published in the index is used.
`

type addCommand struct{}

func (cmd *addCommand) Name() string      { return "add" }
func (cmd *addCommand) Args() string      { return "<dep-name> [version]" }
func (cmd *addCommand) ShortHelp() string { return addShortHelp }
func (cmd *addCommand) LongHelp() string  { return addLongHelp }
func (cmd *addCommand) Register(fs *flag.FlagSet) {}

func (cmd *addCommand) Run(ctx *appContext, args []string) error {
	if len(args) < 1 {
		return merr.User(merr.BadName, "add requires a dependency name")
	}
	depName := args[0]

	pkg, err := myxa.Load(ctx.WorkingDir)
	if err != nil {
		return err
	}

	idx, err := ctx.loadIndex()
	if err != nil {
		return err
	}

	var version *mver.Version
	if len(args) > 1 {
		v, err := mver.Parse(args[1])
		if err != nil {
			return merr.Wrapf(merr.BadVersion, err, "%q", args[1])
		}
		version = &v
	}

	if err := myxa.Add(pkg, depName, idx, version); err != nil {
		return err
	}

	if err := myxa.Save(ctx.WorkingDir, pkg); err != nil {
		return err
	}

	ctx.Logger.Infof("added %s %s", depName, pkg.Dependencies[depName].Version)
	return nil
}
