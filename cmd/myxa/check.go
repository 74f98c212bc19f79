package main

import (
	"flag"

	"github.com/myxa-lang/myxa"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/mver"
	"github.com/myxa-lang/myxa/internal/render"
)

const checkShortHelp = `Diff the local package against a published version`
const checkLongHelp = `
Diffs the local package's interface against the named published version (or
the latest, if none given) and reports breaking and non-breaking changes.
`

type checkCommand struct{}

func (cmd *checkCommand) Name() string      { return "check" }
func (cmd *checkCommand) Args() string      { return "[version]" }
func (cmd *checkCommand) ShortHelp() string { return checkShortHelp }
func (cmd *checkCommand) LongHelp() string  { return checkLongHelp }
func (cmd *checkCommand) Register(fs *flag.FlagSet) {}

func (cmd *checkCommand) Run(ctx *appContext, args []string) error {
	pkg, err := myxa.Load(ctx.WorkingDir)
	if err != nil {
		return err
	}

	idx, err := ctx.loadIndex()
	if err != nil {
		return err
	}

	var ref *mver.Version
	if len(args) > 0 {
		v, err := mver.Parse(args[0])
		if err != nil {
			return merr.Wrapf(merr.BadVersion, err, "%q", args[0])
		}
		ref = &v
	}

	changes, err := myxa.Check(pkg, idx, ref)
	if err != nil {
		return err
	}

	render.Diff(ctx.Logger.Out, changes)
	return nil
}
