package main

import (
	"flag"

	"github.com/myxa-lang/myxa"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/mver"
)

const yankShortHelp = `Remove a published version from the index`
const yankLongHelp = `
Removes name's version from the index outright. No tombstone is left
behind: a later publish may reuse the same version number.
`

type yankCommand struct{}

func (cmd *yankCommand) Name() string      { return "yank" }
func (cmd *yankCommand) Args() string      { return "<name> <version>" }
func (cmd *yankCommand) ShortHelp() string { return yankShortHelp }
func (cmd *yankCommand) LongHelp() string  { return yankLongHelp }
func (cmd *yankCommand) Register(fs *flag.FlagSet) {}

func (cmd *yankCommand) Run(ctx *appContext, args []string) error {
	if len(args) < 2 {
		return merr.User(merr.BadName, "yank requires <name> <version>")
	}
	name := args[0]
	v, err := mver.Parse(args[1])
	if err != nil {
		return merr.Wrapf(merr.BadVersion, err, "%q", args[1])
	}

	idx, err := ctx.loadIndex()
	if err != nil {
		return err
	}

	pkg, err := idx.Get(name, v)
	if err != nil {
		return err
	}

	if err := myxa.Yank(pkg, v, idx); err != nil {
		return err
	}

	if err := ctx.saveIndex(idx); err != nil {
		return err
	}

	ctx.Logger.Infof("yanked %s %s", name, v)
	return nil
}
