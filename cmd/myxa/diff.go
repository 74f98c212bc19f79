package main

import (
	"flag"

	"github.com/myxa-lang/myxa/internal/diff"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/mver"
	"github.com/myxa-lang/myxa/internal/render"
)

const diffShortHelp = `Diff two published versions of a package in the index`
const diffLongHelp = `
Compares two published versions of name directly against each other,
independent of the local package's own manifest. Unlike check, which always
compares the local package against one published reference, diff never
touches package.json.
`

type diffCommand struct{}

func (cmd *diffCommand) Name() string      { return "diff" }
func (cmd *diffCommand) Args() string      { return "<name> <old-version> <new-version>" }
func (cmd *diffCommand) ShortHelp() string { return diffShortHelp }
func (cmd *diffCommand) LongHelp() string  { return diffLongHelp }
func (cmd *diffCommand) Register(fs *flag.FlagSet) {}

func (cmd *diffCommand) Run(ctx *appContext, args []string) error {
	if len(args) < 3 {
		return merr.User(merr.BadName, "diff requires <name> <old-version> <new-version>")
	}
	name := args[0]

	oldV, err := mver.Parse(args[1])
	if err != nil {
		return merr.Wrapf(merr.BadVersion, err, "%q", args[1])
	}
	newV, err := mver.Parse(args[2])
	if err != nil {
		return merr.Wrapf(merr.BadVersion, err, "%q", args[2])
	}

	idx, err := ctx.loadIndex()
	if err != nil {
		return err
	}

	oldPkg, err := idx.Get(name, oldV)
	if err != nil {
		return err
	}
	newPkg, err := idx.Get(name, newV)
	if err != nil {
		return err
	}

	changes, err := diff.Diff(name, oldPkg.Members, newPkg.Members)
	if err != nil {
		return err
	}

	render.Diff(ctx.Logger.Out, changes)
	return nil
}
