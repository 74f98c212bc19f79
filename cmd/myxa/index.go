package main

import (
	"flag"
	"fmt"
)

const indexShortHelp = `List published packages and versions`
const indexLongHelp = `
With no arguments, lists every package name with at least one published
version. With a name, lists that name's published versions in descending
order, consulting the on-disk cache (MYXA_CACHE) before falling back to the
index file.
`

type indexCommand struct{}

func (cmd *indexCommand) Name() string      { return "index" }
func (cmd *indexCommand) Args() string      { return "[name]" }
func (cmd *indexCommand) ShortHelp() string { return indexShortHelp }
func (cmd *indexCommand) LongHelp() string  { return indexLongHelp }
func (cmd *indexCommand) Register(fs *flag.FlagSet) {}

func (cmd *indexCommand) Run(ctx *appContext, args []string) error {
	idx, err := ctx.loadIndex()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, name := range idx.Names() {
			fmt.Fprintln(ctx.Logger.Out, name)
		}
		return nil
	}

	name := args[0]
	ch := ctx.openCache()
	defer ch.Close()

	versions, ok := ch.GetVersionsSorted(name)
	if !ok {
		versions, err = idx.ListVersionsSorted(name)
		if err != nil {
			return err
		}
		_ = ch.PutVersionsSorted(name, versions, 0)
	}

	for _, v := range versions {
		fmt.Fprintln(ctx.Logger.Out, v)
	}
	return nil
}
