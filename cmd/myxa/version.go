package main

import (
	"flag"
	"fmt"
)

const versionShortHelp = `Print myxa's own version`
const versionLongHelp = `
Prints the version of the myxa tool itself, not of any package.
`

// toolVersion is myxa's own release version, independent of any package's
// mver.Version.
const toolVersion = "0.1.0"

type versionCommand struct{}

func (cmd *versionCommand) Name() string      { return "version" }
func (cmd *versionCommand) Args() string      { return "" }
func (cmd *versionCommand) ShortHelp() string { return versionShortHelp }
func (cmd *versionCommand) LongHelp() string  { return versionLongHelp }
func (cmd *versionCommand) Register(fs *flag.FlagSet) {}

func (cmd *versionCommand) Run(ctx *appContext, args []string) error {
	fmt.Fprintln(ctx.Logger.Out, toolVersion)
	return nil
}
