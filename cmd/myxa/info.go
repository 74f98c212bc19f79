package main

import (
	"flag"
	"fmt"

	"github.com/myxa-lang/myxa"
	"github.com/myxa-lang/myxa/internal/render"
)

const infoShortHelp = `Print the local package's identity, dependencies, lock, and interface`
const infoLongHelp = `
With no flags, prints the package's name, version, and description. Pass one
or more of -show-deps, -show-lock, -show-members to include that section;
-show-interface is an alias for -show-members.
`

type infoCommand struct {
	name string

	showDeps      bool
	showLock      bool
	showMembers   bool
	showInterface bool
}

func (cmd *infoCommand) Name() string      { return cmd.name }
func (cmd *infoCommand) Args() string      { return "[path]" }
func (cmd *infoCommand) ShortHelp() string { return infoShortHelp }
func (cmd *infoCommand) LongHelp() string  { return infoLongHelp }

func (cmd *infoCommand) Register(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.showDeps, "show-deps", false, "print the dependency table")
	fs.BoolVar(&cmd.showLock, "show-lock", false, "print the lock table")
	fs.BoolVar(&cmd.showMembers, "show-members", false, "print the interface model")
	fs.BoolVar(&cmd.showInterface, "show-interface", false, "alias for -show-members")
}

func (cmd *infoCommand) Run(ctx *appContext, args []string) error {
	path := ctx.WorkingDir
	if len(args) > 0 {
		path = args[0]
	}

	pkg, err := myxa.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Logger.Out, "%s %s\n", pkg.Info.Name, pkg.Info.Version)
	if pkg.Info.Description != "" {
		fmt.Fprintln(ctx.Logger.Out, pkg.Info.Description)
	}

	if cmd.showDeps {
		fmt.Fprintln(ctx.Logger.Out)
		render.Dependencies(ctx.Logger.Out, pkg)
	}
	if cmd.showLock {
		fmt.Fprintln(ctx.Logger.Out)
		if pkg.Lock == nil {
			fmt.Fprintln(ctx.Logger.Out, "(no lock)")
		} else {
			render.Lock(ctx.Logger.Out, pkg.Lock)
		}
	}
	if cmd.showMembers || cmd.showInterface {
		fmt.Fprintln(ctx.Logger.Out)
		render.Members(ctx.Logger.Out, pkg.Members)
	}

	return nil
}
