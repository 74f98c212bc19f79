package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/myxa-lang/myxa"
)

const publishShortHelp = `Publish the local package to the index`
const publishLongHelp = `
Publishes the local package's current state under a newly computed version.
The package must already be locked (see lock). If a prior version is
published, the differ decides the bump: any breaking change forces a major
bump regardless of -major; otherwise -major forces one, and the default is a
minor bump. The first publish of a name uses the default version.

With -interactive (the default), -major asks for confirmation first. A major
bump forced by a breaking change is applied without a prompt.
`

type publishCommand struct {
	major         bool
	interactive   bool
	noInteractive bool
}

func (cmd *publishCommand) Name() string      { return "publish" }
func (cmd *publishCommand) Args() string      { return "" }
func (cmd *publishCommand) ShortHelp() string { return publishShortHelp }
func (cmd *publishCommand) LongHelp() string  { return publishLongHelp }

func (cmd *publishCommand) Register(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.major, "major", false, "force a major version bump")
	fs.BoolVar(&cmd.interactive, "interactive", true, "confirm -major bumps (default)")
	fs.BoolVar(&cmd.noInteractive, "no-interactive", false, "never prompt for confirmation")
}

func (cmd *publishCommand) Run(ctx *appContext, args []string) error {
	interactive := cmd.interactive && !cmd.noInteractive

	pkg, err := myxa.Load(ctx.WorkingDir)
	if err != nil {
		return err
	}

	idx, err := ctx.loadIndex()
	if err != nil {
		return err
	}

	if interactive && cmd.major {
		if !confirm(ctx, fmt.Sprintf("publish %s as a new major version?", pkg.Info.Name)) {
			return errors.New("publish cancelled")
		}
	}

	before := pkg.Info.Version
	if err := myxa.Publish(pkg, idx, interactive, cmd.major); err != nil {
		return err
	}

	if err := ctx.saveIndex(idx); err != nil {
		return err
	}
	if err := myxa.Save(ctx.WorkingDir, pkg); err != nil {
		return err
	}

	ctx.Logger.Infof("published %s %s (was %s)", pkg.Info.Name, pkg.Info.Version, before)
	return nil
}

// confirm prompts on ctx.Logger.Out and reads a yes/no answer from
// ctx.Stdin, defaulting to no on EOF or any unrecognised input.
func confirm(ctx *appContext, prompt string) bool {
	fmt.Fprintf(ctx.Logger.Out, "%s [y/N] ", prompt)
	scanner := bufio.NewScanner(ctx.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
