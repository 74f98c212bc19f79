package main

import (
	"flag"

	"github.com/myxa-lang/myxa"
	"github.com/myxa-lang/myxa/internal/render"
)

const lockShortHelp = `Solve a lock satisfying every direct dependency`
const lockLongHelp = `
Runs the solver over the package's direct dependencies against the index,
replacing the package's lock with the result. update is an alias for lock:
myxa keeps no prior-lock bias, so both re-solve from scratch.
`

// lockCommand implements both the "lock" and "update" commands, which are
// identical operations under different names (spec §4.6).
type lockCommand struct {
	name string
}

func (cmd *lockCommand) Name() string      { return cmd.name }
func (cmd *lockCommand) Args() string      { return "" }
func (cmd *lockCommand) ShortHelp() string { return lockShortHelp }
func (cmd *lockCommand) LongHelp() string  { return lockLongHelp }
func (cmd *lockCommand) Register(fs *flag.FlagSet) {}

func (cmd *lockCommand) Run(ctx *appContext, args []string) error {
	pkg, err := myxa.Load(ctx.WorkingDir)
	if err != nil {
		return err
	}

	idx, err := ctx.loadIndex()
	if err != nil {
		return err
	}

	if err := myxa.Lock(pkg, idx); err != nil {
		return err
	}

	if err := myxa.Save(ctx.WorkingDir, pkg); err != nil {
		return err
	}

	ctx.Logger.Infof("locked %d package(s)", len(pkg.Lock.Pins))
	render.Lock(ctx.Logger.Out, pkg.Lock)
	return nil
}
