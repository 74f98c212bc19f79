// Command myxa is a compatibility-aware package manager: it tracks a
// package's declared interface, diffs it against published history, and
// solves dependency locks under minor-compatible semantics.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/myxa-lang/myxa/internal/cache"
	"github.com/myxa-lang/myxa/internal/index"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/mlog"
	"github.com/myxa-lang/myxa/internal/store"
)

// command mirrors golang-dep's cmd/dep command interface: each subcommand
// self-describes its name, usage, and flags, and is dispatched uniformly.
type command interface {
	Name() string
	Args() string
	ShortHelp() string
	LongHelp() string
	Register(*flag.FlagSet)
	Run(*appContext, []string) error
}

// appContext is the glue state every command runs against: where the
// project manifest and index live, and how to log.
type appContext struct {
	WorkingDir string
	IndexPath  string
	CachePath  string
	Logger     *mlog.Logger
	Debug      bool
	Stdin      io.Reader
}

func (c *appContext) loadIndex() (*index.Index, error) {
	f, err := os.Open(c.IndexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return index.New(), nil
		}
		return nil, merr.Wrapf(merr.IOFailure, err, "opening index at %s", c.IndexPath)
	}
	defer f.Close()

	idx, err := store.ReadIndex(f)
	if err != nil {
		return nil, merr.Wrapf(merr.IOFailure, err, "decoding index at %s", c.IndexPath)
	}
	return idx, nil
}

func (c *appContext) saveIndex(idx *index.Index) error {
	if err := os.MkdirAll(filepath.Dir(c.IndexPath), 0o755); err != nil {
		return merr.Wrapf(merr.IOFailure, err, "creating index directory")
	}
	f, err := os.Create(c.IndexPath)
	if err != nil {
		return merr.Wrapf(merr.IOFailure, err, "writing index at %s", c.IndexPath)
	}
	defer f.Close()

	if err := store.WriteIndex(f, idx); err != nil {
		return merr.Wrapf(merr.IOFailure, err, "encoding index")
	}
	return nil
}

// openCache opens the optional BoltDB query cache named by MYXA_CACHE. A
// nil *cache.Cache (MYXA_CACHE unset) is always a miss, so call sites never
// special-case "caching disabled".
func (c *appContext) openCache() *cache.Cache {
	if c.CachePath == "" {
		return nil
	}
	ch, err := cache.Open(c.CachePath, 0, c.Logger)
	if err != nil {
		c.Logger.Debugf("cache disabled: %v", err)
		return nil
	}
	return ch
}

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "myxa: failed to get working directory:", err)
		os.Exit(1)
	}
	cfg := &Config{
		Args:       os.Args,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		WorkingDir: wd,
		Env:        os.Environ(),
	}
	os.Exit(cfg.Run())
}

// Config specifies a full configuration for a myxa execution, mirroring
// golang-dep's cmd/dep Config.
type Config struct {
	WorkingDir     string
	Args           []string
	Env            []string
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

func (c *Config) Run() (exitCode int) {
	commands := []command{
		&initCommand{},
		&infoCommand{name: "info"},
		&infoCommand{name: "show"},
		&addCommand{},
		&removeCommand{},
		&lockCommand{name: "lock"},
		&lockCommand{name: "update"},
		&unlockCommand{},
		&checkCommand{},
		&diffCommand{},
		&publishCommand{},
		&yankCommand{},
		&indexCommand{},
		&versionCommand{},
	}

	errLogger := log.New(c.Stderr, "", 0)

	usage := func() {
		errLogger.Println("myxa is a compatibility-aware package manager")
		errLogger.Println()
		errLogger.Println("Usage: myxa <command> [arguments]")
		errLogger.Println()
		errLogger.Println("Commands:")
		errLogger.Println()
		w := tabwriter.NewWriter(c.Stderr, 0, 4, 2, ' ', 0)
		seen := map[string]bool{}
		for _, cmd := range commands {
			if seen[cmd.Name()] {
				continue
			}
			seen[cmd.Name()] = true
			fmt.Fprintf(w, "\t%s\t%s\n", cmd.Name(), cmd.ShortHelp())
		}
		w.Flush()
	}

	if len(c.Args) < 2 {
		usage()
		return 1
	}
	cmdName := c.Args[1]
	if cmdName == "-h" || cmdName == "--help" || cmdName == "help" {
		usage()
		return 1
	}

	for _, cmd := range commands {
		if cmd.Name() != cmdName {
			continue
		}

		fs := flag.NewFlagSet(cmdName, flag.ContinueOnError)
		fs.SetOutput(c.Stderr)

		var info bool
		var noInfo, noDebug, debug bool
		fs.BoolVar(&info, "info", true, "enable info-level logging (default)")
		fs.BoolVar(&noInfo, "no-info", false, "disable info-level logging")
		fs.BoolVar(&debug, "debug", false, "enable debug-level logging")
		fs.BoolVar(&noDebug, "no-debug", false, "disable debug-level logging (default)")
		cmd.Register(fs)

		resetUsage(errLogger, fs, cmdName, cmd.Args(), cmd.LongHelp())

		if err := fs.Parse(c.Args[2:]); err != nil {
			return 1
		}

		if noDebug {
			debug = false
		}
		if noInfo {
			info = false
		}

		logger := mlog.New(c.Stdout, c.Stderr, info, debug)

		ctx := &appContext{
			WorkingDir: c.WorkingDir,
			IndexPath:  indexPath(c.Env),
			CachePath:  getEnv(c.Env, "MYXA_CACHE"),
			Logger:     logger,
			Debug:      debug,
			Stdin:      c.Stdin,
		}

		if err := cmd.Run(ctx, fs.Args()); err != nil {
			if _, ok := err.(*merr.InternalError); ok && debug {
				panic(err)
			}
			logger.Errorf("%v", err)
			return 1
		}
		return 0
	}

	errLogger.Printf("myxa: %s: no such command\n", cmdName)
	usage()
	return 1
}

// indexPath resolves MYXA_INDEX, falling back to a temp-directory default
// per spec §6.
func indexPath(env []string) string {
	if p := getEnv(env, "MYXA_INDEX"); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "myxa", "index.json")
}

func getEnv(env []string, key string) string {
	for i := len(env) - 1; i >= 0; i-- {
		kv := strings.SplitN(env[i], "=", 2)
		if kv[0] == key {
			if len(kv) > 1 {
				return kv[1]
			}
			return ""
		}
	}
	return ""
}

func resetUsage(logger *log.Logger, fs *flag.FlagSet, name, args, longHelp string) {
	var (
		hasFlags   bool
		flagBlock  bytes.Buffer
		flagWriter = tabwriter.NewWriter(&flagBlock, 0, 4, 2, ' ', 0)
	)
	fs.VisitAll(func(f *flag.Flag) {
		hasFlags = true
		defValue := f.DefValue
		if defValue == "" {
			defValue = "<none>"
		}
		fmt.Fprintf(flagWriter, "\t-%s\t%s (default: %s)\n", f.Name, f.Usage, defValue)
	})
	flagWriter.Flush()
	fs.Usage = func() {
		logger.Printf("Usage: myxa %s %s\n", name, args)
		logger.Println()
		logger.Println(strings.TrimSpace(longHelp))
		logger.Println()
		if hasFlags {
			logger.Println("Flags:")
			logger.Println()
			logger.Println(flagBlock.String())
		}
	}
}
