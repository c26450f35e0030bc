// Command pcset analyzes pitch-class sets, scales and tone rows and prints the
// results as JSON.
package main

import (
	"io"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// handler runs a parsed command line and returns the process exit code
type handler func(input string) (exitCode int)

// command registers a top-level command and returns its handler
type command func(app *kingpin.Application, env *environment) (*kingpin.CmdClause, handler)

var commands = []command{
	pcsetSet,
	pcsetCompare,
	pcsetContains,
	pcsetScale,
	pcsetRow,
}

func newApp(out, errOut io.Writer) (*kingpin.Application, map[string]handler) {
	app := kingpin.New("pcset", "Pitch-class set, scale and tone row analysis.")
	app.ErrorWriter(errOut)
	app.HelpFlag.Short('h')

	env := &environment{
		configPath: app.Flag("config", "TOML configuration file").Short('c').String(),
		universe:   app.Flag("universe", "size of the pitch-class universe (overrides the config)").Short('u').Int(),
		names:      app.Flag("names", "render pitch classes as note names (universe 12 only)").Bool(),
		verbose:    app.Flag("verbose", "log debug output to stderr").Short('v').Bool(),
		logLevel:   app.Flag("log-level", "debug, info, warn or error").String(),
		out:        out,
		errOut:     errOut,
	}

	handlers := map[string]handler{}
	for _, register := range commands {
		cmd, h := register(app, env)
		handlers[cmd.FullCommand()] = h
	}
	return app, handlers
}

func run(args []string, out, errOut io.Writer) int {
	app, handlers := newApp(out, errOut)
	input, err := app.Parse(args)
	if err != nil {
		app.Errorf("%s, try --help", err)
		return 2
	}

	if h := handlers[strings.Split(input, " ")[0]]; h != nil {
		return h(input)
	}
	app.Errorf("unknown command %q", input)
	return 2
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
