package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		NoColor bool `help:"Disable coloured output." env:"NO_COLOR"`

		Eval    evalCmd    `cmd:"" default:"withargs" help:"Evaluate an expression."`
		Tree    treeCmd    `cmd:"" help:"Render the syntax tree of an expression."`
		Grammar grammarCmd `cmd:"" help:"Print the grammar as EBNF."`
		Serve   serveCmd   `cmd:"" help:"Evaluate expressions over HTTP."`
	}
)

func main() {
	parser := kong.Must(&cli,
		kong.Description(`Parse, evaluate and visualise arithmetic expressions.`),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	kctx, err := parser.Parse(expressionArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)
	if cli.NoColor {
		color.NoColor = true
	}
	kctx.FatalIfErrorf(kctx.Run())
}

var (
	expressionCommands = map[string]bool{"eval": true, "tree": true}
	valueFlags         = map[string]bool{"-f": true, "--format": true}
)

// expressionArgs inserts "--" before an expression that starts with a sign, eg. "-2*3", so
// that it is not read as a flag. The "eval" command is made explicit when none is given.
//
// Only arguments before the first positional are considered; after that the expression
// is already passed through verbatim.
func expressionArgs(args []string) []string {
	command := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case expressionCommands[arg]:
			command = true
		case signed(arg):
			out := make([]string, 0, len(args)+2)
			out = append(out, args[:i]...)
			if !command {
				out = append(out, "eval")
			}
			out = append(out, "--")
			return append(out, args[i:]...)
		case valueFlags[arg]:
			i++
		case !strings.HasPrefix(arg, "-"):
			return args
		}
	}
	return args
}

// signed reports whether arg is an expression beginning with a unary sign rather than a flag.
func signed(arg string) bool {
	if len(arg) < 2 || (arg[0] != '-' && arg[0] != '+') {
		return false
	}
	rest := arg[1:]
	switch c := rest[0]; {
	case c >= '0' && c <= '9', c == '.', c == '(', c == ' ':
		return true
	}
	for _, prefix := range []string{"sin", "cos", "tan", "pi"} {
		if strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	return false
}
