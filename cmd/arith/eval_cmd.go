package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"

	"github.com/treeviz/arith"
)

type evalCmd struct {
	AST        bool     `help:"Dump the syntax tree." short:"a"`
	Trace      bool     `help:"Trace the parse to stderr."`
	Expression []string `arg:"" required:"" passthrough:"" help:"Expression to evaluate."`
}

func (c *evalCmd) Help() string {
	return `
Arguments are joined with spaces, so quoting is optional:

  arith eval 2 + 3 '*' 4
  arith "sin(90) - 1"
  arith -2 '*' 3
`
}

func (c *evalCmd) Run() error {
	expr, err := parse(c.Expression, c.Trace)
	if err != nil {
		return err
	}
	if c.AST {
		repr.Println(expr, repr.Indent("  "), repr.OmitEmpty(true))
	}
	fmt.Printf("%s = %s\n", expr, color.GreenString(strconv.FormatFloat(expr.Evaluate(), 'g', -1, 64)))
	return nil
}

func parse(args []string, trace bool) (arith.Expression, error) {
	var options []arith.Option
	if trace {
		options = append(options, arith.Trace(os.Stderr))
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	return arith.ParseString(strings.Join(args, " "), options...)
}
