package main

import (
	"os"

	"github.com/treeviz/arith/render"
)

type treeCmd struct {
	Format     string   `help:"Output format (${enum})." enum:"text,json,dot" default:"text" short:"f"`
	Trace      bool     `help:"Trace the parse to stderr."`
	Expression []string `arg:"" required:"" passthrough:"" help:"Expression to render."`
}

func (c *treeCmd) Run() error {
	expr, err := parse(c.Expression, c.Trace)
	if err != nil {
		return err
	}
	switch c.Format {
	case "json":
		return render.JSON(os.Stdout, expr)
	case "dot":
		return render.DOT(os.Stdout, expr)
	default:
		return render.Text(os.Stdout, expr)
	}
}
