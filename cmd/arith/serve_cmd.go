package main

import (
	"github.com/fatih/color"

	"github.com/treeviz/arith/server"
)

type serveCmd struct {
	Addr string `help:"Address to listen on." default:":8080" env:"ARITH_ADDR"`
}

func (c *serveCmd) Run() error {
	color.Cyan("listening on %s", c.Addr)
	return server.Serve(c.Addr)
}
