package main

import (
	"fmt"

	"github.com/treeviz/arith"
)

type grammarCmd struct{}

func (c *grammarCmd) Run() error {
	fmt.Print(arith.Grammar)
	return nil
}
