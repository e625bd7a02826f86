package main

import (
	"github.com/shadowevil/D2SLib-Resurrected/cli"
)

func main() {
	cli.Start()
}
