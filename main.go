package main

import (
	"github.com/tranvictor/coinscope/cmd"
)

func main() {
	cmd.Execute()
}
