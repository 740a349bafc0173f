package main

import (
	"os"

	"github.com/grovetools/gridnav/cli"
	"github.com/grovetools/gridnav/cmd"
)

func main() {
	root := cmd.NewRootCmd()
	if err := root.Execute(); err != nil {
		cli.NewErrorHandler(cli.GetOptions(root).Verbose).Handle(err)
		os.Exit(1)
	}
}
