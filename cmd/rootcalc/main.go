package main

import (
	"log"
	"os"

	"github.com/zephyrtronium/rootcalc/internal/cli"
)

func main() {
	log.SetFlags(0)
	err := cli.NewRootCommand().Execute()
	if err != nil {
		log.Print(err)
	}
	os.Exit(cli.GetExitCode(err))
}
