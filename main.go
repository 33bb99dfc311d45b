package main

import (
	"os"

	"github.com/codalotl/gridfmt/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, nil))
}
