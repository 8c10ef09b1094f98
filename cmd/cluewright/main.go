package main

import (
	"os"

	"github.com/setterlab/cluewright/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
