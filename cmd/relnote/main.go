package main

import (
	"os"

	"relnote/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
