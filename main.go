package main

import (
	"os"

	"aisdlc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
