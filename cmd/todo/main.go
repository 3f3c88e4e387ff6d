package main

import (
	"os"

	"github.com/idilsaglam/teamtodo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
