package main

import (
	"os"

	"github.com/gnolang/rxgen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
