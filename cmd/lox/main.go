package main

import (
	"os"

	"github.com/TheJolman/lox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
