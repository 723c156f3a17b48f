package main

import (
	"github.com/clonelab/clonelab/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
