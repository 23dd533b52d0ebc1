package main

import "github.com/gitcontrib/go-gitcontrib/cmd"

func main() {
	cmd.Execute()
}
