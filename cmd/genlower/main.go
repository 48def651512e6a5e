package main

import "github.com/suspendlang/genlower/cmd/genlower/cmd"

func main() {
	cmd.Execute()
}
