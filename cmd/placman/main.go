package main

import "github.com/battlesnakeio/placman/cmd/placman/commands"

func main() {
	commands.Execute()
}
