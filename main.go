package main

import "github.com/helmling/claude-recall/cmd/claude-recall/commands"

func main() {
	commands.Execute()
}
