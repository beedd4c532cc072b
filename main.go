package main

import "github.com/devguard-ai/devguard/commands"

func main() {
	commands.Execute()
}
