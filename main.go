package main

import "github.com/agentic-research/tidy/cmd"

func main() {
	cmd.Execute()
}
