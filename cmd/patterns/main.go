package main

import "patterns/cmd/patterns/cmd"

func main() {
	cmd.Execute()
}
