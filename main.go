package main

import "github.com/kamal-hamza/inlinegen/cmd"

func main() {
	cmd.Execute()
}
