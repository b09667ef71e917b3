package main

import "simulation-server/cmd"

func main() {
	cmd.Execute()
}
