package main

import "treecreator/cmd/treecreator-cli/cmd"

func main() {
	cmd.Execute()
}
