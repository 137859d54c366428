package main

import "github.com/notargets/lidcavity/cmd"

func main() {
	cmd.Execute()
}
