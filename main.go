package main

import "github.com/notargets/gompm/cmd"

func main() {
	cmd.Execute()
}
