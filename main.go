package main

import "github.com/hanseo/scriptmaster/cmd"

func main() {
	cmd.Execute()
}
