package main

import "github.com/kirksw/ezorg/cmd"

func main() {
	cmd.Execute()
}
