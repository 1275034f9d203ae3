package main

import "github.com/syntoxine/doubloon/cmd"

func main() {
	cmd.Execute()
}
