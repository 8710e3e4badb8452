package main

import "github.com/internquest/internquest/cmd"

func main() {
	cmd.Execute()
}
