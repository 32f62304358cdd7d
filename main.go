package main

import "github.com/papapumpkin/obedit/cmd"

func main() {
	cmd.Execute()
}
