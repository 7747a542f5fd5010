package main

import "github.com/redress-dev/redress/cmd"

func main() {
	cmd.Execute()
}
