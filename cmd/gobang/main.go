package main

import "github.com/mcoot/gobang/internal/cli"

func main() {
	cli.Execute()
}
