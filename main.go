package main

import "github.com/xylex-group/code-time/internal/cli"

func main() {
	cli.Execute()
}
