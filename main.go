package main

import "github.com/nickofolas/wdle/internal/cli"

func main() {
	cli.Execute()
}
