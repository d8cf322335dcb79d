package main

import "github.com/rpgo/fi-forecaster/internal/cli"

func main() {
	cli.Execute()
}
