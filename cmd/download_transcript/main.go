package main

import "github.com/johnquangdev/fireflies-dl/internal/cli"

func main() {
	cli.Execute()
}
