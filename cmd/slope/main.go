package main

import "github.com/aalvaropc/slope/internal/cli"

func main() {
	cli.Execute()
}
