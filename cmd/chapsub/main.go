package main

import "github.com/forPelevin/chapsub/internal/cli"

func main() {
	cli.Main()
}
