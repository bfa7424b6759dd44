package main

import "github.com/kifulab/kifu/internal/cli"

func main() {
	cli.Execute()
}
