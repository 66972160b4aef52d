package main

import "github.com/kweston/matchrank/internal/cli"

func main() {
	cli.Execute()
}
