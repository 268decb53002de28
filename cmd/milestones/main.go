package main

import "github.com/courtline/milestones/internal/cli"

func main() {
	cli.Execute()
}
