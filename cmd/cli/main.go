package main

import (
	"github.com/atmoforge/atmoctl/pkg/cli"
)

func main() {
	cli.Execute()
}
