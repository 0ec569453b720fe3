package main

import (
	"github.com/byterings/git-profile/internal/cli"
)

func main() {
	cli.Execute()
}
