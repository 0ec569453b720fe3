package main

import (
	"fmt"
	"os"

	"github.com/byterings/git-profile/internal/gui"
)

func main() {
	if err := gui.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
