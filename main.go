package main

import (
	"os"

	"github.com/mahued73/examapp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
