package main

import (
	"os"

	"github.com/teranos/aocget/cmd/aocget/commands"
	"github.com/teranos/aocget/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		// cobra has already printed the error and usage
		os.Exit(1)
	}
}
