package main

import (
	"os"

	"github.com/bluefxvideo/captionforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
