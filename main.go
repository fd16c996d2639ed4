package main

import (
	"os"

	"github.com/lapanaderia/semilla/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
