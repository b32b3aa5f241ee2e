package main

import (
	"log"

	"github.com/hannajonsd/treejson/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("treejson: %v", err)
	}
}
